package rewrite_test

import (
	"bytes"
	"testing"

	"github.com/quotefmt/quotefmt/pkg/rewrite"
)

func FuzzSource(f *testing.F) {
	// Add seed corpus.
	f.Add([]byte(""))
	f.Add([]byte("x = 'hello'\n"))
	f.Add([]byte("x = \"a\"\n"))
	f.Add([]byte("x = ''\n"))
	f.Add([]byte("x = r'raw' + f'fmt {x}' + b'bytes'\n"))
	f.Add([]byte("def f():\n    'doc'\n    return 'body'\n"))
	f.Add([]byte("s = '''triple'''\n"))
	f.Add([]byte("x = 'it\\'s' + \"say \\\"hi\\\"\"\n"))
	f.Add([]byte("x = 'a' 'b' 'c'\n"))
	f.Add([]byte("x = 'unterminated\n"))
	f.Add([]byte("x = '\\N{BULLET}'\n"))
	f.Add([]byte("a = 'x'\r\nb = 'y'\r\n"))

	f.Fuzz(func(t *testing.T, content []byte) {
		// Source should never panic; parse errors come back as errors.
		result, err := rewrite.Source("fuzz.py", content)
		if err != nil {
			return
		}

		if result.Changed == bytes.Equal(result.Content, content) {
			t.Errorf("Changed = %v inconsistent with content comparison", result.Changed)
		}
		if result.Changed && len(result.Edits) == 0 {
			t.Error("Changed = true with no edits")
		}

		// The rewritten source must still parse.
		second, err := rewrite.Source("fuzz.py", result.Content)
		if err != nil {
			t.Fatalf("rewritten source no longer parses: %v", err)
		}

		// One pass reaches the fixed point.
		if second.Changed {
			t.Errorf("rewrite not idempotent:\nfirst:  %q\nsecond: %q",
				result.Content, second.Content)
		}
	})
}
