package langdetect_test

import (
	"strings"
	"testing"

	"github.com/quotefmt/quotefmt/pkg/langdetect"
)

func TestIsPythonScript(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected bool
	}{
		{
			name:     "env python shebang",
			content:  "#!/usr/bin/env python\nprint('hi')\n",
			expected: true,
		},
		{
			name:     "env python3 shebang",
			content:  "#!/usr/bin/env python3\nprint('hi')\n",
			expected: true,
		},
		{
			name:     "direct python path",
			content:  "#!/usr/bin/python\nprint('hi')\n",
			expected: true,
		},
		{
			name:     "bash shebang",
			content:  "#!/bin/bash\necho hi\n",
			expected: false,
		},
		{
			name:     "no shebang python source",
			content:  "def foo():\n    pass\n",
			expected: false,
		},
		{
			name:     "shebang not at start",
			content:  "\n#!/usr/bin/env python\n",
			expected: false,
		},
		{
			name:     "empty content",
			content:  "",
			expected: false,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := langdetect.IsPythonScript([]byte(testCase.content))
			if got != testCase.expected {
				t.Errorf("IsPythonScript: expected %v, got %v", testCase.expected, got)
			}
		})
	}
}

func TestIsPythonScript_LargeContent(t *testing.T) {
	t.Parallel()

	content := "#!/usr/bin/env python3\n" + strings.Repeat("x = 1\n", 10000)
	if !langdetect.IsPythonScript([]byte(content)) {
		t.Error("sniff limit should not break shebang detection")
	}
}

func TestDetectLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "python shebang",
			content:  "#!/usr/bin/env python3\nprint('hi')\n",
			expected: "python",
		},
		{
			name:     "bash shebang",
			content:  "#!/bin/sh\necho hi\n",
			expected: "bash",
		},
		{
			name:     "empty content",
			content:  "",
			expected: "",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := langdetect.DetectLanguage([]byte(testCase.content))
			if got != testCase.expected {
				t.Errorf("DetectLanguage: expected %q, got %q", testCase.expected, got)
			}
		})
	}
}
