// Package langdetect decides whether file content is Python source.
// It uses go-enry for shebang detection, primarily so discovery can pick
// up extensionless scripts like bin/manage or tools/release.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

const langPython = "python"

// maxSniffBytes bounds how much of a file IsPythonScript inspects.
const maxSniffBytes = 4096

// IsPythonScript reports whether content looks like an executable Python
// script. Detection is shebang-first; a file without a shebang line is
// never considered a script here, extension matching handles those.
func IsPythonScript(content []byte) bool {
	if len(content) == 0 {
		return false
	}
	if len(content) > maxSniffBytes {
		content = content[:maxSniffBytes]
	}

	if !bytes.HasPrefix(content, []byte("#!")) {
		return false
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang) == langPython
	}

	return false
}

// DetectLanguage returns a lowercase language name for content, or empty
// string when enry has no confident answer.
func DetectLanguage(content []byte) string {
	if len(content) == 0 {
		return ""
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	candidates := []string{"Python", "Shell", "Go", "JavaScript", "Ruby", "Perl"}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return ""
}

// normalize converts go-enry language names to lowercase tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
