package reporter

import "fmt"

// Format represents an output format.
type Format string

// Output formats supported by the reporter.
const (
	FormatText Format = "text"
	FormatDiff Format = "diff"
	FormatJSON Format = "json"
	FormatList Format = "list"
)

//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = map[Format]struct{}{
	FormatText: {},
	FormatDiff: {},
	FormatJSON: {},
	FormatList: {},
}

// ParseFormat parses a format string. The empty string means FormatText.
func ParseFormat(formatStr string) (Format, error) {
	if formatStr == "" {
		return FormatText, nil
	}
	format := Format(formatStr)
	if !format.IsValid() {
		return "", fmt.Errorf("unknown format %q; valid formats: text, diff, json, list", formatStr)
	}
	return format, nil
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	_, ok := knownFormats[f]
	return ok
}
