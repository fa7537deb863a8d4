package pyast

import "sort"

// BuildLines constructs line metadata from file content.
// Both LF and CRLF terminators are recognized.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, b := range content {
		if b != '\n' {
			continue
		}
		nlStart := idx
		if idx > 0 && content[idx-1] == '\r' {
			nlStart = idx - 1
		}
		lines = append(lines, LineInfo{
			Start:        lineStart,
			NewlineStart: nlStart,
			End:          idx + 1,
		})
		lineStart = idx + 1
	}

	if lineStart <= len(content) {
		lines = append(lines, LineInfo{
			Start:        lineStart,
			NewlineStart: len(content),
			End:          len(content),
		})
	}

	return lines
}

// LineCount returns the number of lines in the file.
func (f *FileSnapshot) LineCount() int {
	return len(f.Lines)
}

// LineAt converts a byte offset to 1-based line and column numbers.
// Columns count bytes. Returns (0, 0) for out-of-range offsets.
func (f *FileSnapshot) LineAt(offset int) (int, int) {
	if offset < 0 || len(f.Lines) == 0 {
		return 0, 0
	}

	if offset >= len(f.Content) {
		last := f.Lines[len(f.Lines)-1]
		return len(f.Lines), offset - last.Start + 1
	}

	idx := sort.Search(len(f.Lines), func(i int) bool {
		return f.Lines[i].End > offset
	})
	if idx >= len(f.Lines) {
		idx = len(f.Lines) - 1
	}

	line := f.Lines[idx]
	if offset < line.Start {
		return 0, 0
	}

	return idx + 1, offset - line.Start + 1
}

// LineContent returns the bytes of a 1-based line, excluding the terminator.
// Returns nil for out-of-range line numbers.
func (f *FileSnapshot) LineContent(line int) []byte {
	if line < 1 || line > len(f.Lines) {
		return nil
	}
	info := f.Lines[line-1]
	return f.Content[info.Start:info.NewlineStart]
}
