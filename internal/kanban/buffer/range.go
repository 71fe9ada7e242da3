package buffer

import (
	"fmt"
	"strings"
)

// Range is a byte range in the document text.
// Start is inclusive, End is exclusive: [Start, End).
type Range struct {
	Start int
	End   int
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// Len returns the length of the range in bytes.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsValid returns true if 0 <= Start <= End.
func (r Range) IsValid() bool {
	return r.Start >= 0 && r.Start <= r.End
}

// LineRanges resolves 0-based line numbers to byte ranges in text. End never
// includes the line's newline. Lines past the last line resolve to an empty range
// at the end of the text and negative lines are treated as line 0.
//
// Offsets are only valid for the text they were computed from; resolve again
// after every edit.
func LineRanges(text string, lines ...int) []Range {
	ranges := make([]Range, len(lines))
	for i, line := range lines {
		ranges[i] = lineRange(text, line)
	}
	return ranges
}

// LineStart returns the offset of the first byte of line, or len(text) when the
// line does not exist.
func LineStart(text string, line int) int {
	return lineRange(text, line).Start
}

// LineEnd returns the offset of the newline ending line (or len(text)).
func LineEnd(text string, line int) int {
	return lineRange(text, line).End
}

func lineRange(text string, line int) Range {
	if line < 0 {
		line = 0
	}
	start := 0
	for i := 0; i < line; i++ {
		nl := strings.IndexByte(text[start:], '\n')
		if nl < 0 {
			return Range{Start: len(text), End: len(text)}
		}
		start += nl + 1
	}
	end := len(text)
	if nl := strings.IndexByte(text[start:], '\n'); nl >= 0 {
		end = start + nl
	}
	return Range{Start: start, End: end}
}
