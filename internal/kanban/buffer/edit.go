package buffer

import "fmt"

// Edit replaces Range with NewText. It is the only way the engine changes a
// document.
type Edit struct {
	Range   Range
	NewText string
}

// NewEdit creates a new Edit.
func NewEdit(r Range, newText string) Edit {
	return Edit{Range: r, NewText: newText}
}

// NewInsert creates an Edit that inserts text at an offset.
func NewInsert(offset int, text string) Edit {
	return Edit{Range: Range{Start: offset, End: offset}, NewText: text}
}

// NewDelete creates an Edit that deletes a range of text.
func NewDelete(start, end int) Edit {
	return Edit{Range: Range{Start: start, End: end}}
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	if e.Range.IsEmpty() {
		return fmt.Sprintf("Insert(%d, %q)", e.Range.Start, e.NewText)
	}
	if e.NewText == "" {
		return fmt.Sprintf("Delete%s", e.Range.String())
	}
	return fmt.Sprintf("Replace%s with %q", e.Range.String(), e.NewText)
}

// Delta returns the change in document length caused by the edit.
func (e Edit) Delta() int {
	return len(e.NewText) - e.Range.Len()
}

// ApplyTo returns text with the edit applied.
func (e Edit) ApplyTo(text string) (string, error) {
	if !e.Range.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrRangeInvalid, e.Range)
	}
	if e.Range.End > len(text) {
		return "", fmt.Errorf("%w: %s beyond %d", ErrOffsetOutOfRange, e.Range, len(text))
	}
	return text[:e.Range.Start] + e.NewText + text[e.Range.End:], nil
}
