package operations

import (
	"strings"

	"mdboard/internal/kanban/buffer"
	"mdboard/internal/kanban/models"
	"mdboard/internal/kanban/parser"
)

// The next* helpers return the heading line that ends an entity, or -1 when the
// entity runs to the end of the document.

func nextSectionLine(board *models.Board, s int) int {
	if board.IsLastSection(s) {
		return -1
	}
	return board.Sections[s+1].LineNo
}

func nextColumnLine(board *models.Board, s, c int) int {
	section := &board.Sections[s]
	if section.IsLastColumn(c) {
		return nextSectionLine(board, s)
	}
	return section.Columns[c+1].LineNo
}

func nextTaskLine(board *models.Board, s, c, t int) int {
	tasks := board.Sections[s].Columns[c].Tasks
	if t+1 < len(tasks) {
		return tasks[t+1].LineNo
	}
	return nextColumnLine(board, s, c)
}

// spanEnd is the offset where the boundary line starts, so a span covers whole lines.
func spanEnd(text string, next int) int {
	if next < 0 {
		return len(text)
	}
	return buffer.LineStart(text, next)
}

// removeEnd stops at the end of the line before the boundary.
func removeEnd(text string, next int) int {
	if next < 0 {
		return len(text)
	}
	return buffer.LineEnd(text, next-1)
}

func sectionSpan(text string, board *models.Board, s int) (int, int) {
	start := buffer.LineStart(text, board.Sections[s].LineNo)
	return start, spanEnd(text, nextSectionLine(board, s))
}

func columnSpan(text string, board *models.Board, s, c int) (int, int) {
	start := buffer.LineStart(text, board.Sections[s].Columns[c].LineNo)
	return start, spanEnd(text, nextColumnLine(board, s, c))
}

func taskSpan(text string, board *models.Board, s, c, t int) (int, int) {
	start := buffer.LineStart(text, board.Sections[s].Columns[c].Tasks[t].LineNo)
	return start, spanEnd(text, nextTaskLine(board, s, c, t))
}

// relocate moves text[start:end] so that it begins (moving up) or ends (moving
// down) at offset at, as one splice over the affected region. The document length
// never changes. If the moved block or the text it jumps over is the unterminated
// tail of the document, a newline travels with the block that is no longer last.
func relocate(text string, start, end, at int) (buffer.Edit, bool) {
	if start >= end || (at >= start && at <= end) {
		return buffer.Edit{}, false
	}

	moved := text[start:end]
	if at < start {
		rest := text[at:start]
		if !strings.HasSuffix(moved, "\n") && strings.HasSuffix(rest, "\n") {
			moved += "\n"
			rest = rest[:len(rest)-1]
		}
		return buffer.NewEdit(buffer.Range{Start: at, End: end}, moved+rest), true
	}

	rest := text[end:at]
	if !strings.HasSuffix(rest, "\n") && strings.HasSuffix(moved, "\n") {
		rest += "\n"
		moved = moved[:len(moved)-1]
	}
	return buffer.NewEdit(buffer.Range{Start: start, End: at}, rest+moved), true
}

// insertAt places a new heading either before the boundary line or, at the end
// of the document, after a blank line.
func insertAt(text string, next int, marker, title string) buffer.Edit {
	if next < 0 {
		return buffer.NewInsert(len(text), "\n\n"+marker+" "+title+"\n\n")
	}
	return buffer.NewInsert(buffer.LineStart(text, next), marker+" "+title+"\n\n")
}

// renameLine rewrites a heading line as "marker title". A heading that already
// reads as title at the same level is left byte-for-byte as written, whatever its
// spacing.
func renameLine(text string, line int, marker, title string) buffer.Edit {
	r := buffer.LineRanges(text, line)[0]
	if strings.HasSuffix(text[r.Start:r.End], "\r") {
		r.End--
	}
	current := text[r.Start:r.End]
	if h := parser.Headings(current); len(h) == 1 && h[0].Level == len(marker) && strings.TrimSpace(h[0].Text) == title {
		return buffer.NewEdit(r, current)
	}
	return buffer.NewEdit(r, marker+" "+title)
}
