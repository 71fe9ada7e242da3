package operations

import (
	"mdboard/internal/kanban/buffer"
	"mdboard/internal/kanban/models"
)

// PlanRenameColumn replaces the heading line of column c in section s with "## title".
func PlanRenameColumn(text string, board *models.Board, s, c int, title string) (buffer.Edit, bool) {
	if board == nil {
		return buffer.Edit{}, false
	}
	column := board.GetColumn(s, c)
	if column == nil {
		return buffer.Edit{}, false
	}
	return renameLine(text, column.LineNo, "##", title), true
}

// PlanInsertColumn adds a column to section s after column index after (-1 =
// before the first column). At the end of a section the column goes right before
// the next section, or to the end of the document for the last section.
func PlanInsertColumn(text string, board *models.Board, s, after int, title string) (buffer.Edit, bool) {
	if board == nil {
		return buffer.Edit{}, false
	}
	section := board.GetSection(s)
	if section == nil || after < -1 || after >= len(section.Columns) {
		return buffer.Edit{}, false
	}

	next := nextSectionLine(board, s)
	if after+1 < len(section.Columns) {
		next = section.Columns[after+1].LineNo
	}
	return insertAt(text, next, "##", title), true
}

// PlanMoveColumnUp swaps column c with the column before it in the same section.
func PlanMoveColumnUp(text string, board *models.Board, s, c int) (buffer.Edit, bool) {
	if board == nil || board.GetColumn(s, c) == nil || c < 1 {
		return buffer.Edit{}, false
	}
	start, end := columnSpan(text, board, s, c)
	target, _ := columnSpan(text, board, s, c-1)
	return relocate(text, start, end, target)
}

// PlanMoveColumnDown swaps column c with the column after it in the same section.
func PlanMoveColumnDown(text string, board *models.Board, s, c int) (buffer.Edit, bool) {
	return PlanMoveColumnUp(text, board, s, c+1)
}

// PlanRemoveColumn deletes column c of section s with its tasks.
func PlanRemoveColumn(text string, board *models.Board, s, c int) (buffer.Edit, bool) {
	if board == nil {
		return buffer.Edit{}, false
	}
	column := board.GetColumn(s, c)
	if column == nil {
		return buffer.Edit{}, false
	}
	start := buffer.LineStart(text, column.LineNo)
	return buffer.NewDelete(start, removeEnd(text, nextColumnLine(board, s, c))), true
}
