package operations

import (
	"mdboard/internal/kanban/buffer"
	"mdboard/internal/kanban/models"
)

// PlanRenameSection replaces the heading line of section s with "# title".
func PlanRenameSection(text string, board *models.Board, s int, title string) (buffer.Edit, bool) {
	if board == nil || board.GetSection(s) == nil {
		return buffer.Edit{}, false
	}
	return renameLine(text, board.Sections[s].LineNo, "#", title), true
}

// PlanInsertSection adds a section after section index after (-1 = before the
// first one). After the last section it is appended to the end of the document.
// Without a board title any new level-1 heading would become the title, so that
// case is a no-op.
func PlanInsertSection(text string, board *models.Board, after int, title string) (buffer.Edit, bool) {
	if board == nil || !board.HasTitle() {
		return buffer.Edit{}, false
	}
	if after < -1 || after >= len(board.Sections) {
		return buffer.Edit{}, false
	}

	next := -1
	if after+1 < len(board.Sections) {
		next = board.Sections[after+1].LineNo
	}
	return insertAt(text, next, "#", title), true
}

// PlanMoveSectionUp swaps section s with the section before it.
func PlanMoveSectionUp(text string, board *models.Board, s int) (buffer.Edit, bool) {
	if board == nil || s < 1 || s >= len(board.Sections) {
		return buffer.Edit{}, false
	}
	start, end := sectionSpan(text, board, s)
	target, _ := sectionSpan(text, board, s-1)
	return relocate(text, start, end, target)
}

// PlanMoveSectionDown swaps section s with the section after it.
func PlanMoveSectionDown(text string, board *models.Board, s int) (buffer.Edit, bool) {
	return PlanMoveSectionUp(text, board, s+1)
}

// PlanRemoveSection deletes section s with its columns and tasks.
func PlanRemoveSection(text string, board *models.Board, s int) (buffer.Edit, bool) {
	if board == nil || board.GetSection(s) == nil {
		return buffer.Edit{}, false
	}
	start := buffer.LineStart(text, board.Sections[s].LineNo)
	return buffer.NewDelete(start, removeEnd(text, nextSectionLine(board, s))), true
}
