package operations

import (
	"mdboard/internal/kanban/buffer"
	"mdboard/internal/kanban/models"
)

// PlanInsertTask appends a "### title" task to the end of column c in section s.
func PlanInsertTask(text string, board *models.Board, s, c int, title string) (buffer.Edit, bool) {
	if board == nil || board.GetColumn(s, c) == nil {
		return buffer.Edit{}, false
	}
	return insertAt(text, nextColumnLine(board, s, c), "###", title), true
}

// PlanMoveTaskUp swaps task t with the task before it in the same column.
func PlanMoveTaskUp(text string, board *models.Board, s, c, t int) (buffer.Edit, bool) {
	if board == nil || board.GetTask(s, c, t) == nil || t < 1 {
		return buffer.Edit{}, false
	}
	start, end := taskSpan(text, board, s, c, t)
	target, _ := taskSpan(text, board, s, c, t-1)
	return relocate(text, start, end, target)
}

// PlanMoveTaskDown swaps task t with the task after it in the same column.
func PlanMoveTaskDown(text string, board *models.Board, s, c, t int) (buffer.Edit, bool) {
	return PlanMoveTaskUp(text, board, s, c, t+1)
}

// PlanMoveTaskToColumn moves task t to the end of column dc in section ds.
func PlanMoveTaskToColumn(text string, board *models.Board, s, c, t, ds, dc int) (buffer.Edit, bool) {
	if board == nil || board.GetTask(s, c, t) == nil || board.GetColumn(ds, dc) == nil {
		return buffer.Edit{}, false
	}
	if s == ds && c == dc {
		return buffer.Edit{}, false
	}
	start, end := taskSpan(text, board, s, c, t)
	return relocate(text, start, end, spanEnd(text, nextColumnLine(board, ds, dc)))
}

// PlanRemoveTask deletes task t and its body.
func PlanRemoveTask(text string, board *models.Board, s, c, t int) (buffer.Edit, bool) {
	if board == nil {
		return buffer.Edit{}, false
	}
	task := board.GetTask(s, c, t)
	if task == nil {
		return buffer.Edit{}, false
	}
	start := buffer.LineStart(text, task.LineNo)
	return buffer.NewDelete(start, removeEnd(text, nextTaskLine(board, s, c, t))), true
}
