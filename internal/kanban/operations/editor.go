package operations

import (
	"fmt"

	"mdboard/internal/kanban/buffer"
	"mdboard/internal/kanban/models"
	"mdboard/internal/kanban/parser"
	"mdboard/internal/logs"
)

// Editor applies structural edits to a buffer. It holds the board parsed from the
// buffer's current text and re-parses whenever the buffer reports a change, so
// line numbers are never carried across an edit.
//
// Every method reports whether an edit was applied. Out of range indices are
// silent no-ops; errors only come from title validation and the buffer itself.
type Editor struct {
	buf   buffer.Buffer
	board *models.Board
}

// NewEditor parses the buffer and subscribes to its changes
func NewEditor(buf buffer.Buffer) *Editor {
	e := &Editor{
		buf:   buf,
		board: parser.Parse(buf.Text()),
	}
	buf.OnChange(e.reparse)
	return e
}

// Board returns the current structure snapshot, nil when the text has no headings.
func (e *Editor) Board() *models.Board {
	return e.board
}

// Text returns the buffer text the snapshot was built from
func (e *Editor) Text() string {
	return e.buf.Text()
}

func (e *Editor) reparse(text string) {
	e.board = parser.Parse(text)
}

func (e *Editor) apply(op string, edit buffer.Edit, ok bool) (bool, error) {
	if !ok {
		logs.Logger.Debug("edit skipped", "op", op)
		return false, nil
	}
	if err := e.buf.Apply(edit); err != nil {
		logs.Logger.Error("edit rejected", "op", op, "edit", edit.String(), "err", err)
		return false, fmt.Errorf("%s: %w", op, err)
	}
	logs.Logger.Debug("edit applied", "op", op, "edit", edit.String(), "delta", edit.Delta())
	return true, nil
}

// RenameBoard rewrites the board title heading
func (e *Editor) RenameBoard(title string) (bool, error) {
	title, err := ValidateTitle(title)
	if err != nil {
		return false, err
	}
	edit, ok := PlanRenameBoard(e.Text(), e.board, title)
	return e.apply("rename board", edit, ok)
}

// RenameSection rewrites the heading of section s
func (e *Editor) RenameSection(s int, title string) (bool, error) {
	title, err := ValidateTitle(title)
	if err != nil {
		return false, err
	}
	edit, ok := PlanRenameSection(e.Text(), e.board, s, title)
	return e.apply("rename section", edit, ok)
}

// RenameColumn rewrites the heading of column c in section s
func (e *Editor) RenameColumn(s, c int, title string) (bool, error) {
	title, err := ValidateTitle(title)
	if err != nil {
		return false, err
	}
	edit, ok := PlanRenameColumn(e.Text(), e.board, s, c, title)
	return e.apply("rename column", edit, ok)
}

// InsertSection adds a section after index after (-1 = first)
func (e *Editor) InsertSection(after int, title string) (bool, error) {
	title, err := ValidateTitle(title)
	if err != nil {
		return false, err
	}
	edit, ok := PlanInsertSection(e.Text(), e.board, after, title)
	return e.apply("insert section", edit, ok)
}

// InsertColumn adds a column to section s after column index after (-1 = first)
func (e *Editor) InsertColumn(s, after int, title string) (bool, error) {
	title, err := ValidateTitle(title)
	if err != nil {
		return false, err
	}
	edit, ok := PlanInsertColumn(e.Text(), e.board, s, after, title)
	return e.apply("insert column", edit, ok)
}

// InsertTask appends a task to column c of section s
func (e *Editor) InsertTask(s, c int, title string) (bool, error) {
	title, err := ValidateTitle(title)
	if err != nil {
		return false, err
	}
	edit, ok := PlanInsertTask(e.Text(), e.board, s, c, title)
	return e.apply("insert task", edit, ok)
}

// MoveSectionUp swaps section s with its predecessor
func (e *Editor) MoveSectionUp(s int) (bool, error) {
	edit, ok := PlanMoveSectionUp(e.Text(), e.board, s)
	return e.apply("move section up", edit, ok)
}

// MoveSectionDown swaps section s with its successor
func (e *Editor) MoveSectionDown(s int) (bool, error) {
	edit, ok := PlanMoveSectionDown(e.Text(), e.board, s)
	return e.apply("move section down", edit, ok)
}

// MoveColumnUp swaps column c with its predecessor in section s
func (e *Editor) MoveColumnUp(s, c int) (bool, error) {
	edit, ok := PlanMoveColumnUp(e.Text(), e.board, s, c)
	return e.apply("move column up", edit, ok)
}

// MoveColumnDown swaps column c with its successor in section s
func (e *Editor) MoveColumnDown(s, c int) (bool, error) {
	edit, ok := PlanMoveColumnDown(e.Text(), e.board, s, c)
	return e.apply("move column down", edit, ok)
}

// MoveTaskUp swaps task t with its predecessor
func (e *Editor) MoveTaskUp(s, c, t int) (bool, error) {
	edit, ok := PlanMoveTaskUp(e.Text(), e.board, s, c, t)
	return e.apply("move task up", edit, ok)
}

// MoveTaskDown swaps task t with its successor
func (e *Editor) MoveTaskDown(s, c, t int) (bool, error) {
	edit, ok := PlanMoveTaskDown(e.Text(), e.board, s, c, t)
	return e.apply("move task down", edit, ok)
}

// MoveTaskToColumn moves task t to the end of column dc in section ds
func (e *Editor) MoveTaskToColumn(s, c, t, ds, dc int) (bool, error) {
	edit, ok := PlanMoveTaskToColumn(e.Text(), e.board, s, c, t, ds, dc)
	return e.apply("move task", edit, ok)
}

// RemoveSection deletes section s once confirm approves
func (e *Editor) RemoveSection(s int, confirm Confirmer) (bool, error) {
	edit, ok := PlanRemoveSection(e.Text(), e.board, s)
	if ok {
		section := e.board.Sections[s]
		prompt := fmt.Sprintf("Delete section %q with %d column(s) and %d task(s)?",
			section.Title, len(section.Columns), section.TaskCount())
		ok = confirmed(confirm, prompt)
	}
	return e.apply("remove section", edit, ok)
}

// RemoveColumn deletes column c of section s once confirm approves
func (e *Editor) RemoveColumn(s, c int, confirm Confirmer) (bool, error) {
	edit, ok := PlanRemoveColumn(e.Text(), e.board, s, c)
	if ok {
		column := e.board.Sections[s].Columns[c]
		prompt := fmt.Sprintf("Delete column %q with %d task(s)?", column.Title, len(column.Tasks))
		ok = confirmed(confirm, prompt)
	}
	return e.apply("remove column", edit, ok)
}

// RemoveTask deletes task t once confirm approves
func (e *Editor) RemoveTask(s, c, t int, confirm Confirmer) (bool, error) {
	edit, ok := PlanRemoveTask(e.Text(), e.board, s, c, t)
	if ok {
		prompt := fmt.Sprintf("Delete task %q?", e.board.Sections[s].Columns[c].Tasks[t].Title)
		ok = confirmed(confirm, prompt)
	}
	return e.apply("remove task", edit, ok)
}
