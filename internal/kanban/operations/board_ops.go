package operations

import (
	"fmt"
	"strings"

	"mdboard/internal/kanban/buffer"
	"mdboard/internal/kanban/models"
)

// PlanRenameBoard replaces the board title heading. No-op when the document has
// no title heading.
func PlanRenameBoard(text string, board *models.Board, title string) (buffer.Edit, bool) {
	if board == nil || !board.HasTitle() {
		return buffer.Edit{}, false
	}
	return renameLine(text, board.LineNo, "#", title), true
}

// ValidateTitle checks that a title can be written as a heading (trim, single line, non-empty)
func ValidateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)

	if trimmed == "" {
		return "", fmt.Errorf("%w: title cannot be empty", ErrInvalidTitle)
	}

	if strings.ContainsAny(trimmed, "\r\n") {
		return "", fmt.Errorf("%w: title must be a single line", ErrInvalidTitle)
	}

	return trimmed, nil
}
