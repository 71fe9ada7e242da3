package fs

import (
	"fmt"
	"os"

	"mdboard/internal/kanban/models"
	"mdboard/internal/kanban/parser"
)

// ReadBoard reads a board document and parses it. The board is nil when the file
// has no headings.
func ReadBoard(boardPath string) (*models.Board, error) {
	content, err := os.ReadFile(boardPath)
	if err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}
	return parser.Parse(string(content)), nil
}
