// Package parser turns board documents into models.Board snapshots.
package parser

import (
	"regexp"
	"strings"

	"mdboard/internal/kanban/models"
)

var headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// Heading is a line matching the heading pattern
type Heading struct {
	Level  int
	Text   string
	LineNo int
}

// Headings returns every heading line of text in source order.
func Headings(text string) []Heading {
	var headings []Heading
	for i, line := range strings.Split(text, "\n") {
		m := headingPattern.FindStringSubmatch(strings.TrimSuffix(line, "\r"))
		if m == nil {
			continue
		}
		headings = append(headings, Heading{
			Level:  len(m[1]),
			Text:   m[2],
			LineNo: i,
		})
	}
	return headings
}

// Parse builds the board structure of text. It returns nil when text has no
// headings at all, which callers treat as "not a board" rather than an error.
//
// The first level-1 heading is the board title. Later level-1 headings open
// sections, level-2 headings open columns in the current section and level-3/4
// headings are tasks of the current column. Headings that appear before their
// parent exists are dropped.
func Parse(text string) *models.Board {
	headings := Headings(text)
	if len(headings) == 0 {
		return nil
	}

	lines := strings.Split(text, "\n")

	board := &models.Board{
		LineNo:   -1,
		Sections: []models.Section{},
	}
	titleIndex := -1
	for i, h := range headings {
		if h.Level == 1 {
			titleIndex = i
			board.Title = h.Text
			board.LineNo = h.LineNo
			break
		}
	}

	var currentSection *models.Section
	var currentColumn *models.Column

	closeColumn := func() {
		if currentColumn != nil {
			currentSection.Columns = append(currentSection.Columns, *currentColumn)
			currentColumn = nil
		}
	}
	closeSection := func() {
		if currentSection != nil {
			closeColumn()
			board.Sections = append(board.Sections, *currentSection)
			currentSection = nil
		}
	}

	for i, h := range headings {
		if i == titleIndex {
			continue
		}

		switch h.Level {
		case 1:
			closeSection()
			currentSection = &models.Section{
				Title:   h.Text,
				LineNo:  h.LineNo,
				Columns: []models.Column{},
			}
		case 2:
			if currentSection == nil {
				continue
			}
			closeColumn()
			currentColumn = &models.Column{
				Title:  h.Text,
				LineNo: h.LineNo,
				Tasks:  []models.Task{},
			}
		case 3, 4:
			if currentColumn == nil {
				continue
			}
			end := len(lines)
			if i+1 < len(headings) {
				end = headings[i+1].LineNo
			}
			task := ParseTask(strings.Join(lines[h.LineNo:end], "\n"))
			task.LineNo = h.LineNo
			currentColumn.Tasks = append(currentColumn.Tasks, task)
		}
	}

	closeSection()

	return board
}
