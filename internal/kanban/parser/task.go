package parser

import (
	"regexp"
	"strings"

	"mdboard/internal/kanban/models"
)

// DescriptionLimit is the number of runes kept from a task body before "..." is appended.
const DescriptionLimit = 50

var linkPattern = regexp.MustCompile(`\[([^\[\]\n]*)\]\(([^)\n]*)\)`)

// ParseTask parses one task block: its heading line and the body lines up to the
// next heading. Metadata links are classified by their first marker character:
//
//	[=](path)          detail file, last one wins
//	[#tag](anything)   tag, accumulated in order
//	[@name](profile)   assignee, last one wins
//
// Classified links are removed from the text. Any other link is left as written.
// A link never spans lines and its marker cannot contain brackets.
// LineNo is left for the caller to fill in.
func ParseTask(block string) models.Task {
	task := models.Task{}

	matches := linkPattern.FindAllStringSubmatchIndex(block, -1)

	var cleaned strings.Builder
	last := 0
	for _, m := range matches {
		marker := block[m[2]:m[3]]
		payload := block[m[4]:m[5]]

		switch {
		case marker == "=":
			task.DetailFile = payload
		case strings.HasPrefix(marker, "#"):
			task.Tags = append(task.Tags, marker[1:])
		case strings.HasPrefix(marker, "@"):
			task.Assignee = &models.Assignee{Name: marker[1:], Profile: payload}
		default:
			continue
		}

		cleaned.WriteString(block[last:m[0]])
		last = m[1]
	}
	cleaned.WriteString(block[last:])

	title, description, level := splitHeading(cleaned.String())
	task.Title = title
	task.Description = description
	task.Level = level

	return task
}

// splitHeading separates the "### " or "#### " title line from the body
func splitHeading(text string) (string, string, int) {
	first, rest, _ := strings.Cut(text, "\n")
	first = strings.TrimSuffix(first, "\r")

	level := 0
	switch {
	case strings.HasPrefix(first, "#### "):
		level = 4
	case strings.HasPrefix(first, "### "):
		level = 3
	default:
		return strings.TrimSpace(text), "", 0
	}

	title := strings.TrimSpace(first[level+1:])
	return title, truncate(strings.TrimSpace(rest), DescriptionLimit), level
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
