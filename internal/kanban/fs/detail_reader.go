package fs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mdboard/internal/kanban/models"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// Frontmatter is the YAML header of a detail file
type Frontmatter struct {
	Tags     []string           `yaml:"tags,omitempty"`
	URLs     []models.DetailURL `yaml:"urls,omitempty"`
	Due      string             `yaml:"due,omitempty"`
	Priority int                `yaml:"priority,omitempty"`
}

// ResolveDetailPath resolves a [=](ref) target relative to the board file
func ResolveDetailPath(boardPath, ref string) string {
	if filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(filepath.Dir(boardPath), filepath.FromSlash(ref))
}

// ReadDetail reads a detail file and parses its frontmatter and content
func ReadDetail(detailPath string) (models.Detail, error) {
	content, err := os.ReadFile(detailPath)
	if err != nil {
		return models.Detail{}, err
	}

	fm, body := ParseFrontmatter(content)

	var dueDate *time.Time
	if fm.Due != "" {
		if parsed, err := time.Parse("2006-01-02", fm.Due); err == nil {
			dueDate = &parsed
		}
	}

	tags := fm.Tags
	if tags == nil {
		tags = []string{}
	}

	title, preview := summarize(body)

	return models.Detail{
		Path:     detailPath,
		Title:    title,
		Tags:     tags,
		URLs:     fm.URLs,
		Preview:  preview,
		Content:  body,
		DueDate:  dueDate,
		Priority: fm.Priority,
	}, nil
}

// ParseFrontmatter splits YAML frontmatter from markdown content. Content without
// a well-formed header is returned whole with an empty Frontmatter.
func ParseFrontmatter(content []byte) (Frontmatter, string) {
	lines := bytes.Split(content, []byte("\n"))

	// Check if content starts with ---
	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return Frontmatter{}, string(content)
	}

	// Find the closing ---
	var frontmatterEnd int
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			frontmatterEnd = i
			break
		}
	}

	if frontmatterEnd == 0 {
		return Frontmatter{}, string(content)
	}

	var fm Frontmatter
	frontmatterBytes := bytes.Join(lines[1:frontmatterEnd], []byte("\n"))
	if err := yaml.Unmarshal(frontmatterBytes, &fm); err != nil {
		return Frontmatter{}, string(content)
	}

	body := bytes.TrimLeft(bytes.Join(lines[frontmatterEnd+1:], []byte("\n")), "\n")
	return fm, string(body)
}

// PreviewLimit is the preview length in runes, "..." included
const PreviewLimit = 60

// summarize walks the detail body once: the first level-1 heading is the title,
// the first two non-empty paragraphs form the preview.
func summarize(markdown string) (title, preview string) {
	source := []byte(markdown)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var paragraphs []string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			if title == "" && node.Level == 1 {
				title = string(node.Text(source))
			}
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			if para := string(node.Text(source)); para != "" && len(paragraphs) < 2 {
				paragraphs = append(paragraphs, para)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	if title == "" {
		title = "Untitled"
	}

	runes := []rune(strings.Join(paragraphs, " "))
	if len(runes) > PreviewLimit {
		return title, string(runes[:PreviewLimit-3]) + "..."
	}
	return title, string(runes)
}
