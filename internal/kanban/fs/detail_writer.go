package fs

import (
	"bytes"
	"os"
	"path"
	"path/filepath"

	"mdboard/internal/kanban/models"

	"gopkg.in/yaml.v3"
)

// DetailsDir is where new detail files are created, relative to the board file
const DetailsDir = "details"

// WriteDetail writes a Detail to a markdown file with frontmatter
func WriteDetail(detail models.Detail, path string) error {
	var buf bytes.Buffer

	if len(detail.Tags) > 0 || len(detail.URLs) > 0 || detail.DueDate != nil || detail.Priority > 0 {
		fm := Frontmatter{
			Tags:     detail.Tags,
			URLs:     detail.URLs,
			Priority: detail.Priority,
		}
		if detail.DueDate != nil {
			fm.Due = detail.DueDate.Format("2006-01-02")
		}

		yamlBytes, err := yaml.Marshal(fm)
		if err != nil {
			return err
		}

		buf.WriteString("---\n")
		buf.Write(yamlBytes)
		buf.WriteString("---\n\n")
	}

	buf.WriteString(detail.Content)

	return os.WriteFile(path, buf.Bytes(), 0644)
}

// CreateDetail creates the detail file for a new task next to the board and
// returns the reference to put in [=](ref). The file name comes from
// detail.Title; an empty Content becomes a single "# Title" heading.
func CreateDetail(boardPath string, detail models.Detail) (string, error) {
	dir := filepath.Join(filepath.Dir(boardPath), DetailsDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	filename := UniqueFilename(Slugify(detail.Title), dir, "")
	if detail.Content == "" {
		detail.Content = "# " + detail.Title + "\n"
	}
	if err := WriteDetail(detail, filepath.Join(dir, filename)); err != nil {
		return "", err
	}

	return path.Join(DetailsDir, filename), nil
}
