package models

import "time"

// DetailURL represents a URL with an optional label
type DetailURL struct {
	Label string `yaml:"label,omitempty"`
	URL   string `yaml:"url"`
}

// Detail is the markdown file a task links to with [=](path)
type Detail struct {
	Path     string      // Absolute path of the detail file
	Title    string      // First H1, "Untitled" if missing
	Tags     []string    // From YAML frontmatter
	URLs     []DetailURL // From YAML frontmatter
	Preview  string      // First paragraphs, truncated
	Content  string      // Markdown body without frontmatter
	DueDate  *time.Time  // From YAML frontmatter (ISO 8601 date)
	Priority int         // From YAML frontmatter (0 = unset)
}
