package models

// Assignee is the person named by an [@name](profile) link
type Assignee struct {
	Name    string `yaml:"name"`
	Profile string `yaml:"profile,omitempty"`
}

// Task is a level-3 or level-4 heading and the lines below it up to the next heading
type Task struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description,omitempty"`
	DetailFile  string    `yaml:"detail_file,omitempty"` // From [=](path)
	Tags        []string  `yaml:"tags,omitempty"`        // From [#tag](...), in encounter order
	Assignee    *Assignee `yaml:"assignee,omitempty"`    // From [@name](profile)
	Level       int       `yaml:"level"`                 // 3 or 4, 0 when the block had no heading marker
	LineNo      int       `yaml:"line"`
}

// HasDetail returns true if the task references a detail file
func (t Task) HasDetail() bool {
	return t.DetailFile != ""
}

// HasTag reports whether the task carries the given tag
func (t Task) HasTag(tag string) bool {
	for _, tg := range t.Tags {
		if tg == tag {
			return true
		}
	}
	return false
}
