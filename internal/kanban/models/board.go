package models

// Board is the parsed view of a board document. It is rebuilt from the text after
// every edit and never patched in place.
type Board struct {
	Title    string    `yaml:"title"`
	LineNo   int       `yaml:"line"` // line of the title heading, -1 if there is none
	Sections []Section `yaml:"sections"`
}

// Section is a level-1 heading after the board title
type Section struct {
	Title   string   `yaml:"title"`
	LineNo  int      `yaml:"line"`
	Columns []Column `yaml:"columns"`
}

// Column is a level-2 heading inside a section
type Column struct {
	Title  string `yaml:"title"`
	LineNo int    `yaml:"line"`
	Tasks  []Task `yaml:"tasks"`
}

// HasTitle reports whether the document had a level-1 title heading
func (b *Board) HasTitle() bool {
	return b.LineNo >= 0
}

// GetSection returns a pointer to the section at index, or nil
func (b *Board) GetSection(index int) *Section {
	if index < 0 || index >= len(b.Sections) {
		return nil
	}
	return &b.Sections[index]
}

// GetColumn returns a pointer to the column at (section, column), or nil
func (b *Board) GetColumn(sectionIndex, columnIndex int) *Column {
	section := b.GetSection(sectionIndex)
	if section == nil || columnIndex < 0 || columnIndex >= len(section.Columns) {
		return nil
	}
	return &section.Columns[columnIndex]
}

// GetTask returns a pointer to the task at (section, column, task), or nil
func (b *Board) GetTask(sectionIndex, columnIndex, taskIndex int) *Task {
	column := b.GetColumn(sectionIndex, columnIndex)
	if column == nil || taskIndex < 0 || taskIndex >= len(column.Tasks) {
		return nil
	}
	return &column.Tasks[taskIndex]
}

// IsLastSection checks if index is the last section
func (b *Board) IsLastSection(index int) bool {
	return index == len(b.Sections)-1
}

// IsLastColumn checks if index is the last column of the section
func (s *Section) IsLastColumn(index int) bool {
	return index == len(s.Columns)-1
}

// TaskCount returns the number of tasks across all columns of the section
func (s *Section) TaskCount() int {
	n := 0
	for _, col := range s.Columns {
		n += len(col.Tasks)
	}
	return n
}
