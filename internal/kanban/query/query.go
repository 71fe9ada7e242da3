// Package query answers read-only questions about a parsed board.
package query

import (
	"sort"

	"mdboard/internal/kanban/models"

	"github.com/sahilm/fuzzy"
)

// TaskRef locates a task by its indices in the board
type TaskRef struct {
	Section int
	Column  int
	Task    int
	Item    models.Task
}

// Tasks flattens the board into task references in source order
func Tasks(board *models.Board) []TaskRef {
	if board == nil {
		return nil
	}
	var refs []TaskRef
	for s, section := range board.Sections {
		for c, column := range section.Columns {
			for t, task := range column.Tasks {
				refs = append(refs, TaskRef{Section: s, Column: c, Task: t, Item: task})
			}
		}
	}
	return refs
}

// FindTasks fuzzy-matches query against task titles, best match first
func FindTasks(board *models.Board, query string) []TaskRef {
	refs := Tasks(board)
	if query == "" {
		return refs
	}

	titles := make([]string, len(refs))
	for i, ref := range refs {
		titles[i] = ref.Item.Title
	}

	matches := fuzzy.Find(query, titles)
	found := make([]TaskRef, 0, len(matches))
	for _, m := range matches {
		found = append(found, refs[m.Index])
	}
	return found
}

// TasksWithTag returns every task carrying tag, in source order
func TasksWithTag(board *models.Board, tag string) []TaskRef {
	var found []TaskRef
	for _, ref := range Tasks(board) {
		if ref.Item.HasTag(tag) {
			found = append(found, ref)
		}
	}
	return found
}

// CollectAllTags gathers all unique tags across all tasks in a board
func CollectAllTags(board *models.Board) []string {
	tagSet := make(map[string]bool)
	for _, ref := range Tasks(board) {
		for _, tag := range ref.Item.Tags {
			tagSet[tag] = true
		}
	}
	return sortedKeys(tagSet)
}

// CollectAssignees gathers all unique assignee names in a board
func CollectAssignees(board *models.Board) []string {
	nameSet := make(map[string]bool)
	for _, ref := range Tasks(board) {
		if ref.Item.Assignee != nil {
			nameSet[ref.Item.Assignee.Name] = true
		}
	}
	return sortedKeys(nameSet)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
