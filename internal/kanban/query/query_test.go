package query

import (
	"reflect"
	"testing"

	"mdboard/internal/kanban/parser"
)

const text = `# Board
# Work
## Todo
### Write parser [#core](x) [@ana](a)
### Write tests [#core](x) [#qa](x)
## Done
### Ship release [@bo](b)
`

func TestTasks(t *testing.T) {
	refs := Tasks(parser.Parse(text))
	if len(refs) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(refs))
	}
	last := refs[2]
	if last.Section != 0 || last.Column != 1 || last.Task != 0 || last.Item.Title != "Ship release" {
		t.Errorf("unexpected ref %+v", last)
	}
	if Tasks(nil) != nil {
		t.Error("expected nil for nil board")
	}
}

func TestFindTasks(t *testing.T) {
	board := parser.Parse(text)

	found := FindTasks(board, "wrt")
	if len(found) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(found))
	}
	for _, ref := range found {
		if ref.Column != 0 {
			t.Errorf("expected matches from Todo, got %+v", ref)
		}
	}

	if got := FindTasks(board, "ship"); len(got) != 1 || got[0].Item.Title != "Ship release" {
		t.Errorf("unexpected matches %+v", got)
	}
	if got := FindTasks(board, "zzz"); len(got) != 0 {
		t.Errorf("expected no matches, got %+v", got)
	}
	if got := FindTasks(board, ""); len(got) != 3 {
		t.Errorf("expected all tasks for empty query, got %d", len(got))
	}
}

func TestCollectAllTags(t *testing.T) {
	tags := CollectAllTags(parser.Parse(text))
	if !reflect.DeepEqual(tags, []string{"core", "qa"}) {
		t.Errorf("expected [core qa], got %v", tags)
	}
}

func TestCollectAssignees(t *testing.T) {
	names := CollectAssignees(parser.Parse(text))
	if !reflect.DeepEqual(names, []string{"ana", "bo"}) {
		t.Errorf("expected [ana bo], got %v", names)
	}
}

func TestTasksWithTag(t *testing.T) {
	found := TasksWithTag(parser.Parse(text), "core")
	if len(found) != 2 || found[1].Item.Title != "Write tests" {
		t.Errorf("unexpected tasks %+v", found)
	}
}
