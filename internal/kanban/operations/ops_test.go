package operations

import (
	"testing"

	"mdboard/internal/kanban/buffer"
	"mdboard/internal/kanban/parser"
)

const doc = "# Board\n\n# A\n## A1\n### t1\n## A2\n# B\n## B1\n### t2\nbody\n# C\n"

func applyPlan(t *testing.T, text string, edit buffer.Edit, ok bool) string {
	t.Helper()
	if !ok {
		t.Fatal("expected an edit, got no-op")
	}
	out, err := edit.ApplyTo(text)
	if err != nil {
		t.Fatalf("apply error: %v", err)
	}
	return out
}

func TestPlanRenameSection(t *testing.T) {
	board := parser.Parse(doc)

	edit, ok := PlanRenameSection(doc, board, 1, "Beta")
	got := applyPlan(t, doc, edit, ok)

	expected := "# Board\n\n# A\n## A1\n### t1\n## A2\n# Beta\n## B1\n### t2\nbody\n# C\n"
	if got != expected {
		t.Errorf("expected:\n%q\ngot:\n%q", expected, got)
	}
}

func TestPlanRenameSection_SameTitleIsIdentity(t *testing.T) {
	board := parser.Parse(doc)
	for i, section := range board.Sections {
		edit, ok := PlanRenameSection(doc, board, i, section.Title)
		if got := applyPlan(t, doc, edit, ok); got != doc {
			t.Errorf("section %d: rename to own title changed text to %q", i, got)
		}
	}
}

func TestPlanRenameSection_OwnTitleKeepsSpacing(t *testing.T) {
	text := "# Board\n\n#   A\n## A1\n# B \n## B1\n"
	board := parser.Parse(text)

	for i := range board.Sections {
		title, err := ValidateTitle(board.Sections[i].Title)
		if err != nil {
			t.Fatalf("validate error: %v", err)
		}
		edit, ok := PlanRenameSection(text, board, i, title)
		if got := applyPlan(t, text, edit, ok); got != text {
			t.Errorf("section %d: rename to own title changed text to %q", i, got)
		}
	}

	edit, ok := PlanRenameSection(text, board, 0, "Alpha")
	expected := "# Board\n\n# Alpha\n## A1\n# B \n## B1\n"
	if got := applyPlan(t, text, edit, ok); got != expected {
		t.Errorf("expected:\n%q\ngot:\n%q", expected, got)
	}
}

func TestPlanRenameColumn(t *testing.T) {
	board := parser.Parse(doc)

	edit, ok := PlanRenameColumn(doc, board, 0, 1, "Later")
	got := applyPlan(t, doc, edit, ok)

	expected := "# Board\n\n# A\n## A1\n### t1\n## Later\n# B\n## B1\n### t2\nbody\n# C\n"
	if got != expected {
		t.Errorf("expected:\n%q\ngot:\n%q", expected, got)
	}

	if _, ok := PlanRenameColumn(doc, board, 2, 0, "x"); ok {
		t.Error("expected no-op for section without columns")
	}
}

func TestPlanRenameBoard(t *testing.T) {
	board := parser.Parse(doc)
	edit, ok := PlanRenameBoard(doc, board, "Plan")
	got := applyPlan(t, doc, edit, ok)
	if got[:7] != "# Plan\n" {
		t.Errorf("expected renamed title, got %q", got)
	}

	untitled := "## orphan\n"
	if _, ok := PlanRenameBoard(untitled, parser.Parse(untitled), "x"); ok {
		t.Error("expected no-op without a title heading")
	}
}

func TestPlanInsertSection(t *testing.T) {
	board := parser.Parse(doc)

	edit, ok := PlanInsertSection(doc, board, -1, "First")
	got := applyPlan(t, doc, edit, ok)
	expected := "# Board\n\n# First\n\n# A\n## A1\n### t1\n## A2\n# B\n## B1\n### t2\nbody\n# C\n"
	if got != expected {
		t.Errorf("insert before first:\nexpected %q\ngot      %q", expected, got)
	}

	edit, ok = PlanInsertSection(doc, board, 0, "Mid")
	got = applyPlan(t, doc, edit, ok)
	expected = "# Board\n\n# A\n## A1\n### t1\n## A2\n# Mid\n\n# B\n## B1\n### t2\nbody\n# C\n"
	if got != expected {
		t.Errorf("insert in middle:\nexpected %q\ngot      %q", expected, got)
	}

	edit, ok = PlanInsertSection(doc, board, 2, "Last")
	got = applyPlan(t, doc, edit, ok)
	if got != doc+"\n\n# Last\n\n" {
		t.Errorf("insert after last: got %q", got)
	}

	if _, ok := PlanInsertSection(doc, board, 3, "x"); ok {
		t.Error("expected no-op past the last section")
	}
	if _, ok := PlanInsertSection(doc, board, -2, "x"); ok {
		t.Error("expected no-op for negative index")
	}
}

func TestPlanInsertSection_NewSectionIsParsed(t *testing.T) {
	text := "# Board\n"
	edit, ok := PlanInsertSection(text, parser.Parse(text), -1, "Todo")
	got := applyPlan(t, text, edit, ok)

	board := parser.Parse(got)
	if len(board.Sections) != 1 || board.Sections[0].Title != "Todo" {
		t.Errorf("expected one Todo section, got %+v", board.Sections)
	}
	if board.Title != "Board" {
		t.Errorf("board title changed to %q", board.Title)
	}
}

func TestPlanInsertSection_NoTitle(t *testing.T) {
	text := "## orphan\n"
	if _, ok := PlanInsertSection(text, parser.Parse(text), -1, "x"); ok {
		t.Error("expected no-op when the document has no title")
	}
	if _, ok := PlanInsertSection("", nil, -1, "x"); ok {
		t.Error("expected no-op without a board")
	}
}

func TestPlanInsertColumn(t *testing.T) {
	board := parser.Parse(doc)

	edit, ok := PlanInsertColumn(doc, board, 0, -1, "A0")
	got := applyPlan(t, doc, edit, ok)
	expected := "# Board\n\n# A\n## A0\n\n## A1\n### t1\n## A2\n# B\n## B1\n### t2\nbody\n# C\n"
	if got != expected {
		t.Errorf("insert first column:\nexpected %q\ngot      %q", expected, got)
	}

	edit, ok = PlanInsertColumn(doc, board, 0, 1, "A3")
	got = applyPlan(t, doc, edit, ok)
	expected = "# Board\n\n# A\n## A1\n### t1\n## A2\n## A3\n\n# B\n## B1\n### t2\nbody\n# C\n"
	if got != expected {
		t.Errorf("insert at section end:\nexpected %q\ngot      %q", expected, got)
	}

	edit, ok = PlanInsertColumn(doc, board, 2, -1, "C1")
	got = applyPlan(t, doc, edit, ok)
	if got != doc+"\n\n## C1\n\n" {
		t.Errorf("insert into last section: got %q", got)
	}
	if reparsed := parser.Parse(got); reparsed.Sections[2].Columns[0].Title != "C1" {
		t.Errorf("expected C1 under C, got %+v", reparsed.Sections[2])
	}

	if _, ok := PlanInsertColumn(doc, board, 0, 2, "x"); ok {
		t.Error("expected no-op past the last column")
	}
	if _, ok := PlanInsertColumn(doc, board, 5, -1, "x"); ok {
		t.Error("expected no-op for unknown section")
	}
}

func TestPlanMoveSectionUp(t *testing.T) {
	board := parser.Parse(doc)

	edit, ok := PlanMoveSectionUp(doc, board, 1)
	got := applyPlan(t, doc, edit, ok)

	expected := "# Board\n\n# B\n## B1\n### t2\nbody\n# A\n## A1\n### t1\n## A2\n# C\n"
	if got != expected {
		t.Errorf("expected:\n%q\ngot:\n%q", expected, got)
	}
	if len(got) != len(doc) {
		t.Errorf("expected length %d, got %d", len(doc), len(got))
	}
}

func TestPlanMoveSection_SwapRestores(t *testing.T) {
	board := parser.Parse(doc)
	edit, ok := PlanMoveSectionUp(doc, board, 2)
	moved := applyPlan(t, doc, edit, ok)

	edit, ok = PlanMoveSectionDown(moved, parser.Parse(moved), 1)
	restored := applyPlan(t, moved, edit, ok)

	if restored != doc {
		t.Errorf("expected original text after swapping back, got %q", restored)
	}
}

func TestPlanMoveSection_Bounds(t *testing.T) {
	board := parser.Parse(doc)

	if _, ok := PlanMoveSectionUp(doc, board, 0); ok {
		t.Error("expected no-op moving first section up")
	}
	if _, ok := PlanMoveSectionDown(doc, board, 2); ok {
		t.Error("expected no-op moving last section down")
	}
	if _, ok := PlanMoveSectionUp(doc, nil, 1); ok {
		t.Error("expected no-op without a board")
	}
}

func TestPlanMoveSection_UnterminatedTail(t *testing.T) {
	text := "# Board\n# A\nx\n# B\ny"

	edit, ok := PlanMoveSectionUp(text, parser.Parse(text), 1)
	moved := applyPlan(t, text, edit, ok)
	if moved != "# Board\n# B\ny\n# A\nx" {
		t.Errorf("unexpected text %q", moved)
	}

	edit, ok = PlanMoveSectionDown(moved, parser.Parse(moved), 0)
	restored := applyPlan(t, moved, edit, ok)
	if restored != text {
		t.Errorf("expected %q, got %q", text, restored)
	}
}

func TestPlanMoveColumnUp(t *testing.T) {
	board := parser.Parse(doc)

	edit, ok := PlanMoveColumnUp(doc, board, 0, 1)
	got := applyPlan(t, doc, edit, ok)

	expected := "# Board\n\n# A\n## A2\n## A1\n### t1\n# B\n## B1\n### t2\nbody\n# C\n"
	if got != expected {
		t.Errorf("expected:\n%q\ngot:\n%q", expected, got)
	}
	if len(got) != len(doc) {
		t.Errorf("expected length %d, got %d", len(doc), len(got))
	}

	edit, ok = PlanMoveColumnDown(got, parser.Parse(got), 0, 0)
	if restored := applyPlan(t, got, edit, ok); restored != doc {
		t.Errorf("expected original after moving back, got %q", restored)
	}
}

func TestPlanMoveColumn_StaysInSection(t *testing.T) {
	board := parser.Parse(doc)

	if _, ok := PlanMoveColumnDown(doc, board, 0, 1); ok {
		t.Error("expected no-op moving last column of a section down")
	}
	if _, ok := PlanMoveColumnUp(doc, board, 1, 0); ok {
		t.Error("expected no-op moving first column of a section up")
	}
}

func TestPlanRemoveSection(t *testing.T) {
	board := parser.Parse(doc)

	edit, ok := PlanRemoveSection(doc, board, 0)
	got := applyPlan(t, doc, edit, ok)
	expected := "# Board\n\n\n# B\n## B1\n### t2\nbody\n# C\n"
	if got != expected {
		t.Errorf("remove first:\nexpected %q\ngot      %q", expected, got)
	}

	edit, ok = PlanRemoveSection(doc, board, 2)
	got = applyPlan(t, doc, edit, ok)
	expected = "# Board\n\n# A\n## A1\n### t1\n## A2\n# B\n## B1\n### t2\nbody\n"
	if got != expected {
		t.Errorf("remove last:\nexpected %q\ngot      %q", expected, got)
	}

	if _, ok := PlanRemoveSection(doc, board, 3); ok {
		t.Error("expected no-op for unknown section")
	}
}

func TestPlanRemoveColumn(t *testing.T) {
	board := parser.Parse(doc)

	edit, ok := PlanRemoveColumn(doc, board, 0, 0)
	got := applyPlan(t, doc, edit, ok)
	expected := "# Board\n\n# A\n\n## A2\n# B\n## B1\n### t2\nbody\n# C\n"
	if got != expected {
		t.Errorf("remove before next column:\nexpected %q\ngot      %q", expected, got)
	}

	edit, ok = PlanRemoveColumn(doc, board, 1, 0)
	got = applyPlan(t, doc, edit, ok)
	expected = "# Board\n\n# A\n## A1\n### t1\n## A2\n# B\n\n# C\n"
	if got != expected {
		t.Errorf("remove before next section:\nexpected %q\ngot      %q", expected, got)
	}
}

func TestPlanRemoveColumn_LastOfDocument(t *testing.T) {
	text := "# Board\n# S\n## C1\n### a\n## C2\n### b\nmore"

	edit, ok := PlanRemoveColumn(text, parser.Parse(text), 0, 1)
	got := applyPlan(t, text, edit, ok)

	if got != "# Board\n# S\n## C1\n### a\n" {
		t.Errorf("unexpected text %q", got)
	}
	board := parser.Parse(got)
	if len(board.Sections[0].Columns) != 1 || len(board.Sections[0].Columns[0].Tasks) != 1 {
		t.Errorf("expected C1 and its task intact, got %+v", board.Sections[0])
	}
}

func TestPlanInsertTask(t *testing.T) {
	board := parser.Parse(doc)

	edit, ok := PlanInsertTask(doc, board, 0, 0, "t0")
	got := applyPlan(t, doc, edit, ok)
	expected := "# Board\n\n# A\n## A1\n### t1\n### t0\n\n## A2\n# B\n## B1\n### t2\nbody\n# C\n"
	if got != expected {
		t.Errorf("expected:\n%q\ngot:\n%q", expected, got)
	}

	tasks := parser.Parse(got).Sections[0].Columns[0].Tasks
	if len(tasks) != 2 || tasks[1].Title != "t0" {
		t.Errorf("expected t0 appended, got %+v", tasks)
	}
}

func TestPlanMoveTask(t *testing.T) {
	text := "# Board\n# S\n## C\n### one\nx\n### two\n### three\n"
	board := parser.Parse(text)

	edit, ok := PlanMoveTaskUp(text, board, 0, 0, 1)
	got := applyPlan(t, text, edit, ok)
	if got != "# Board\n# S\n## C\n### two\n### one\nx\n### three\n" {
		t.Errorf("unexpected move up result %q", got)
	}

	edit, ok = PlanMoveTaskDown(text, board, 0, 0, 1)
	got = applyPlan(t, text, edit, ok)
	if got != "# Board\n# S\n## C\n### one\nx\n### three\n### two\n" {
		t.Errorf("unexpected move down result %q", got)
	}

	if _, ok := PlanMoveTaskDown(text, board, 0, 0, 2); ok {
		t.Error("expected no-op moving last task down")
	}
}

func TestPlanMoveTaskToColumn(t *testing.T) {
	board := parser.Parse(doc)

	edit, ok := PlanMoveTaskToColumn(doc, board, 0, 0, 0, 1, 0)
	got := applyPlan(t, doc, edit, ok)
	expected := "# Board\n\n# A\n## A1\n## A2\n# B\n## B1\n### t2\nbody\n### t1\n# C\n"
	if got != expected {
		t.Errorf("move down:\nexpected %q\ngot      %q", expected, got)
	}

	edit, ok = PlanMoveTaskToColumn(doc, board, 1, 0, 0, 0, 1)
	got = applyPlan(t, doc, edit, ok)
	expected = "# Board\n\n# A\n## A1\n### t1\n## A2\n### t2\nbody\n# B\n## B1\n# C\n"
	if got != expected {
		t.Errorf("move up:\nexpected %q\ngot      %q", expected, got)
	}

	if _, ok := PlanMoveTaskToColumn(doc, board, 0, 0, 0, 0, 0); ok {
		t.Error("expected no-op moving into the same column")
	}
	if _, ok := PlanMoveTaskToColumn(doc, board, 0, 0, 0, 2, 0); ok {
		t.Error("expected no-op for missing destination column")
	}
}

func TestPlanRemoveTask(t *testing.T) {
	board := parser.Parse(doc)

	edit, ok := PlanRemoveTask(doc, board, 1, 0, 0)
	got := applyPlan(t, doc, edit, ok)
	expected := "# Board\n\n# A\n## A1\n### t1\n## A2\n# B\n## B1\n\n# C\n"
	if got != expected {
		t.Errorf("expected:\n%q\ngot:\n%q", expected, got)
	}
}

func TestValidateTitle(t *testing.T) {
	if got, err := ValidateTitle("  Todo "); err != nil || got != "Todo" {
		t.Errorf("expected trimmed title, got %q, %v", got, err)
	}
	if _, err := ValidateTitle("   "); err == nil {
		t.Error("expected error for empty title")
	}
	if _, err := ValidateTitle("a\nb"); err == nil {
		t.Error("expected error for multi-line title")
	}
}
