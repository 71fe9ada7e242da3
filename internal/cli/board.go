package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"mdboard/internal/kanban/fs"
	"mdboard/internal/kanban/models"
	"mdboard/internal/kanban/query"
	"mdboard/internal/tui/theme"

	"gopkg.in/yaml.v3"
)

func (s *session) runShow(args []string) int {
	flags := flag.NewFlagSet("show", flag.ContinueOnError)
	flags.SetOutput(s.stderr)
	asYAML := flags.Bool("yaml", false, "Print the structure as YAML")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	editor, ok := s.openEditor()
	if !ok {
		return 1
	}
	board := editor.Board()

	if *asYAML {
		out, err := yaml.Marshal(board)
		if err != nil {
			fmt.Fprintf(s.stderr, "Error encoding board: %v\n", err)
			return 1
		}
		s.stdout.Write(out)
		return 0
	}

	printBoard(s.stdout, board)
	return 0
}

func printBoard(w io.Writer, board *models.Board) {
	if board.HasTitle() {
		fmt.Fprintln(w, theme.Title.Render(board.Title))
	}
	for si, section := range board.Sections {
		fmt.Fprintln(w, theme.Subtitle.Render(fmt.Sprintf("%d. %s", si+1, section.Title)))
		for ci, column := range section.Columns {
			fmt.Fprintln(w, theme.Column.Render(fmt.Sprintf("%d.%d %s (%d)", si+1, ci+1, column.Title, len(column.Tasks))))
			for ti, task := range column.Tasks {
				fmt.Fprintln(w, theme.Task.Render(fmt.Sprintf("%d.%d.%d %s", si+1, ci+1, ti+1, taskLine(task))))
			}
		}
	}
}

func taskLine(task models.Task) string {
	var b strings.Builder
	b.WriteString(task.Title)
	for _, tag := range task.Tags {
		b.WriteString(" " + theme.Tag.Render("#"+tag))
	}
	if task.Assignee != nil {
		b.WriteString(" " + theme.Assignee.Render("@"+task.Assignee.Name))
	}
	if task.HasDetail() {
		b.WriteString(" " + theme.Muted.Render("["+task.DetailFile+"]"))
	}
	return b.String()
}

func (s *session) runTags(args []string) int {
	editor, ok := s.openEditor()
	if !ok {
		return 1
	}
	board := editor.Board()

	for _, tag := range query.CollectAllTags(board) {
		fmt.Fprintf(s.stdout, "#%s (%d)\n", tag, len(query.TasksWithTag(board, tag)))
	}
	for _, name := range query.CollectAssignees(board) {
		fmt.Fprintf(s.stdout, "@%s\n", name)
	}
	return 0
}

func (s *session) runFind(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(s.stderr, "Usage: mdboard find <query>")
		return 1
	}

	editor, ok := s.openEditor()
	if !ok {
		return 1
	}

	found := query.FindTasks(editor.Board(), strings.Join(args, " "))
	if len(found) == 0 {
		fmt.Fprintln(s.stdout, "No tasks found.")
		return 0
	}
	for _, ref := range found {
		fmt.Fprintf(s.stdout, "%d.%d.%d %s\n", ref.Section+1, ref.Column+1, ref.Task+1, taskLine(ref.Item))
	}
	return 0
}

func (s *session) runDetail(args []string) int {
	idx, ok := s.indices(args, 3, "detail <s> <c> <t>")
	if !ok {
		return 1
	}

	editor, ok := s.openEditor()
	if !ok {
		return 1
	}

	task := editor.Board().GetTask(idx[0], idx[1], idx[2])
	if task == nil {
		fmt.Fprintln(s.stderr, "Error: no such task")
		return 1
	}
	if !task.HasDetail() {
		fmt.Fprintf(s.stdout, "%s has no detail file.\n", task.Title)
		return 0
	}

	detail, err := fs.ReadDetail(fs.ResolveDetailPath(s.cfg.Board, task.DetailFile))
	if err != nil {
		fmt.Fprintf(s.stderr, "Error reading detail: %v\n", err)
		return 1
	}

	fmt.Fprintln(s.stdout, theme.Title.Render(detail.Title))
	if detail.Priority > 0 {
		fmt.Fprintf(s.stdout, "Priority: %d\n", detail.Priority)
	}
	if detail.DueDate != nil {
		fmt.Fprintf(s.stdout, "Due: %s\n", detail.DueDate.Format("2006-01-02"))
	}
	if len(detail.Tags) > 0 {
		fmt.Fprintf(s.stdout, "Tags: %s\n", strings.Join(detail.Tags, ", "))
	}
	for _, u := range detail.URLs {
		label := u.Label
		if label == "" {
			label = "link"
		}
		fmt.Fprintf(s.stdout, "%s: %s\n", label, u.URL)
	}
	if detail.Preview != "" {
		fmt.Fprintln(s.stdout, theme.Muted.Render(detail.Preview))
	}
	return 0
}

func (s *session) runNew(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(s.stderr, "Usage: mdboard new <title>")
		return 1
	}
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		fmt.Fprintln(s.stderr, "Error: title cannot be empty")
		return 1
	}

	if _, err := fs.CreateBoard(s.cfg.Board, title); err != nil {
		fmt.Fprintf(s.stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintf(s.stdout, "Created %s\n", s.cfg.Board)
	return 0
}

func (s *session) runRenameBoard(args []string) int {
	editor, ok := s.openEditor()
	if !ok {
		return 1
	}
	applied, err := editor.RenameBoard(strings.Join(args, " "))
	return s.report(applied, err, "Board renamed.")
}
