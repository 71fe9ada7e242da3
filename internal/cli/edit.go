package cli

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"mdboard/internal/kanban/fs"
	"mdboard/internal/kanban/models"
)

// afterFlag registers --after; 0 inserts first, -1 (unset) appends
func afterFlag(flags *flag.FlagSet) *int {
	return flags.Int("after", -1, "Insert after this position (0 = first)")
}

// resolveAfter converts the 1-based --after value to the engine's 0-based
// "after" index, where count-1 means "at the end"
func resolveAfter(after, count int) int {
	if after < 0 {
		return count - 1
	}
	return after - 1
}

func (s *session) runSectionCommand(args []string) int {
	if len(args) == 0 {
		s.printUsage()
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "add", "a":
		flags := flag.NewFlagSet("section add", flag.ContinueOnError)
		flags.SetOutput(s.stderr)
		after := afterFlag(flags)
		if err := flags.Parse(cmdArgs); err != nil {
			return 1
		}
		editor, ok := s.openEditor()
		if !ok {
			return 1
		}
		at := resolveAfter(*after, len(editor.Board().Sections))
		applied, err := editor.InsertSection(at, strings.Join(flags.Args(), " "))
		return s.report(applied, err, "Section added.")

	case "rename", "mv":
		idx, ok := s.indices(cmdArgs, 1, "section rename <s> <title>")
		if !ok {
			return 1
		}
		editor, ok := s.openEditor()
		if !ok {
			return 1
		}
		applied, err := editor.RenameSection(idx[0], strings.Join(cmdArgs[1:], " "))
		return s.report(applied, err, "Section renamed.")

	case "up", "down":
		idx, ok := s.indices(cmdArgs, 1, "section "+command+" <s>")
		if !ok {
			return 1
		}
		editor, ok := s.openEditor()
		if !ok {
			return 1
		}
		if command == "up" {
			applied, err := editor.MoveSectionUp(idx[0])
			return s.report(applied, err, "Section moved up.")
		}
		applied, err := editor.MoveSectionDown(idx[0])
		return s.report(applied, err, "Section moved down.")

	case "rm", "delete", "del":
		idx, ok := s.indices(cmdArgs, 1, "section rm <s>")
		if !ok {
			return 1
		}
		editor, ok := s.openEditor()
		if !ok {
			return 1
		}
		applied, err := editor.RemoveSection(idx[0], s.confirm)
		return s.report(applied, err, "Section deleted.")

	default:
		fmt.Fprintf(s.stderr, "Unknown section command: %s\n", command)
		return 1
	}
}

func (s *session) runColumnCommand(args []string) int {
	if len(args) == 0 {
		s.printUsage()
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "add", "a":
		flags := flag.NewFlagSet("column add", flag.ContinueOnError)
		flags.SetOutput(s.stderr)
		after := afterFlag(flags)
		if err := flags.Parse(cmdArgs); err != nil {
			return 1
		}
		idx, ok := s.indices(flags.Args(), 1, "column add [--after N] <s> <title>")
		if !ok {
			return 1
		}
		editor, ok := s.openEditor()
		if !ok {
			return 1
		}
		section := editor.Board().GetSection(idx[0])
		if section == nil {
			fmt.Fprintln(s.stderr, "Error: no such section")
			return 1
		}
		at := resolveAfter(*after, len(section.Columns))
		applied, err := editor.InsertColumn(idx[0], at, strings.Join(flags.Args()[1:], " "))
		return s.report(applied, err, "Column added.")

	case "rename", "mv":
		idx, ok := s.indices(cmdArgs, 2, "column rename <s> <c> <title>")
		if !ok {
			return 1
		}
		editor, ok := s.openEditor()
		if !ok {
			return 1
		}
		applied, err := editor.RenameColumn(idx[0], idx[1], strings.Join(cmdArgs[2:], " "))
		return s.report(applied, err, "Column renamed.")

	case "up", "down":
		idx, ok := s.indices(cmdArgs, 2, "column "+command+" <s> <c>")
		if !ok {
			return 1
		}
		editor, ok := s.openEditor()
		if !ok {
			return 1
		}
		if command == "up" {
			applied, err := editor.MoveColumnUp(idx[0], idx[1])
			return s.report(applied, err, "Column moved up.")
		}
		applied, err := editor.MoveColumnDown(idx[0], idx[1])
		return s.report(applied, err, "Column moved down.")

	case "rm", "delete", "del":
		idx, ok := s.indices(cmdArgs, 2, "column rm <s> <c>")
		if !ok {
			return 1
		}
		editor, ok := s.openEditor()
		if !ok {
			return 1
		}
		applied, err := editor.RemoveColumn(idx[0], idx[1], s.confirm)
		return s.report(applied, err, "Column deleted.")

	default:
		fmt.Fprintf(s.stderr, "Unknown column command: %s\n", command)
		return 1
	}
}

func (s *session) runTaskCommand(args []string) int {
	if len(args) == 0 {
		s.printUsage()
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "add", "a":
		flags := flag.NewFlagSet("task add", flag.ContinueOnError)
		flags.SetOutput(s.stderr)
		withDetail := flags.Bool("detail", false, "Create a linked detail file")
		tags := flags.String("tag", "", "Detail file tags (comma-separated)")
		due := flags.String("due", "", "Detail file due date (YYYY-MM-DD)")
		priority := flags.Int("priority", 0, "Detail file priority")
		if err := flags.Parse(cmdArgs); err != nil {
			return 1
		}
		idx, ok := s.indices(flags.Args(), 2, "task add [--detail] [--tag a,b] [--due DATE] [--priority N] <s> <c> <title>")
		if !ok {
			return 1
		}
		editor, ok := s.openEditor()
		if !ok {
			return 1
		}
		if editor.Board().GetColumn(idx[0], idx[1]) == nil {
			fmt.Fprintln(s.stderr, "Error: no such column")
			return 1
		}

		title := strings.TrimSpace(strings.Join(flags.Args()[2:], " "))
		detail := models.Detail{Title: title, Tags: splitList(*tags), Priority: *priority}
		if *due != "" {
			parsed, err := time.Parse("2006-01-02", *due)
			if err != nil {
				fmt.Fprintf(s.stderr, "Error: invalid due date %q (want YYYY-MM-DD)\n", *due)
				return 1
			}
			detail.DueDate = &parsed
		}
		needsDetail := *withDetail || len(detail.Tags) > 0 || detail.DueDate != nil || detail.Priority > 0
		if needsDetail && title != "" {
			ref, err := fs.CreateDetail(s.cfg.Board, detail)
			if err != nil {
				fmt.Fprintf(s.stderr, "Error creating detail file: %v\n", err)
				return 1
			}
			title += " [=](" + ref + ")"
		}
		applied, err := editor.InsertTask(idx[0], idx[1], title)
		return s.report(applied, err, "Task added.")

	case "up", "down":
		idx, ok := s.indices(cmdArgs, 3, "task "+command+" <s> <c> <t>")
		if !ok {
			return 1
		}
		editor, ok := s.openEditor()
		if !ok {
			return 1
		}
		if command == "up" {
			applied, err := editor.MoveTaskUp(idx[0], idx[1], idx[2])
			return s.report(applied, err, "Task moved up.")
		}
		applied, err := editor.MoveTaskDown(idx[0], idx[1], idx[2])
		return s.report(applied, err, "Task moved down.")

	case "move", "mv":
		idx, ok := s.indices(cmdArgs, 5, "task move <s> <c> <t> <to-s> <to-c>")
		if !ok {
			return 1
		}
		editor, ok := s.openEditor()
		if !ok {
			return 1
		}
		applied, err := editor.MoveTaskToColumn(idx[0], idx[1], idx[2], idx[3], idx[4])
		return s.report(applied, err, "Task moved.")

	case "rm", "delete", "del":
		idx, ok := s.indices(cmdArgs, 3, "task rm <s> <c> <t>")
		if !ok {
			return 1
		}
		editor, ok := s.openEditor()
		if !ok {
			return 1
		}
		applied, err := editor.RemoveTask(idx[0], idx[1], idx[2], s.confirm)
		return s.report(applied, err, "Task deleted.")

	default:
		fmt.Fprintf(s.stderr, "Unknown task command: %s\n", command)
		return 1
	}
}

// splitList splits a comma-separated flag value, dropping empty items
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
