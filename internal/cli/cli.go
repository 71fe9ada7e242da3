package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"mdboard/internal/config"
	"mdboard/internal/kanban/fs"
	"mdboard/internal/kanban/operations"
	"mdboard/internal/logs"
	"mdboard/internal/tui"
)

// session carries what every command needs
type session struct {
	cfg     *config.Config
	stdout  io.Writer
	stderr  io.Writer
	confirm operations.Confirmer
}

// Run executes the CLI with the given arguments and returns the exit code.
// The first argument is the command or the namespace ("section", "column", "task").
func Run(args []string, cfg *config.Config, stdout, stderr io.Writer) int {
	s := &session{cfg: cfg, stdout: stdout, stderr: stderr}
	if cfg.AssumeYes {
		s.confirm = operations.AlwaysConfirm
	} else {
		s.confirm = tui.Prompter{In: os.Stdin, Out: stderr}
	}
	return s.run(args)
}

func (s *session) run(args []string) int {
	if len(args) == 0 {
		s.printUsage()
		return 1
	}

	command := args[0]
	subArgs := args[1:]

	switch command {
	case "show", "ls":
		return s.runShow(subArgs)
	case "tags":
		return s.runTags(subArgs)
	case "find":
		return s.runFind(subArgs)
	case "detail":
		return s.runDetail(subArgs)
	case "new":
		return s.runNew(subArgs)
	case "rename":
		return s.runRenameBoard(subArgs)
	case "section", "s":
		return s.runSectionCommand(subArgs)
	case "column", "c":
		return s.runColumnCommand(subArgs)
	case "task", "t":
		return s.runTaskCommand(subArgs)
	case "help", "-h", "--help":
		s.printUsage()
		return 0
	default:
		fmt.Fprintf(s.stderr, "Unknown command: %s\n", command)
		s.printUsage()
		return 1
	}
}

// openEditor opens the configured board file for editing
func (s *session) openEditor() (*operations.Editor, bool) {
	buf, err := fs.OpenBoard(s.cfg.Board)
	if err != nil {
		fmt.Fprintf(s.stderr, "Error: %v\n", err)
		return nil, false
	}
	editor := operations.NewEditor(buf)
	if editor.Board() == nil {
		fmt.Fprintf(s.stderr, "Error: %s: %v\n", s.cfg.Board, operations.ErrNoBoard)
		return nil, false
	}
	return editor, true
}

// report prints the outcome of an edit and returns the exit code
func (s *session) report(applied bool, err error, done string) int {
	if err != nil {
		logs.Logger.Error("edit failed", "board", s.cfg.Board, "err", err)
		fmt.Fprintf(s.stderr, "Error: %v\n", err)
		return 1
	}
	if !applied {
		fmt.Fprintln(s.stdout, "No change.")
		return 0
	}
	fmt.Fprintln(s.stdout, done)
	return 0
}

// indices parses 1-based positions into 0-based indices
func (s *session) indices(args []string, n int, usage string) ([]int, bool) {
	if len(args) < n {
		fmt.Fprintf(s.stderr, "Usage: mdboard %s\n", usage)
		return nil, false
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			fmt.Fprintf(s.stderr, "Error: %q is not a number\n", args[i])
			return nil, false
		}
		out[i] = v - 1
	}
	return out, true
}

func (s *session) printUsage() {
	fmt.Fprintln(s.stdout, `mdboard - edit markdown outline boards

Usage: mdboard [flags] <command> [arguments]

Board commands:
  show [--yaml]              Print the board (sections, columns, tasks)
  tags                       List tags and assignees
  find <query>               Fuzzy-search task titles
  detail <s> <c> <t>         Show the detail file linked from a task
  new <title>                Create the board file
  rename <title>             Rename the board

Section commands:
  section add [--after N] <title>
  section rename <s> <title>
  section up|down <s>
  section rm <s>

Column commands:
  column add [--after N] <s> <title>
  column rename <s> <c> <title>
  column up|down <s> <c>
  column rm <s> <c>

Task commands:
  task add [--detail] [--tag a,b] [--due DATE] [--priority N] <s> <c> <title>
  task up|down <s> <c> <t>
  task move <s> <c> <t> <to-s> <to-c>
  task rm <s> <c> <t>

Positions are 1-based as printed by "show".

Flags:
  -b, --board <path>   Board file (default board.md)
  -y, --yes            Do not ask before deleting
      --log-level      debug, info, warn, error`)
}
