package main

import (
	"flag"
	"fmt"
	"os"

	"mdboard/internal/cli"
	"mdboard/internal/config"
	"mdboard/internal/logs"
)

func main() {
	// Parse CLI flags
	boardFlag := flag.String("board", "", "Board file")
	flag.StringVar(boardFlag, "b", "", "Board file (shorthand)")
	yesFlag := flag.Bool("yes", false, "Do not ask before deleting")
	flag.BoolVar(yesFlag, "y", false, "Do not ask before deleting (shorthand)")
	levelFlag := flag.String("log-level", "", "Log level: debug, info, warn, error")
	flag.Parse()

	// Build CLIFlags
	cliFlags := config.CLIFlags{
		Board:    *boardFlag,
		LogLevel: *levelFlag,
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "yes" || f.Name == "y" {
			cliFlags.AssumeYes = yesFlag
		}
	})

	// Load configuration
	cfg, err := config.Load(cliFlags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logs.Initialize(cfg.LogDir, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
	}

	// Ensure config file exists
	if err := config.EnsureConfigFile(); err != nil {
		logs.Logger.Warn("could not create config file", "err", err)
	}

	code := cli.Run(flag.Args(), cfg, os.Stdout, os.Stderr)
	logs.Close()
	os.Exit(code)
}
