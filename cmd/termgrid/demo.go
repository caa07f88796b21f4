package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jbickler/termgrid/internal/tui/demo"
)

func newDemoCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Launch the interactive widget demo",
		Long:  "Launch the interactive TUI demo: a validated form feeding a sortable,\nselectable, paginated data grid with light and dark themes.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, flags)
		},
	}
}

func runDemo(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg, flags)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	// Without a terminal there is no interactive session to run; fall
	// back to the static showcase so piped output stays useful.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Warn("stdout is not a terminal, printing showcase instead")
		return runShowcase(cmd, cfg)
	}

	log = log.WithComponent("demo")
	log.WithFields(map[string]any{"theme": cfg.Theme, "page_size": cfg.PageSize}).Info("starting demo")

	program := tea.NewProgram(demo.NewModel(cfg, log), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Error(err, "demo exited with error")
		return err
	}
	return nil
}
