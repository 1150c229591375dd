package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"life-tiles/internal/app"
	"life-tiles/internal/core"
	"life-tiles/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("life-tui", flag.ContinueOnError)
	cfg := app.NewConfig()
	cfg.Bind(fs)
	logPath := fs.String("log", "", "write warnings to this file instead of discarding them")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// The terminal belongs to bubbletea; warnings go to a file or nowhere.
	logger := log.New(io.Discard, "", log.LstdFlags)
	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "life")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger = log.Default()
	}

	notifier := tui.NewNotifier()
	repeater := core.NewRepeater()
	sess, closeStore, err := app.OpenSession(ctx, cfg, repeater, notifier, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Printf("close store: %v", err)
		}
	}()
	defer sess.Stop()

	program := tea.NewProgram(tui.NewModel(sess, notifier, cfg.SeedFunc()), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
