package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/termsnake/termsnake/internal/config"
	"github.com/termsnake/termsnake/internal/platform/tui"
)

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, normal, hard or fixed)\n", flagDifficulty)
			os.Exit(1)
		}
		config.ApplyPreset(&cfg, preset)
	}
	cfg.Normalize()

	// Probe the terminal size; Bubble Tea sends the live size on startup, but
	// the first frame needs something to work with.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open debug log: %v\n", err)
		logger = log.New(io.Discard)
		closeLog = func() {}
	}

	runErr := tui.Run(tui.Options{
		Config: cfg,
		Width:  width,
		Height: height,
		Seed:   flagSeed,
		Logger: logger,
	})

	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newLogger returns a file-backed logger when --debug is set, otherwise a
// discard logger. Logging to stderr would corrupt the alternate screen.
func newLogger() (*log.Logger, func(), error) {
	if !flagDebug {
		return log.New(io.Discard), func() {}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, err
	}

	dir := filepath.Join(home, ".termsnake")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})

	return logger, func() { f.Close() }, nil
}
