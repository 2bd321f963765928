package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"golang.org/x/term"

	"github.com/lixenwraith/vi-dash/config"
	"github.com/lixenwraith/vi-dash/engine"
	"github.com/lixenwraith/vi-dash/terminal"
	"github.com/lixenwraith/vi-dash/terminal/tui"
)

var (
	configFlag = flag.String("config", "", "Config file (default $VIDASH_CONFIG or ~/.config/vi-dash/config.toml)")
	debugFlag  = flag.Bool("debug", false, "Write a debug log (path from log.file)")
	treeFlag   = flag.Bool("print-tree", false, "Print the layout tree for the current terminal size and exit")
	mouseFlag  = flag.Bool("mouse", false, "Enable mouse input")
	colorFlag  = flag.String("color", "", "Color mode: auto, truecolor, 256 (overrides config)")
)

func main() {
	// Restore the terminal before printing anything if a panic escapes the runtime
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mVI-DASH CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-dash: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	applyFlags(&cfg)

	mode, err := config.ParseColorMode(cfg.Terminal.Color)
	if err != nil {
		return err
	}
	theme, err := cfg.Theme.Theme()
	if err != nil {
		return err
	}

	logFile, err := setupLogging(cfg.Log.File, cfg.Log.Debug)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	dash, err := buildDashboard()
	if err != nil {
		return err
	}
	rt, err := engine.New(dash.root,
		engine.WithFrameInterval(cfg.Frame.Interval),
		engine.WithMessageRounds(cfg.Frame.MessageRounds),
		engine.WithTheme(theme),
		engine.WithLogger(log.Default()),
	)
	if err != nil {
		return fmt.Errorf("build layout: %w", err)
	}

	if *treeFlag {
		w, h := stdoutSize()
		return printTree(os.Stdout, rt.Describe(tui.Rect{W: w, H: h}))
	}

	terminal.ForceColorMode(mode)
	log.Printf("color mode %s, mouse %t", mode, cfg.Terminal.Mouse)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rt.Run(ctx, terminal.New(terminal.WithMouse(cfg.Terminal.Mouse)))
}

// applyFlags lets explicitly set flags win over file and env configuration
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Log.Debug = *debugFlag
		case "mouse":
			cfg.Terminal.Mouse = *mouseFlag
		case "color":
			cfg.Terminal.Color = *colorFlag
		}
	})
}

// stdoutSize falls back to 80x24 when stdout is not a terminal
func stdoutSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}
