// Package main is the entry point for the cmdpal demo palette.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/cmdpal/internal/hydrate"
	"github.com/dshills/cmdpal/internal/palette"
	"github.com/dshills/cmdpal/internal/tui"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	CommandsPath string
	Limit        int
	Export       bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	registry := hydrate.NewRegistry()
	if err := registry.Register("exec", hydrate.ExecFactory); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	engine := hydrate.NewLuaEngine()
	defer engine.Close()
	if err := registry.Register("lua", engine.Factory()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	pal := palette.New()

	// Output from confirmed commands is deferred until the screen is
	// released, so the terminal is never written to mid-draw.
	var message string
	registerBuiltins(pal, &message)

	if opts.CommandsPath != "" {
		data, err := os.ReadFile(opts.CommandsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: read commands: %v\n", err)
			return 1
		}
		source := "descriptor:" + filepath.Base(opts.CommandsPath)
		commands, err := registry.HydrateAll(data, source)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: load commands: %v\n", err)
			return 1
		}
		if err := pal.RegisterAll(commands); err != nil {
			fmt.Fprintf(os.Stderr, "Error: register commands: %v\n", err)
			return 1
		}
	}

	if opts.Export {
		data, err := hydrate.EncodeDescriptors(pal.All())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: export: %v\n", err)
			return 1
		}
		fmt.Println(string(data))
		return 0
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: create screen: %v\n", err)
		return 1
	}

	ui := tui.New(pal, screen, tui.Options{Limit: opts.Limit})
	if err := ui.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if message != "" {
		fmt.Println(message)
	}
	return 0
}

// registerBuiltins adds the demo's core commands.
func registerBuiltins(pal *palette.Palette, message *string) {
	say := func(text string) func() error {
		return func() error {
			*message = text
			return nil
		}
	}

	//nolint:errcheck // static IDs and titles cannot fail validation
	pal.RegisterAll([]*palette.Command{
		{
			ID:       "cmdpal.version",
			Title:    "cmdpal: Show Version",
			Keywords: []string{"about", "build"},
			Category: "cmdpal",
			Source:   "core",
			Action:   say(fmt.Sprintf("cmdpal %s (%s, %s)", version, commit, date)),
		},
		{
			ID:       "cmdpal.hello",
			Title:    "cmdpal: Hello",
			Keywords: []string{"demo", "greeting"},
			Category: "cmdpal",
			Source:   "core",
			Action:   say("hello from cmdpal"),
		},
	})
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.CommandsPath, "commands", "", "Path to a JSON command descriptor file")
	flag.StringVar(&opts.CommandsPath, "c", "", "Path to a JSON command descriptor file (shorthand)")
	flag.IntVar(&opts.Limit, "limit", 0, "Maximum results to display (0 = fit to screen)")
	flag.BoolVar(&opts.Export, "export", false, "Print registered commands as descriptor JSON and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "cmdpal - fuzzy command palette for the terminal\n\n")
		fmt.Fprintf(os.Stderr, "Usage: cmdpal [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  cmdpal                      Open with built-in commands\n")
		fmt.Fprintf(os.Stderr, "  cmdpal -c commands.json     Load commands from a descriptor file\n")
		fmt.Fprintf(os.Stderr, "  cmdpal -c commands.json -export\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("cmdpal %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}
