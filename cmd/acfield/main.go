/*
Package main runs the acfield autocomplete engine.

acfield drives the suggestion popup of a text field: it filters a small
in-memory vocabulary as the user types, sizes and places the popup next to
the field, and handles the keys that move through and accept suggestions.
It can serve a field owned by another process over MessagePack IPC, or run
an interactive terminal demo.

# Usage

Start the IPC server with the default vocabulary:

	acfield

Load candidates from a file and write additions back on exit:

	acfield -words animals.txt -save

Run the terminal demo with debug logging:

	acfield -c -d

# Configuration

A TOML file is created with defaults at ~/.config/acfield/config.toml when
missing:

	[engine]
	match_at_start = false
	add_option = false
	case_sensitive = false
	overflow = true

	[layout]
	max_visible = 5
	padding = 4.0
	add_padding = 8.0
	match_rows_slack = 2.5
	add_rows = 3.5

	[vocab]
	path = ""
	words = ["cat", "Cow", "dog"]
	save_on_exit = false

Unreadable sections fall back to their defaults.

# Vocabulary files

Plain text files (.txt, .lst) hold one candidate per line. MessagePack files
(.msgpack, .mpk) hold a single array of strings.

# IPC Protocol

See package server for the event and response frames.

# Command Line Flags

	-version   Show current version
	-d         Toggle debug logging
	-c         Run the terminal demo
	-config    Path to a custom config file
	-words     Vocabulary file (overrides [vocab] path)
	-save      Save the vocabulary back on exit
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/acfield/internal/logger"
	"github.com/bastiangx/acfield/internal/tui"
	"github.com/bastiangx/acfield/internal/utils"
	"github.com/bastiangx/acfield/pkg/config"
	"github.com/bastiangx/acfield/pkg/server"
	"github.com/bastiangx/acfield/pkg/vocab"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "acfield"
	gh      = "https://github.com/bastiangx/acfield"
)

// sigHandler calls onExit and exits on SIGINT or SIGTERM.
func sigHandler(onExit func()) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		onExit()
		os.Exit(0)
	}()
}

// main wires config, vocabulary and the chosen host together.
func main() {
	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	tuiMode := flag.Bool("c", false, "Run the interactive terminal demo")
	configPath := flag.String("config", "", "Path to custom config file")
	wordsPath := flag.String("words", "", "Vocabulary file, .txt or .msgpack (overrides config)")
	saveVocab := flag.Bool("save", false, "Save the vocabulary back to the words file on exit")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, cfgPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfgPath != "" {
		log.Debugf("Using config file: (%s)", cfgPath)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	source := cfg.Vocab.Path
	if *wordsPath != "" {
		source = *wordsPath
	}
	words := cfg.Vocab.Words
	if source != "" {
		source = pathResolver.ResolveVocabPath(source)
		loaded, err := vocab.Load(source)
		if err != nil {
			log.Fatalf("Failed to load vocabulary: %v", err)
		}
		log.Debugf("Loaded %d words from %s", len(loaded), utils.GetAbsolutePath(source))
		words = loaded
	}
	save := (*saveVocab || cfg.Vocab.Save) && source != ""

	acCfg := cfg.Autocomplete()

	if *tuiMode {
		out := io.Discard
		if *debugMode {
			f, err := tea.LogToFile("acfield-debug.log", "tui")
			if err != nil {
				log.Fatalf("Failed to open debug log: %v", err)
			}
			defer f.Close()
			out = f
		}
		model := tui.New(words, acCfg, logger.NewWithWriter(out, "field"))
		onExit := func() { saveWords(save, source, model.Vocabulary()) }
		sigHandler(onExit)

		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			log.Fatalf("TUI error: %v", err)
		}
		onExit()
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(words, acCfg, os.Stdin, os.Stdout)
	onExit := func() { saveWords(save, source, srv.Controller().Vocabulary()) }
	sigHandler(onExit)

	showStartupInfo(len(words), source)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	onExit()
}

func saveWords(save bool, path string, words []string) {
	if !save {
		return
	}
	if err := vocab.Save(path, words); err != nil {
		log.Errorf("Failed to save vocabulary: %v", err)
		return
	}
	log.Debugf("Saved %d words to %s", len(words), path)
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ acfield ] Autocomplete for text fields")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(words int, source string) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)
	defer log.SetLevel(currentLevel)

	if source == "" {
		source = "config"
	}
	log.Infof("%s %s", AppName, Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("vocabulary: %d words from ( %s )", words, source)
	log.Info("status: ready")
}
