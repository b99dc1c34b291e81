package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/quire/internal/command"
	"github.com/jask/quire/internal/config"
	"github.com/jask/quire/internal/history"
	"github.com/jask/quire/internal/keyseq"
	"github.com/jask/quire/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "config file (default "+config.DefaultPath()+")")
	logPath := flag.String("log", "", "log file (default "+logging.DefaultPath()+")")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "quire:", err)
		os.Exit(1)
	}
	if *logPath != "" {
		cfg.Log.File = *logPath
	}
	logging.Init(cfg.Log.Level, cfg.Log.File)
	defer logging.Sync()

	// Built-in bindings are code, a failure there is a bug. User
	// bindings are data, a bad one is skipped with a warning.
	bindings := keyseq.NewBindings()
	for _, b := range config.DefaultBinds() {
		if err := bindings.Bind(b.Seq, b.Command); err != nil {
			fmt.Fprintln(os.Stderr, "quire:", err)
			os.Exit(1)
		}
	}
	for _, b := range cfg.Bind {
		if err := bindings.Bind(b.Seq, b.Command); err != nil {
			logging.L().Warnf("skipping binding %q: %v", b.Seq, err)
		}
	}

	var store *history.Store
	if cfg.History.Enabled {
		if err := os.MkdirAll(filepath.Dir(cfg.History.Path), 0o755); err != nil {
			logging.L().Warnf("history disabled: %v", err)
		} else if store, err = history.Open(cfg.History.Path); err != nil {
			logging.L().Warnf("history disabled: %v", err)
			store = nil
		}
	}
	if store != nil {
		defer store.Close()
		if err := store.Prune(cfg.History.Limit); err != nil {
			logging.L().Warnf("history prune: %v", err)
		}
	}

	registry := command.NewRegistry()
	sess := newSession(pageSource{
		registry: registry,
		bindings: bindings,
		store:    store,
		tabWidth: cfg.UI.TabWidth,
		histRows: cfg.History.Limit,
	})
	if err := registerCommands(registry, sess); err != nil {
		fmt.Fprintln(os.Stderr, "quire:", err)
		os.Exit(1)
	}
	registry.Notify(func(inv command.Invocation) {
		logging.L().Infof("ran %s", invLine(inv))
		if store == nil {
			return
		}
		if err := store.Record(inv); err != nil {
			logging.L().Warnf("history record: %v", err)
		}
	})

	dispatcher := command.NewDispatcher(registry)
	matcher := keyseq.NewMatcher(bindings, cfg.Input.CancelKey)

	targets := flag.Args()
	if len(targets) == 0 {
		targets = []string{"quire:help"}
	}
	for _, target := range targets {
		if err := sess.openTab(target); err != nil {
			fmt.Fprintln(os.Stderr, "quire:", err)
			logging.L().Warnf("open %s: %v", target, err)
		}
	}
	if len(sess.tabs) == 0 {
		if err := sess.openTab("quire:help"); err != nil {
			fmt.Fprintln(os.Stderr, "quire:", err)
			os.Exit(1)
		}
	}
	sess.active = 0

	p := tea.NewProgram(newModel(cfg, dispatcher, matcher, sess), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "quire:", err)
		os.Exit(1)
	}
}

func invLine(inv command.Invocation) string {
	parts := make([]string, 0, len(inv.Args)+2)
	if inv.HasCount {
		parts = append(parts, strconv.FormatUint(inv.Count, 10))
	}
	parts = append(parts, inv.Name)
	parts = append(parts, inv.Args...)
	return strings.Join(parts, " ")
}
