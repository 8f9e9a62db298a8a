package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/config"
	"folio/internal/project"
	"folio/internal/stats"
	"folio/internal/telemetry"
	"folio/internal/ui"
	"folio/internal/watcher"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	// The alt screen owns stdout, so logs go to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "folio")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx := context.Background()

	tp, err := telemetry.Setup(ctx)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Printf("folio: telemetry shutdown: %v", err)
		}
	}()

	store, tracker, closeStore, err := stats.Open(ctx, cfg.StatsFormat, cfg.StatsPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Printf("folio: close stats: %v", err)
		}
	}()

	loader := project.NewLoader(cfg.ProjectsSource,
		project.WithHTTPClient(&http.Client{Timeout: cfg.FetchTimeout}))

	deps := ui.Deps{
		Loader:         loader,
		Stats:          store,
		Tracker:        tracker,
		Clipboard:      clipboard.WriteAll,
		RevealInterval: cfg.RevealInterval,
		FetchTimeout:   cfg.FetchTimeout,
	}
	if cfg.ProbeImages {
		deps.Prober = project.NewImageProber(&http.Client{Timeout: cfg.FetchTimeout})
	}
	if cfg.Watch && !loader.IsRemote() {
		w, err := watcher.New(loader.Path(), watcher.WithOnError(func(err error) {
			log.Printf("folio: watch %s: %v", loader.Path(), err)
		}))
		if err == nil {
			err = w.Start()
		}
		if err != nil {
			log.Printf("folio: live reload disabled: %v", err)
		} else {
			defer w.Stop()
			deps.Watcher = w
		}
	}

	model := ui.NewAppModel(deps).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
