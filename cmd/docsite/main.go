package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/dgallion1/docsite/internal/config"
	"github.com/dgallion1/docsite/internal/preview"
	"github.com/dgallion1/docsite/internal/render"
	"github.com/dgallion1/docsite/internal/site"
	"github.com/dgallion1/docsite/internal/summary"
)

var CLI struct {
	Verbose bool   `short:"v" help:"Enable debug logging"`
	Dir     string `short:"d" help:"Base directory; the site is written to <dir>/doc-site (env DOCSITE_DIR)"`

	Generate struct {
		Summary string `arg:"" optional:"" help:"Summary file (.json, .yaml, .yml) (env DOCSITE_SUMMARY)"`
		Title   string `help:"Page title (env DOCSITE_TITLE)"`
		Heading string `help:"Navigation heading (env DOCSITE_HEADING)"`
		Intro   string `help:"Markdown file shown in the content pane (env DOCSITE_INTRO)"`
	} `cmd:"" default:"withargs" help:"Generate the documentation site"`

	Serve struct {
		Port string `short:"p" help:"Listen port (env DOCSITE_PORT)"`
	} `cmd:"" help:"Serve a generated site for local preview"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("docsite"),
		kong.Description("Build a static documentation site from a summary file."),
	)

	level := slog.LevelInfo
	if CLI.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	cfg := applyFlags(config.Load())
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	var err error
	switch ctx.Command() {
	case "serve":
		err = runServe(cfg, log)
	default:
		err = runGenerate(cfg, log)
	}
	if err != nil {
		var genErr *site.GenerationError
		if errors.As(err, &genErr) {
			log.Error("generation failed", "kind", genErr.Kind, "path", genErr.Path, "error", genErr.Err)
		} else {
			log.Error("command failed", "error", err)
		}
		os.Exit(1)
	}
}

// applyFlags overlays command-line values on the environment config.
func applyFlags(cfg config.Config) config.Config {
	if CLI.Dir != "" {
		cfg.Directory = CLI.Dir
	}
	if CLI.Generate.Summary != "" {
		cfg.SummaryPath = CLI.Generate.Summary
	}
	if CLI.Generate.Title != "" {
		cfg.Title = CLI.Generate.Title
	}
	if CLI.Generate.Heading != "" {
		cfg.Heading = CLI.Generate.Heading
	}
	if CLI.Generate.Intro != "" {
		cfg.IntroPath = CLI.Generate.Intro
	}
	if CLI.Serve.Port != "" {
		cfg.Port = CLI.Serve.Port
	}
	return cfg
}

func runGenerate(cfg config.Config, log *slog.Logger) error {
	sections, err := summary.Load(cfg.SummaryPath)
	if err != nil {
		return err
	}
	intro, err := cfg.Intro()
	if err != nil {
		return err
	}

	g := site.New(log, site.WithRenderOptions(render.Options{
		Title:   cfg.Title,
		Heading: cfg.Heading,
		Intro:   intro,
	}))
	return g.Generate(cfg.Directory, sections)
}

func runServe(cfg config.Config, log *slog.Logger) error {
	root := site.OutputDir(cfg.Directory)
	if _, err := os.Stat(root); err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     preview.NewServer(root, log),
		ReadTimeout: cfg.ReadTimeout,
		IdleTimeout: 60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("serving docsite", "port", cfg.Port, "dir", root)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
