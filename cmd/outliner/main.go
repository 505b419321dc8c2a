// outliner is a command-line tool for deriving document outlines from
// PDF files.
//
// Given a single file it prints the outline JSON to standard output.
// Given an input directory it processes every PDF and writes one
// <name>.json per document to the output directory; a document that
// fails is recorded in its output slot and never stops the run.
//
// Usage:
//
//	outliner -file document.pdf
//	outliner -input ./docs -output ./outlines
//
// Options:
//
//	-file string      Single PDF to process (prints JSON to stdout)
//	-input string     Directory of PDFs to process
//	-output string    Directory for per-document JSON output
//	-config string    Optional YAML configuration file
//	-workers int      Concurrent documents in batch mode
//	-max-pages int    Reject documents with more pages (0 disables)
//	-budget duration  Per-document time budget (0 disables)
//	-verbose          Enable debug logging
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/tsawler/outliner"
	"github.com/tsawler/outliner/batch"
)

func main() {
	filePath := flag.String("file", "", "Single PDF to process")
	inputDir := flag.String("input", "", "Directory of PDFs to process")
	outputDir := flag.String("output", "", "Directory for JSON output")
	configPath := flag.String("config", "", "Optional YAML configuration file")
	workers := flag.Int("workers", 0, "Concurrent documents in batch mode")
	maxPages := flag.Int("max-pages", 0, "Page-count limit per document")
	budget := flag.Duration("budget", 0, "Time budget per document")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	if *filePath == "" && *inputDir == "" {
		fmt.Fprintln(os.Stderr, "Error: must provide -file or -input")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Error("config load failed", "error", err)
		os.Exit(1)
	}
	if *inputDir != "" {
		cfg.InputDir = *inputDir
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *maxPages > 0 {
		cfg.MaxPages = *maxPages
	}
	if *budget > 0 {
		cfg.Budget = *budget
	}

	ctx := context.Background()

	if *filePath != "" {
		if err := runSingle(ctx, *filePath, cfg); err != nil {
			log.Error("processing failed", "file", *filePath, "error", err)
			os.Exit(1)
		}
		return
	}

	// Per-file failures are reflected in the output directory and the
	// report; only setup problems change the exit code.
	report, err := batch.NewRunner(cfg, log).Run(ctx)
	if err != nil {
		log.Error("batch failed", "error", err)
		os.Exit(1)
	}
	log.Info("done", "processed", report.Processed, "failed", report.Failed)
}

func loadConfig(path string) (batch.Config, error) {
	if path == "" {
		return batch.Load(), nil
	}
	return batch.LoadFile(path)
}

func runSingle(ctx context.Context, path string, cfg batch.Config) error {
	outline, err := outliner.Open(path).
		MaxPages(cfg.MaxPages).
		Budget(cfg.Budget).
		Outline(ctx)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(outline, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
