package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"codeberg.org/snonux/uccharana/internal/batch"
	"codeberg.org/snonux/uccharana/internal/cli"
	"codeberg.org/snonux/uccharana/internal/export"
	"codeberg.org/snonux/uccharana/internal/gui"
	"codeberg.org/snonux/uccharana/internal/history"
	"codeberg.org/snonux/uccharana/internal/logging"
	"codeberg.org/snonux/uccharana/internal/pronounce"
	"codeberg.org/snonux/uccharana/internal/words"
)

// Processor handles the main pronunciation workflow
type Processor struct {
	flags  *cli.Flags
	logger *logging.Logger
	runner *batch.Runner
}

// NewProcessor creates a new processor wired to the configured completion
// provider
func NewProcessor(flags *cli.Flags, logger *logging.Logger) (*Processor, error) {
	config := &pronounce.Config{
		Provider:    flags.Provider,
		APIKey:      cli.GetAPIKey(flags.Provider),
		Model:       flags.Model,
		BaseURL:     flags.BaseURL,
		MaxTokens:   pronounce.DefaultMaxTokens,
		Temperature: 0,
	}

	provider, err := pronounce.NewProvider(config)
	if err != nil {
		return nil, err
	}

	logger.Info("configuration loaded",
		"provider", provider.Name(),
		"model", config.Model,
		"api_key", logging.MaskSecret(config.APIKey))

	client := pronounce.NewClient(provider, logger)

	return &Processor{
		flags:  flags,
		logger: logger,
		runner: batch.NewRunner(client),
	}, nil
}

// ProcessInput converts a comma separated list of English words
func (p *Processor) ProcessInput(input string) error {
	return p.run(words.ParseList(input))
}

// ProcessBatch processes words from the batch file
func (p *Processor) ProcessBatch() error {
	list, err := words.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	return p.run(list)
}

func (p *Processor) run(list []string) error {
	if len(list) == 0 {
		fmt.Println("No words to process.")
		return nil
	}

	p.runner.OnProgress(func(index, total int, result pronounce.WordResult) {
		fmt.Printf("Processing %d/%d: %s\n", index, total, result.Word)
		if result.IsError() {
			fmt.Printf("  Error: %s\n", result.Error)
		} else {
			fmt.Printf("  %s / %s\n", result.Pronunciation, result.PronunciationTelugu)
		}
	})

	outcome := p.runner.Run(context.Background(), list)

	if !p.flags.SkipExport {
		path, err := export.WriteFile(p.flags.OutputDir, outcome.Results, time.Now())
		if err != nil {
			return err
		}
		fmt.Printf("\nSaved results to %s\n", path)
	}

	p.recordHistory(outcome.Results)

	fmt.Printf("\n=== Batch Processing Summary ===\n")
	fmt.Printf("Total words: %d\n", outcome.Total())
	fmt.Printf("Successful: %d\n", outcome.SuccessCount())
	if outcome.FailureCount() > 0 {
		fmt.Printf("Failed: %d\n", outcome.FailureCount())
	}
	fmt.Printf("Duration: %s\n", outcome.Duration().Round(time.Millisecond))
	fmt.Printf("================================\n")

	return nil
}

// recordHistory saves successful results to the lookup history. History is
// best effort, a broken database never fails the batch.
func (p *Processor) recordHistory(results []pronounce.WordResult) {
	stateDir, err := cli.StateDir()
	if err != nil {
		p.logger.Warn("skipping history recording", "error", err)
		return
	}

	store, err := history.Open(filepath.Join(stateDir, "history.db"))
	if err != nil {
		p.logger.Warn("skipping history recording", "error", err)
		return
	}
	defer store.Close()

	if err := store.Record(results); err != nil {
		p.logger.Warn("failed to record history", "error", err)
	}
}

// ShowHistory prints the most recent successful lookups. It needs no API
// key, so it runs before provider construction.
func ShowHistory(limit int) error {
	stateDir, err := cli.StateDir()
	if err != nil {
		return err
	}

	store, err := history.Open(filepath.Join(stateDir, "history.db"))
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No lookups recorded yet.")
		return nil
	}

	fmt.Printf("Recent lookups (%d):\n", len(entries))
	for _, entry := range entries {
		fmt.Printf("  %s  %s  %s / %s\n",
			entry.CreatedAt.Format("2006-01-02 15:04"),
			entry.Word, entry.Pronunciation, entry.PronunciationTelugu)
	}

	return nil
}

// RunGUIMode launches the GUI application. The log viewer receives log
// lines through the logger's extra sink, so it is created in main before
// the logger and handed through here.
func (p *Processor) RunGUIMode(logViewer *gui.LogViewer) error {
	guiConfig := &gui.Config{
		Runner:    p.runner,
		Logger:    p.logger,
		OutputDir: p.flags.OutputDir,
		LogViewer: logViewer,
	}

	app := gui.New(guiConfig)
	app.Run()

	return nil
}
