package gui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/uccharana/internal"
	"codeberg.org/snonux/uccharana/internal/batch"
	"codeberg.org/snonux/uccharana/internal/export"
	"codeberg.org/snonux/uccharana/internal/logging"
	"codeberg.org/snonux/uccharana/internal/pronounce"
	"codeberg.org/snonux/uccharana/internal/words"
)

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// UI elements
	wordInput     *widget.Entry
	convertButton *ttwidget.Button
	clearButton   *ttwidget.Button
	saveButton    *ttwidget.Button
	resultsView   *widget.Entry
	statusLabel   *widget.Label
	totalLabel    *widget.Label
	successLabel  *widget.Label
	failedLabel   *widget.Label
	logViewer     *LogViewer

	// Configuration
	config *Config

	// State management
	mu      sync.Mutex
	running bool
	results []pronounce.WordResult
}

// Config holds GUI application configuration
type Config struct {
	Runner    *batch.Runner
	Logger    *logging.Logger
	OutputDir string

	// LogViewer, if set, is the viewer already attached to the logger
	// as its extra sink. A fresh detached viewer is created otherwise.
	LogViewer *LogViewer
}

// New creates a new GUI application
func New(config *Config) *Application {
	myApp := app.NewWithID("org.codeberg.snonux.uccharana")

	a := &Application{
		app:       myApp,
		config:    config,
		logViewer: config.LogViewer,
	}
	if a.logViewer == nil {
		a.logViewer = NewLogViewer()
	}

	a.setupUI()

	return a
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("Uccharana v%s - English to Telugu Pronunciation", internal.Version))
	a.window.Resize(fyne.NewSize(800, 700))

	// Create input section
	a.wordInput = widget.NewMultiLineEntry()
	a.wordInput.SetPlaceHolder("Enter English words separated by commas, e.g. toilet, computer, book")
	a.wordInput.Wrapping = fyne.TextWrapWord

	inputScroll := container.NewScroll(a.wordInput)
	inputScroll.SetMinSize(fyne.NewSize(0, 100))

	inputSection := container.NewBorder(
		widget.NewLabel("English words:"),
		nil,
		nil,
		nil,
		inputScroll,
	)

	// Create action buttons (tooltips are set after the tooltip layer exists)
	a.convertButton = ttwidget.NewButtonWithIcon("Convert", theme.ConfirmIcon(), a.onConvert)
	a.convertButton.Importance = widget.HighImportance

	a.clearButton = ttwidget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), a.onClear)

	a.saveButton = ttwidget.NewButtonWithIcon("Save JSON", theme.DocumentSaveIcon(), a.onSaveJSON)
	a.saveButton.Disable()

	toolbar := container.NewHBox(
		a.convertButton,
		a.clearButton,
		widget.NewSeparator(),
		a.saveButton,
	)

	// Create results section
	a.resultsView = widget.NewMultiLineEntry()
	a.resultsView.Disable()
	a.resultsView.Wrapping = fyne.TextWrapWord

	resultsSection := container.NewBorder(
		widget.NewLabel("Results:"),
		nil,
		nil,
		nil,
		container.NewScroll(a.resultsView),
	)

	// Create status section with batch metrics
	a.statusLabel = widget.NewLabel("Ready")
	a.totalLabel = widget.NewLabel("Total: 0")
	a.successLabel = widget.NewLabel("Successful: 0")
	a.failedLabel = widget.NewLabel("Failed: 0")

	metrics := container.NewHBox(
		a.totalLabel,
		widget.NewSeparator(),
		a.successLabel,
		widget.NewSeparator(),
		a.failedLabel,
	)

	statusSection := container.NewVBox(
		widget.NewSeparator(),
		a.statusLabel,
		metrics,
	)

	// Combine all sections
	content := container.NewBorder(
		container.NewVBox(
			inputSection,
			toolbar,
			statusSection,
			widget.NewSeparator(),
		),
		a.logViewer,
		nil, nil,
		resultsSection,
	)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))

	// Now that the tooltip layer exists, set all tooltips
	a.convertButton.SetToolTip("Convert all words (Ctrl+Return)")
	a.clearButton.SetToolTip("Clear input and results")
	a.saveButton.SetToolTip("Save results as JSON")

	a.setupKeyboardShortcuts()
}

func (a *Application) setupKeyboardShortcuts() {
	convert := &desktop.CustomShortcut{KeyName: fyne.KeyReturn, Modifier: fyne.KeyModifierControl}
	a.window.Canvas().AddShortcut(convert, func(fyne.Shortcut) {
		a.onConvert()
	})
}

// Run starts the GUI application
func (a *Application) Run() {
	a.window.ShowAndRun()
}

// onConvert parses the input and runs the batch in the background. A
// second click while a batch is running is ignored.
func (a *Application) onConvert() {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return
	}

	list := words.ParseList(a.wordInput.Text)
	if len(list) == 0 {
		a.mu.Unlock()
		a.statusLabel.SetText("Enter at least one word.")
		return
	}

	a.running = true
	a.mu.Unlock()

	a.convertButton.Disable()
	a.saveButton.Disable()
	a.statusLabel.SetText(fmt.Sprintf("Processing %d words...", len(list)))
	a.config.Logger.Info("starting conversion", "words", len(list))

	a.config.Runner.OnProgress(func(index, total int, result pronounce.WordResult) {
		fyne.Do(func() {
			a.statusLabel.SetText(fmt.Sprintf("Processing %d/%d: %s", index, total, result.Word))
		})
	})

	go func() {
		outcome := a.config.Runner.Run(context.Background(), list)

		a.mu.Lock()
		a.results = outcome.Results
		a.running = false
		a.mu.Unlock()

		fyne.Do(func() {
			a.resultsView.SetText(formatResults(outcome.Results))
			a.totalLabel.SetText(fmt.Sprintf("Total: %d", outcome.Total()))
			a.successLabel.SetText(fmt.Sprintf("Successful: %d", outcome.SuccessCount()))
			a.failedLabel.SetText(fmt.Sprintf("Failed: %d", outcome.FailureCount()))
			a.statusLabel.SetText(fmt.Sprintf("Completed in %s", outcome.Duration().Round(time.Millisecond)))
			a.convertButton.Enable()
			if len(outcome.Results) > 0 {
				a.saveButton.Enable()
			}
		})
	}()
}

// onClear resets the input, results and metrics
func (a *Application) onClear() {
	a.mu.Lock()
	a.results = nil
	a.mu.Unlock()

	a.wordInput.SetText("")
	a.resultsView.SetText("")
	a.totalLabel.SetText("Total: 0")
	a.successLabel.SetText("Successful: 0")
	a.failedLabel.SetText("Failed: 0")
	a.statusLabel.SetText("Ready")
	a.saveButton.Disable()
}

// onSaveJSON opens a save dialog for the JSON export of the last batch
func (a *Application) onSaveJSON() {
	a.mu.Lock()
	results := a.results
	a.mu.Unlock()

	if len(results) == 0 {
		return
	}

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			// User cancelled
			return
		}
		defer writer.Close()

		data, err := export.Marshal(results)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if _, err := writer.Write(data); err != nil {
			dialog.ShowError(err, a.window)
			return
		}

		a.config.Logger.Info("saved export", "file", writer.URI().Name())
		a.statusLabel.SetText("Saved " + writer.URI().Name())
	}, a.window)

	saveDialog.SetFileName(export.SuggestedFilename(time.Now()))
	saveDialog.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))

	// Start in the configured output directory when possible
	if a.config.OutputDir != "" {
		if uri, err := storage.ParseURI("file://" + a.config.OutputDir); err == nil {
			if lister, err := storage.ListerForURI(uri); err == nil {
				saveDialog.SetLocation(lister)
			}
		}
	}

	saveDialog.Show()
}

// formatResults renders batch results for the results view, one line per
// word.
func formatResults(results []pronounce.WordResult) string {
	var sb strings.Builder
	for _, result := range results {
		if result.IsError() {
			fmt.Fprintf(&sb, "%s: Error: %s\n", result.Word, result.Error)
		} else {
			fmt.Fprintf(&sb, "%s: %s / %s\n", result.Word, result.Pronunciation, result.PronunciationTelugu)
		}
	}
	return sb.String()
}
