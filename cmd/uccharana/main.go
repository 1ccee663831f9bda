package main

import (
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/uccharana/internal/cli"
	"codeberg.org/snonux/uccharana/internal/gui"
	"codeberg.org/snonux/uccharana/internal/logging"
	"codeberg.org/snonux/uccharana/internal/models"
	"codeberg.org/snonux/uccharana/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --history flag, which needs neither API key nor logger
	if flags.History {
		return processor.ShowHistory(flags.HistoryLimit)
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetAPIKey(flags.Provider), flags.BaseURL)
		return lister.ListAvailableModels()
	}

	guiMode := flags.BatchFile == "" && len(args) == 0

	// In GUI mode the log viewer doubles as a log sink, so it has to
	// exist before the logger does.
	var logViewer *gui.LogViewer
	opts := logging.Options{
		Level: cli.ParseLogLevel(flags.LogLevel),
		Dir:   flags.LogDir,
	}
	if guiMode {
		logViewer = gui.NewLogViewer()
		opts.ExtraSink = logViewer
	}

	logger, err := logging.New(opts)
	if err != nil {
		return err
	}
	defer logger.Close()

	// Create processor
	proc, err := processor.NewProcessor(flags, logger)
	if err != nil {
		return err
	}

	// Handle batch processing
	if flags.BatchFile != "" {
		return proc.ProcessBatch()
	}

	if len(args) > 0 {
		return proc.ProcessInput(args[0])
	}

	// No input provided - launch GUI mode by default
	return proc.RunGUIMode(logViewer)
}
