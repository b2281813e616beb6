// main package for the tts-batch job.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/book-expert/logger"

	"github.com/book-expert/tts-batch/internal/config"
	"github.com/book-expert/tts-batch/internal/launcher"
	"github.com/book-expert/tts-batch/internal/tts"
)

const logFileName = "tts-batch.log"

func setupLogger(logPath string) (*logger.Logger, error) {
	log, err := logger.New(logPath, logFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return log, nil
}

func run() error {
	// 1. Create a temporary logger for the bootstrap process
	bootstrapLog, err := setupLogger(os.TempDir())
	if err != nil {
		// If bootstrap logger fails, we can only print to stderr
		fmt.Fprintf(os.Stderr, "FATAL: Failed to create bootstrap logger: %v\n", err)

		return err
	}

	// 2. Resolve the job configuration from the environment
	cfg, err := config.Resolve()
	if err != nil {
		bootstrapLog.Error("Failed to resolve job configuration: %v", err)

		return fmt.Errorf("failed to resolve job configuration: %w", err)
	}

	// 3. Initialize the final logger in the configured log directory
	finalLog, err := setupLogger(cfg.LogDir)
	if err != nil {
		bootstrapLog.Error("Failed to create final logger: %v", err)

		return fmt.Errorf("failed to create final logger: %w", err)
	}

	defer func() {
		closeErr := finalLog.Close()
		if closeErr != nil {
			fmt.Fprintf(os.Stderr, "error closing final logger: %v\n", closeErr)
		}
	}()

	ctx := context.Background()

	// 4. Create the Google Cloud synthesizer and run the single job
	synth, err := tts.NewGoogleSynthesizer(ctx, cfg.CredentialsPath, finalLog)
	if err != nil {
		finalLog.Error("Failed to create synthesizer: %v", err)

		return fmt.Errorf("failed to create synthesizer: %w", err)
	}

	defer func() {
		closeErr := synth.Close()
		if closeErr != nil {
			finalLog.Warn("Failed to close synthesizer: %v", closeErr)
		}
	}()

	job := launcher.New(cfg, synth, finalLog)

	return job.Run(ctx)
}

func main() {
	err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
