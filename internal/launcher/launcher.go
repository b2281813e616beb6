// Package launcher orchestrates one batch synthesis run: read the input
// text, perform the single synthesis exchange, and write the audio output.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/book-expert/logger"
	"github.com/google/uuid"

	"github.com/book-expert/tts-batch/internal/config"
	"github.com/book-expert/tts-batch/internal/core"
	"github.com/book-expert/tts-batch/internal/tts/audio"
)

// File and directory permissions.
const (
	filePermissions = 0o600
	dirPermissions  = 0o750
)

// ErrEmptyInput indicates that the input file contains no text.
var ErrEmptyInput = errors.New("input text is empty")

// Launcher runs exactly one text-to-speech job against an injected
// synthesizer backend.
type Launcher struct {
	cfg   *config.Config
	synth core.Synthesizer
	log   *logger.Logger
}

// New creates a launcher for the resolved job configuration.
func New(cfg *config.Config, synth core.Synthesizer, log *logger.Logger) *Launcher {
	return &Launcher{
		cfg:   cfg,
		synth: synth,
		log:   log,
	}
}

// Run performs the single synthesis exchange and writes the result. Any
// failure terminates the run; a failed run never leaves a partial output
// file behind.
func (l *Launcher) Run(ctx context.Context) error {
	jobID := uuid.NewString()

	l.log.Info("Job %s: %s -> %s (%s)", jobID, l.cfg.InputPath, l.cfg.OutputPath, l.cfg.Encoding)
	fmt.Printf("Synthesizing %s -> %s\n", l.cfg.InputPath, l.cfg.OutputPath)

	text, err := l.readInputText()
	if err != nil {
		return err
	}

	req := core.SynthesisRequest{
		Text:         text,
		LanguageCode: l.cfg.Voice.LanguageCode,
		VoiceName:    l.cfg.Voice.Name,
		Encoding:     l.cfg.Encoding,
		SpeakingRate: l.cfg.Voice.SpeakingRate,
		Pitch:        l.cfg.Voice.Pitch,
		SampleRateHz: l.cfg.Voice.SampleRateHz,
	}

	audioData, err := l.synth.Synthesize(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to synthesize speech: %w", err)
	}

	payload, err := l.encodeOutput(audioData)
	if err != nil {
		return err
	}

	writeErr := l.writeOutput(payload)
	if writeErr != nil {
		return writeErr
	}

	l.log.Info("Job %s: wrote %d bytes to %s", jobID, len(payload), l.cfg.OutputPath)
	fmt.Printf("Done! Audio saved to %s\n", l.cfg.OutputPath)

	return nil
}

func (l *Launcher) readInputText() (string, error) {
	data, err := os.ReadFile(l.cfg.InputPath)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyInput, l.cfg.InputPath)
	}

	return text, nil
}

// encodeOutput wraps LINEAR16 PCM in a WAV container; compressed encodings
// are written verbatim.
func (l *Launcher) encodeOutput(audioData []byte) ([]byte, error) {
	if l.cfg.Encoding != core.EncodingLinear16 {
		return audioData, nil
	}

	wrapped, err := audio.WrapPCM(audioData, l.cfg.Voice.SampleRateHz)
	if err != nil {
		return nil, fmt.Errorf("failed to build wav container: %w", err)
	}

	return wrapped, nil
}

func (l *Launcher) writeOutput(payload []byte) error {
	outputDir := filepath.Dir(l.cfg.OutputPath)

	dirErr := os.MkdirAll(outputDir, dirPermissions)
	if dirErr != nil {
		return fmt.Errorf("failed to create output directory: %w", dirErr)
	}

	writeErr := os.WriteFile(l.cfg.OutputPath, payload, filePermissions)
	if writeErr != nil {
		return fmt.Errorf("failed to write audio file: %w", writeErr)
	}

	return nil
}
