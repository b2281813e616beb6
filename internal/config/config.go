// Package config resolves the per-run job configuration for tts-batch.
//
// All inputs arrive through process environment variables; the resolved
// configuration is handed to the launcher as an explicit struct so nothing
// downstream reads the environment again.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/book-expert/tts-batch/internal/core"
)

// Default voice parameters, matching the Neural2 voice family.
const (
	defaultLanguageCode = "en-US"
	defaultVoiceName    = "en-US-Neural2-J"
	defaultSpeakingRate = 1.0
	defaultPitch        = 0.0
	defaultSampleRateHz = 24000
)

const inputSuffix = ".txt"

// Static errors for configuration and path-resolution failures.
var (
	// ErrNoInputFound indicates that no explicit input was set and the input
	// directory contains no text files.
	ErrNoInputFound = errors.New("no input file found")
	// ErrInputNotFound indicates that the resolved input path does not exist.
	ErrInputNotFound = errors.New("input file not found")
	// ErrCredentialsMissing indicates that the credentials file does not exist.
	ErrCredentialsMissing = errors.New("credentials file not found")
)

// rawConfig is the direct environment binding before path resolution.
type rawConfig struct {
	InputFile       string  `env:"INPUT_FILE"`
	InputDir        string  `env:"INPUT_DIR"        envDefault:"/input"`
	OutputFile      string  `env:"OUTPUT_FILE"`
	OutputDir       string  `env:"OUTPUT_DIR"       envDefault:"/output"`
	CredentialsFile string  `env:"GOOGLE_APPLICATION_CREDENTIALS" envDefault:"/secrets/credentials.json"`
	AudioEncoding   string  `env:"AUDIO_ENCODING"`
	LanguageCode    string  `env:"LANGUAGE_CODE"`
	VoiceName       string  `env:"VOICE_NAME"`
	SpeakingRate    float64 `env:"SPEAKING_RATE"`
	Pitch           float64 `env:"PITCH"`
	SampleRateHz    int32   `env:"SAMPLE_RATE_HZ"`
	VoiceConfig     string  `env:"VOICE_CONFIG"`
	VoicePreset     string  `env:"VOICE_PRESET"`
	LogDir          string  `env:"LOG_DIR"`
}

// Voice holds the voice selection and audio tuning parameters for one run.
type Voice struct {
	LanguageCode string
	Name         string
	SpeakingRate float64
	Pitch        float64
	SampleRateHz int32
}

// Config is the resolved, immutable job configuration for one run.
type Config struct {
	InputPath       string
	OutputPath      string
	CredentialsPath string
	Encoding        core.Encoding
	Voice           Voice
	LogDir          string
}

// Resolve builds the job configuration from the process environment. A .env
// file in the working directory is honored when present but never required.
func Resolve() (*Config, error) {
	_ = godotenv.Load()

	var raw rawConfig

	err := env.Parse(&raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return resolve(raw)
}

func resolve(raw rawConfig) (*Config, error) {
	encoding, err := core.ParseEncoding(raw.AudioEncoding)
	if err != nil {
		return nil, err
	}

	inputPath, err := resolveInputPath(raw)
	if err != nil {
		return nil, err
	}

	credentialsErr := validateCredentialsPath(raw.CredentialsFile)
	if credentialsErr != nil {
		return nil, credentialsErr
	}

	voice, err := resolveVoice(raw)
	if err != nil {
		return nil, err
	}

	logDir := raw.LogDir
	if logDir == "" {
		logDir = os.TempDir()
	}

	return &Config{
		InputPath:       inputPath,
		OutputPath:      deriveOutputPath(raw, inputPath, encoding),
		CredentialsPath: raw.CredentialsFile,
		Encoding:        encoding,
		Voice:           voice,
		LogDir:          logDir,
	}, nil
}

// resolveInputPath uses the explicit INPUT_FILE when set, otherwise picks the
// first text file from the input directory in listing order. Either way the
// resolved path must exist.
func resolveInputPath(raw rawConfig) (string, error) {
	inputPath := raw.InputFile
	if inputPath == "" {
		detected, err := detectInputFile(raw.InputDir)
		if err != nil {
			return "", err
		}

		inputPath = detected
	}

	_, statErr := os.Stat(inputPath)
	if statErr != nil {
		return "", fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
	}

	return inputPath, nil
}

func detectInputFile(inputDir string) (string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return "", fmt.Errorf("%w: cannot read input directory %s: %w",
			ErrNoInputFound, inputDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if strings.HasSuffix(strings.ToLower(entry.Name()), inputSuffix) {
			return filepath.Join(inputDir, entry.Name()), nil
		}
	}

	return "", fmt.Errorf("%w: no %s files in %s", ErrNoInputFound, inputSuffix, inputDir)
}

func validateCredentialsPath(credentialsPath string) error {
	_, statErr := os.Stat(credentialsPath)
	if statErr != nil {
		return fmt.Errorf("%w: %s", ErrCredentialsMissing, credentialsPath)
	}

	return nil
}

// deriveOutputPath combines the output directory, the input base name with
// its extension stripped, and the suffix implied by the encoding. An explicit
// OUTPUT_FILE is used unchanged.
func deriveOutputPath(raw rawConfig, inputPath string, encoding core.Encoding) string {
	if raw.OutputFile != "" {
		return raw.OutputFile
	}

	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	return filepath.Join(raw.OutputDir, base+encoding.Suffix())
}
