package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Static errors for voice preset resolution.
var (
	// ErrPresetNotFound indicates that the named preset is absent from the
	// voice configuration file.
	ErrPresetNotFound = errors.New("voice preset not found")
	// ErrPresetWithoutConfig indicates that VOICE_PRESET was set without a
	// VOICE_CONFIG file to read it from.
	ErrPresetWithoutConfig = errors.New("voice preset requires a voice config file")
)

// voicePresetFile is the TOML layout of the optional voice configuration file.
type voicePresetFile struct {
	Presets map[string]voicePreset `toml:"presets"`
}

type voicePreset struct {
	LanguageCode string  `toml:"language_code"`
	VoiceName    string  `toml:"voice_name"`
	SpeakingRate float64 `toml:"speaking_rate"`
	Pitch        float64 `toml:"pitch"`
	SampleRateHz int32   `toml:"sample_rate_hz"`
}

// resolveVoice layers voice parameters: package defaults, then the selected
// preset from the optional TOML file, then environment overrides.
func resolveVoice(raw rawConfig) (Voice, error) {
	voice := Voice{
		LanguageCode: defaultLanguageCode,
		Name:         defaultVoiceName,
		SpeakingRate: defaultSpeakingRate,
		Pitch:        defaultPitch,
		SampleRateHz: defaultSampleRateHz,
	}

	if raw.VoicePreset != "" && raw.VoiceConfig == "" {
		return Voice{}, fmt.Errorf("%w: VOICE_PRESET=%q", ErrPresetWithoutConfig, raw.VoicePreset)
	}

	if raw.VoiceConfig != "" && raw.VoicePreset != "" {
		preset, err := loadPreset(raw.VoiceConfig, raw.VoicePreset)
		if err != nil {
			return Voice{}, err
		}

		applyPreset(&voice, preset)
	}

	applyEnvOverrides(&voice, raw)

	return voice, nil
}

func loadPreset(configPath, presetName string) (voicePreset, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return voicePreset{}, fmt.Errorf("failed to read voice config %s: %w", configPath, err)
	}

	var file voicePresetFile

	err = toml.Unmarshal(data, &file)
	if err != nil {
		return voicePreset{}, fmt.Errorf("failed to parse voice config %s: %w", configPath, err)
	}

	preset, ok := file.Presets[presetName]
	if !ok {
		return voicePreset{}, fmt.Errorf("%w: %q in %s", ErrPresetNotFound, presetName, configPath)
	}

	return preset, nil
}

func applyPreset(voice *Voice, preset voicePreset) {
	if preset.LanguageCode != "" {
		voice.LanguageCode = preset.LanguageCode
	}

	if preset.VoiceName != "" {
		voice.Name = preset.VoiceName
	}

	if preset.SpeakingRate != 0 {
		voice.SpeakingRate = preset.SpeakingRate
	}

	// A zero pitch is the neutral default, so presets may set it freely.
	voice.Pitch = preset.Pitch

	if preset.SampleRateHz != 0 {
		voice.SampleRateHz = preset.SampleRateHz
	}
}

func applyEnvOverrides(voice *Voice, raw rawConfig) {
	if raw.LanguageCode != "" {
		voice.LanguageCode = raw.LanguageCode
	}

	if raw.VoiceName != "" {
		voice.Name = raw.VoiceName
	}

	if raw.SpeakingRate != 0 {
		voice.SpeakingRate = raw.SpeakingRate
	}

	if raw.Pitch != 0 {
		voice.Pitch = raw.Pitch
	}

	if raw.SampleRateHz != 0 {
		voice.SampleRateHz = raw.SampleRateHz
	}
}
