// Package core defines the interfaces and request types shared between the
// launcher and the synthesis backend.
package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEncoding indicates that the requested audio encoding is not supported.
var ErrUnknownEncoding = errors.New("unknown audio encoding")

// Encoding is the requested output audio format.
type Encoding string

// Supported audio encodings.
const (
	EncodingLinear16 Encoding = "LINEAR16"
	EncodingMP3      Encoding = "MP3"
	EncodingOggOpus  Encoding = "OGG_OPUS"
)

// Output file suffixes per encoding.
const (
	suffixWAV = ".wav"
	suffixMP3 = ".mp3"
	suffixOGG = ".ogg"
)

// ParseEncoding parses a case-insensitive encoding name. An empty value
// selects the LINEAR16 default; anything unrecognized is an error.
func ParseEncoding(value string) (Encoding, error) {
	if value == "" {
		return EncodingLinear16, nil
	}

	switch Encoding(strings.ToUpper(value)) {
	case EncodingLinear16:
		return EncodingLinear16, nil
	case EncodingMP3:
		return EncodingMP3, nil
	case EncodingOggOpus:
		return EncodingOggOpus, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, value)
	}
}

// Suffix returns the output file suffix for the encoding. LINEAR16 audio is
// written inside a WAV container, so it maps to ".wav".
func (e Encoding) Suffix() string {
	switch e {
	case EncodingMP3:
		return suffixMP3
	case EncodingOggOpus:
		return suffixOGG
	default:
		return suffixWAV
	}
}

// SynthesisRequest carries everything needed for one text-to-speech exchange.
type SynthesisRequest struct {
	Text         string
	LanguageCode string
	VoiceName    string
	Encoding     Encoding
	SpeakingRate float64
	Pitch        float64
	SampleRateHz int32
}

// Synthesizer defines the interface for a text-to-speech backend. The
// launcher depends on this interface so that tests can inject a mock in
// place of the Google Cloud client.
type Synthesizer interface {
	Synthesize(ctx context.Context, req SynthesisRequest) ([]byte, error)
	Close() error
}
