// Package tts implements the Google Cloud text-to-speech backend.
//
// The package performs exactly one synchronous synthesis exchange per call:
// request construction, the API round trip, and response validation. Cloud
// API failures are wrapped and propagated; there is no retry policy.
package tts

import (
	"context"
	"errors"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/book-expert/logger"
	"google.golang.org/api/option"

	"github.com/book-expert/tts-batch/internal/core"
)

// Static errors.
var (
	ErrTextEmpty  = errors.New("text cannot be empty")
	ErrEmptyAudio = errors.New("received empty audio data")
)

// GoogleSynthesizer implements core.Synthesizer against the Google Cloud
// Text-to-Speech API.
type GoogleSynthesizer struct {
	client *texttospeech.Client
	log    *logger.Logger
}

// NewGoogleSynthesizer creates a synthesizer authenticated with the service
// account key file at credentialsPath.
func NewGoogleSynthesizer(
	ctx context.Context,
	credentialsPath string,
	log *logger.Logger,
) (*GoogleSynthesizer, error) {
	client, err := texttospeech.NewClient(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech client: %w", err)
	}

	return &GoogleSynthesizer{
		client: client,
		log:    log,
	}, nil
}

// Synthesize performs one synthesis exchange and returns the raw audio bytes.
// For LINEAR16 the API returns headerless PCM; the caller is responsible for
// wrapping it in a playable container.
func (s *GoogleSynthesizer) Synthesize(
	ctx context.Context,
	req core.SynthesisRequest,
) ([]byte, error) {
	apiReq, err := BuildRequest(req)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.SynthesizeSpeech(ctx, apiReq)
	if err != nil {
		return nil, fmt.Errorf("synthesize speech request failed: %w", err)
	}

	audioContent := resp.GetAudioContent()
	if len(audioContent) == 0 {
		return nil, ErrEmptyAudio
	}

	s.log.Info("Synthesized %d bytes of %s audio", len(audioContent), req.Encoding)

	return audioContent, nil
}

// Close releases the underlying gRPC client.
func (s *GoogleSynthesizer) Close() error {
	err := s.client.Close()
	if err != nil {
		return fmt.Errorf("failed to close text-to-speech client: %w", err)
	}

	return nil
}

// BuildRequest converts a core synthesis request into the wire request sent
// to the cloud API. The sample rate is only set for LINEAR16, where it must
// match the WAV container written afterwards; compressed encodings use the
// voice's native rate.
func BuildRequest(req core.SynthesisRequest) (*texttospeechpb.SynthesizeSpeechRequest, error) {
	if req.Text == "" {
		return nil, ErrTextEmpty
	}

	encoding, err := mapEncoding(req.Encoding)
	if err != nil {
		return nil, err
	}

	audioConfig := &texttospeechpb.AudioConfig{
		AudioEncoding: encoding,
		SpeakingRate:  req.SpeakingRate,
		Pitch:         req.Pitch,
	}
	if req.Encoding == core.EncodingLinear16 {
		audioConfig.SampleRateHertz = req.SampleRateHz
	}

	return &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: req.Text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: req.LanguageCode,
			Name:         req.VoiceName,
		},
		AudioConfig: audioConfig,
	}, nil
}

func mapEncoding(encoding core.Encoding) (texttospeechpb.AudioEncoding, error) {
	switch encoding {
	case core.EncodingLinear16:
		return texttospeechpb.AudioEncoding_LINEAR16, nil
	case core.EncodingMP3:
		return texttospeechpb.AudioEncoding_MP3, nil
	case core.EncodingOggOpus:
		return texttospeechpb.AudioEncoding_OGG_OPUS, nil
	default:
		return texttospeechpb.AudioEncoding_AUDIO_ENCODING_UNSPECIFIED,
			fmt.Errorf("%w: %q", core.ErrUnknownEncoding, string(encoding))
	}
}
