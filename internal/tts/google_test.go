// Package tts_test tests the cloud request construction for the Google
// synthesizer.
package tts_test

import (
	"testing"

	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/book-expert/tts-batch/internal/core"
	"github.com/book-expert/tts-batch/internal/tts"
)

func sampleRequest(encoding core.Encoding) core.SynthesisRequest {
	return core.SynthesisRequest{
		Text:         "hello world",
		LanguageCode: "en-US",
		VoiceName:    "en-US-Neural2-J",
		Encoding:     encoding,
		SpeakingRate: 1.0,
		Pitch:        0.0,
		SampleRateHz: 24000,
	}
}

func TestBuildRequest_Linear16(t *testing.T) {
	t.Parallel()

	apiReq, err := tts.BuildRequest(sampleRequest(core.EncodingLinear16))
	require.NoError(t, err)

	assert.Equal(t, "hello world", apiReq.GetInput().GetText())
	assert.Equal(t, "en-US", apiReq.GetVoice().GetLanguageCode())
	assert.Equal(t, "en-US-Neural2-J", apiReq.GetVoice().GetName())
	assert.Equal(t, texttospeechpb.AudioEncoding_LINEAR16, apiReq.GetAudioConfig().GetAudioEncoding())
	assert.Equal(t, int32(24000), apiReq.GetAudioConfig().GetSampleRateHertz())
}

func TestBuildRequest_CompressedEncodingsSkipSampleRate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		encoding core.Encoding
		want     texttospeechpb.AudioEncoding
	}{
		{name: "mp3", encoding: core.EncodingMP3, want: texttospeechpb.AudioEncoding_MP3},
		{name: "ogg opus", encoding: core.EncodingOggOpus, want: texttospeechpb.AudioEncoding_OGG_OPUS},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			apiReq, err := tts.BuildRequest(sampleRequest(testCase.encoding))
			require.NoError(t, err)

			assert.Equal(t, testCase.want, apiReq.GetAudioConfig().GetAudioEncoding())
			// Compressed encodings use the voice's native sample rate.
			assert.Zero(t, apiReq.GetAudioConfig().GetSampleRateHertz())
		})
	}
}

func TestBuildRequest_EmptyText(t *testing.T) {
	t.Parallel()

	req := sampleRequest(core.EncodingLinear16)
	req.Text = ""

	_, err := tts.BuildRequest(req)
	require.ErrorIs(t, err, tts.ErrTextEmpty)
}

func TestBuildRequest_UnknownEncoding(t *testing.T) {
	t.Parallel()

	req := sampleRequest(core.Encoding("FLAC"))

	_, err := tts.BuildRequest(req)
	require.ErrorIs(t, err, core.ErrUnknownEncoding)
}

// Identical job configurations must produce identical wire requests; the
// audio bytes coming back are not deterministic, but the request is.
func TestBuildRequest_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := tts.BuildRequest(sampleRequest(core.EncodingLinear16))
	require.NoError(t, err)

	second, err := tts.BuildRequest(sampleRequest(core.EncodingLinear16))
	require.NoError(t, err)

	assert.Equal(t, first.GetInput().GetText(), second.GetInput().GetText())
	assert.Equal(t, first.GetVoice().GetLanguageCode(), second.GetVoice().GetLanguageCode())
	assert.Equal(t, first.GetVoice().GetName(), second.GetVoice().GetName())
	assert.Equal(t, first.GetAudioConfig().GetAudioEncoding(), second.GetAudioConfig().GetAudioEncoding())
	assert.InEpsilon(t, first.GetAudioConfig().GetSpeakingRate(),
		second.GetAudioConfig().GetSpeakingRate(), 0.001)
	assert.Equal(t, first.GetAudioConfig().GetSampleRateHertz(),
		second.GetAudioConfig().GetSampleRateHertz())
}
