// Package audio writes the WAV container for raw LINEAR16 PCM output.
//
// Google returns headerless PCM for LINEAR16, so the bytes must be wrapped
// in a RIFF/WAVE container before players can read them. Compressed
// encodings (MP3, OGG_OPUS) are self-describing and need no wrapping.
package audio

import (
	"encoding/binary"
	"errors"
)

// PCM layout returned by the cloud API: mono, 16-bit samples.
const (
	numChannels   = 1
	bitsPerSample = 16
	bytesPerBit   = 8
)

// RIFF/WAVE layout constants.
const (
	headerSize    = 44
	fmtChunkSize  = 16
	pcmFormatCode = 1
	riffSizeBase  = 36
)

// Static errors.
var (
	ErrNoPCMData         = errors.New("pcm data cannot be empty")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)

// WrapPCM wraps headerless 16-bit mono PCM in a RIFF/WAVE container at the
// given sample rate. The PCM payload is copied verbatim after the 44-byte
// header.
func WrapPCM(pcm []byte, sampleRateHz int32) ([]byte, error) {
	if len(pcm) == 0 {
		return nil, ErrNoPCMData
	}

	if sampleRateHz <= 0 {
		return nil, ErrInvalidSampleRate
	}

	blockAlign := numChannels * bitsPerSample / bytesPerBit
	byteRate := int(sampleRateHz) * blockAlign

	out := make([]byte, headerSize+len(pcm))

	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], uint32(riffSizeBase+len(pcm)))
	copy(out[8:12], "WAVE")

	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(out[20:22], pcmFormatCode)
	binary.LittleEndian.PutUint16(out[22:24], numChannels)
	binary.LittleEndian.PutUint32(out[24:28], uint32(sampleRateHz))
	binary.LittleEndian.PutUint32(out[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(out[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:36], bitsPerSample)

	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], uint32(len(pcm)))
	copy(out[headerSize:], pcm)

	return out, nil
}
