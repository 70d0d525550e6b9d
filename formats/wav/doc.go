// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV (RIFF) audio decoding and encoding.
//
// Decoding uses github.com/go-audio/wav, which handles non-canonical chunk
// layouts (LIST, fact, cue chunks before data). PCM files at 8, 16, 24 and
// 32 bits per sample are supported; compressed WAV variants are not.
//
// # Decoding
//
//	decoder := wav.Decoder{}
//	source, err := decoder.Decode(reader)
//	if err != nil {
//	    // handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder accepts any io.Reader. When the reader does not implement
// io.ReadSeeker the whole stream is buffered in memory first, since the
// underlying go-audio decoder needs to seek between chunks.
//
// # Encoding
//
// WriteWAV16 writes mono 16-bit PCM to any io.Writer, which makes it handy
// for building test fixtures and in-memory round trips:
//
//	samples := []int16{100, -100, 200, -200}
//	var buf bytes.Buffer
//	wav.WriteWAV16(&buf, 8000, samples)
//
// # Errors
//
//   - ErrNotWavFile: the stream is not a RIFF/WAVE container
//   - ErrOnlyPCMSupported: the container holds compressed audio
//   - ErrUnsupportedBitDepth: PCM at a bit depth other than 8/16/24/32
package wav
