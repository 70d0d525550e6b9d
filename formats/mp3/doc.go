// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 streams into
// the audio.Source interface.
//
// # Usage
//
//	decoder := mp3.Decoder{}
//	source, err := decoder.Decode(reader)
//	if err != nil {
//	    // handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Output Format
//
// go-mp3 always outputs 16-bit stereo PCM regardless of the source encoding,
// so Channels() reports 2 for every decoded stream. Chain a MonoMixer (or
// load with the mono option) to collapse it to a single channel.
//
// # Notes
//
//   - The full stream does not need to fit in memory; decoding is streamed.
//   - Sample rate is taken from the MP3 header (commonly 44100 or 48000 Hz).
//   - Decode errors from malformed streams are returned as wrapped go-mp3
//     errors, surfaced by the loaders as a decode failure.
package mp3
