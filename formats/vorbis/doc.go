// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// streams into the audio.Source interface.
//
// # Usage
//
//	decoder := vorbis.Decoder{}
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
// Vorbis decodes natively to float32, so samples pass through without a PCM
// conversion step. Channel count and sample rate come from the stream
// header; multi-channel streams yield interleaved samples.
package vorbis
