// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files into the
// audio.Source interface. Only 16-bit PCM AIFF files are supported.
//
// # Usage
//
//	decoder := aiff.Decoder{}
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
// # Errors
//
//   - ErrNotAiffFile: the stream is not a FORM/AIFF container
//   - ErrOnlyPCM16bitSupported: sample format other than 16-bit PCM
//   - ErrUnsupportedAiffLayout: the container is missing format information
package aiff
