// SPDX-License-Identifier: EPL-2.0

package audio

import "bytes"

// SniffLen is the number of leading bytes Detect needs to identify a format.
const SniffLen = 12

// Detect identifies the audio container format from the leading bytes of a
// stream. It recognizes the formats this module ships decoders for:
//
//	"wav"  - RIFF....WAVE
//	"aiff" - FORM....AIFF / AIFC
//	"ogg"  - OggS
//	"mp3"  - ID3 tag or MPEG frame sync
//
// It returns ErrUnknownFormat when the header matches none of them.
func Detect(header []byte) (string, error) {
	if len(header) >= 12 &&
		bytes.HasPrefix(header, []byte("RIFF")) &&
		bytes.Equal(header[8:12], []byte("WAVE")) {
		return "wav", nil
	}

	if len(header) >= 12 &&
		bytes.HasPrefix(header, []byte("FORM")) &&
		(bytes.Equal(header[8:12], []byte("AIFF")) || bytes.Equal(header[8:12], []byte("AIFC"))) {
		return "aiff", nil
	}

	if bytes.HasPrefix(header, []byte("OggS")) {
		return "ogg", nil
	}

	if bytes.HasPrefix(header, []byte("ID3")) {
		return "mp3", nil
	}

	// MPEG audio frame sync: 11 set bits
	if len(header) >= 2 && header[0] == 0xFF && header[1]&0xE0 == 0xE0 {
		return "mp3", nil
	}

	return "", ErrUnknownFormat
}
