// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/di-osc/osc-data/audio"
	"github.com/di-osc/osc-data/utils"
)

// mp3Reader is the subset of gomp3.Decoder the source needs; tests swap
// in a stub.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// source adapts the go-mp3 byte stream to audio.Source. go-mp3 always
// emits 16-bit little-endian stereo PCM regardless of the input file.
type source struct {
	dec        mp3Reader
	sampleRate int
	channels   int
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

// BufSize reports capacity in samples, not bytes.
func (s *source) BufSize() int { return cap(s.buf) / 2 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	need := len(dst) * 2 // two bytes per sample
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}

	n, err := s.dec.Read(s.buf[:need])
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	return utils.PCM16BytesToFloat32(dst, s.buf[:n]), err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   2,
		buf:        make([]byte, 8192),
	}, nil
}
