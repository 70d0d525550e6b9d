// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// MockSource generates synthetic interleaved samples for tests. It
// satisfies audio.Source without importing the package. The gen callback
// maps (frame index, channel) to a sample value.
type MockSource struct {
	sampleRate int
	channels   int
	total      int // frames to produce
	pos        int // frames produced so far
	gen        func(frame, channel int) float32
}

func NewMockSource(sampleRate, channels, total int, gen func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		total:      total,
		gen:        gen,
	}
}

// NewSilentSource produces all-zero samples.
func NewSilentSource(sampleRate, channels, total int) *MockSource {
	return NewMockSource(sampleRate, channels, total, func(int, int) float32 { return 0 })
}

// NewConstantSource produces the same value for every sample.
func NewConstantSource(sampleRate, channels, total int, v float32) *MockSource {
	return NewMockSource(sampleRate, channels, total, func(int, int) float32 { return v })
}

// NewSineSource produces a sine tone at the given frequency, identical on
// every channel.
func NewSineSource(sampleRate, channels, total int, freq float64) *MockSource {
	return NewMockSource(sampleRate, channels, total, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * freq * t))
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() { m.pos = 0 }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= m.total {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if left := m.total - m.pos; frames > left {
		frames = left
	}

	for f := 0; f < frames; f++ {
		for c := 0; c < m.channels; c++ {
			dst[f*m.channels+c] = m.gen(m.pos+f, c)
		}
	}
	m.pos += frames

	if m.pos >= m.total {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}
