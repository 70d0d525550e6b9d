package audio

import (
	"io"
	"math"
)

// mockSource generates synthetic interleaved samples for tests. The gen
// callback maps (frame index, channel) to a sample value, so one helper
// covers silence, tones and per-channel patterns.
type mockSource struct {
	sampleRate int
	channels   int
	total      int // frames to produce
	pos        int // frames produced so far
	gen        func(frame, channel int) float32
}

func newMockSource(sampleRate, channels, total int, gen func(frame, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate: sampleRate,
		channels:   channels,
		total:      total,
		gen:        gen,
	}
}

func newSilentSource(sampleRate, channels, total int) *mockSource {
	return newMockSource(sampleRate, channels, total, func(int, int) float32 { return 0 })
}

func newConstantSource(sampleRate, channels, total int, v float32) *mockSource {
	return newMockSource(sampleRate, channels, total, func(int, int) float32 { return v })
}

func newSineSource(sampleRate, channels, total int, freq float64) *mockSource {
	return newMockSource(sampleRate, channels, total, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * freq * t))
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 4096 }
func (m *mockSource) Close() error    { return nil }

// Reset rewinds the source so benchmarks can replay it.
func (m *mockSource) Reset() { m.pos = 0 }

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
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
