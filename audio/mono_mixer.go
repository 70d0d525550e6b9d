// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer folds a multi-channel Source down to a single channel by
// averaging the channels of each frame. Mono input passes through
// untouched.
type MonoMixer struct {
	src Source
	tmp []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	// One output sample consumes one full frame of interleaved input.
	need := len(dst) * channels
	if cap(m.tmp) < need {
		grow := need
		if grow < 8192 {
			grow = 8192
		}
		m.tmp = make([]float32, grow)
	}

	n, err := m.src.ReadSamples(m.tmp[:need])
	if n == 0 {
		return 0, err
	}
	frames := n / channels

	switch channels {
	case 2:
		for f := 0; f < frames; f++ {
			i := f * 2
			dst[f] = (m.tmp[i] + m.tmp[i+1]) * 0.5
		}
	default:
		scale := 1 / float32(channels)
		for f := 0; f < frames; f++ {
			base := f * channels
			var sum float32
			for c := 0; c < channels; c++ {
				sum += m.tmp[base+c]
			}
			dst[f] = sum * scale
		}
	}

	return frames, err
}
