// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/di-osc/osc-data/utils"
)

// Resampler converts a Source to a different sample rate using cubic
// interpolation over a sliding four-frame window. Interleaved layout and
// channel count are preserved. When downsampling, a one-pole low-pass
// filter is applied to reduce aliasing.
type Resampler struct {
	src      Source
	outRate  int
	step     float64 // source frames advanced per output frame
	channels int

	// Sliding window of source frames. win[1] and win[2] bracket the
	// current interpolation point; win[0] and win[3] feed the cubic.
	win   [4][]float32
	winOK [4]bool

	// Fractional position between win[1] and win[2], in [0, 1).
	frac float64

	readBuf []float32
	drained bool
	pads    int  // synthetic tail frames appended after the source drained
	eof     bool // stream fully delivered, every read from here on is io.EOF

	// Low-pass state, one accumulator per channel.
	lowpass bool
	lpAlpha float32
	lpState []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		outRate:  dstRate,
		step:     step,
		channels: channels,
		readBuf:  make([]float32, 4096),
		lowpass:  step > 1.0,
		lpState:  make([]float32, channels),
	}
	if r.lowpass {
		// Crude single-pole smoothing; enough to tame the worst of the
		// aliasing without a full FIR design.
		r.lpAlpha = 0.5
	}
	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.outRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// smooth runs the low-pass filter over one frame in place.
func (r *Resampler) smooth(frame []float32) {
	for c := 0; c < r.channels; c++ {
		frame[c] = r.lpAlpha*frame[c] + (1-r.lpAlpha)*r.lpState[c]
		r.lpState[c] = frame[c]
	}
}

// prime fills the window with the first source frames. Short inputs pad
// the tail slots with the last frame read.
func (r *Resampler) prime() error {
	for i := 0; i < 4; i++ {
		n, err := r.src.ReadSamples(r.readBuf[:r.channels])
		if n > 0 {
			copy(r.win[i], r.readBuf[:n])
			r.winOK[i] = true
			if i == 0 && r.lowpass {
				// Seed the filter so the first samples are not dragged
				// toward zero.
				copy(r.lpState, r.readBuf[:n])
			}
		}
		if err == io.EOF {
			r.drained = true
			if i == 0 {
				return io.EOF
			}
			for j := i; j < 4; j++ {
				copy(r.win[j], r.win[i-1])
				r.winOK[j] = true
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}

// advance slides the window forward by one source frame. Once the source
// drains, the tail slot is padded with the last real frame, the same
// treatment prime gives short inputs, so the interval between the final
// two real frames is still produced.
func (r *Resampler) advance() error {
	if r.drained && r.pads >= 2 {
		return io.EOF
	}

	copy(r.win[0], r.win[1])
	copy(r.win[1], r.win[2])
	copy(r.win[2], r.win[3])
	r.winOK[0], r.winOK[1], r.winOK[2] = r.winOK[1], r.winOK[2], r.winOK[3]

	if r.drained {
		copy(r.win[3], r.win[2])
		r.winOK[3] = true
		r.pads++
		return nil
	}

	n, err := r.src.ReadSamples(r.readBuf[:r.channels])
	if n > 0 {
		copy(r.win[3], r.readBuf[:n])
		r.winOK[3] = true
		if r.lowpass {
			r.smooth(r.win[3])
		}
	} else {
		copy(r.win[3], r.win[2])
		r.winOK[3] = true
		r.pads++
	}

	if err == io.EOF {
		r.drained = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples fills dst with samples at the target rate. len(dst) must be
// a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.eof {
		return 0, io.EOF
	}

	if !r.winOK[1] {
		if err := r.prime(); err != nil {
			if err == io.EOF {
				r.eof = true
				return 0, io.EOF
			}
			return 0, err
		}
	}

	written := 0
	want := len(dst) / r.channels

	for written < want {
		for r.frac >= 1.0 {
			r.frac -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF {
					r.eof = true
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.winOK[1] || !r.winOK[2] {
			r.eof = true
			return written * r.channels, io.EOF
		}

		t := float32(r.frac)
		for c := 0; c < r.channels; c++ {
			y0 := r.win[1][c]
			if r.winOK[0] {
				y0 = r.win[0][c]
			}
			y3 := r.win[2][c]
			if r.winOK[3] {
				y3 = r.win[3][c]
			}
			dst[written*r.channels+c] = utils.CubicInterpolate(y0, r.win[1][c], r.win[2][c], y3, t)
		}

		written++
		r.frac += r.step
	}

	return written * r.channels, nil
}
