// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Collect drains src and returns all its samples as a single float32 buffer.
// bufferSize is the read chunk size in samples (e.g., 4096).
//
// The returned buffer holds interleaved samples when src is multi-channel.
// io.EOF from the source terminates collection and is not returned as an
// error.
func Collect(src Source, bufferSize int) ([]float32, error) {
	if bufferSize <= 0 {
		bufferSize = 4096
	}

	var samples []float32
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return samples, nil
}

// Pipeline wraps src with an optional resampling stage and an optional mono
// mixdown stage. targetRate <= 0 keeps the source rate; mono is a no-op for
// sources that are already single-channel.
//
// The stage order matters: resampling runs on the original channel layout so
// the mixdown averages already rate-converted samples.
func Pipeline(src Source, targetRate int, mono bool) Source {
	out := src

	if targetRate > 0 && targetRate != src.SampleRate() {
		out = NewResampler(out, targetRate)
	}

	if mono && out.Channels() > 1 {
		out = NewMonoMixer(out)
	}

	return out
}
