// SPDX-License-Identifier: EPL-2.0

package feature

import "fmt"

// Frame slices a mono waveform into a rank-2 frame matrix of shape
// (nFrames, frameLen), advancing hop samples between frame starts. Frames
// may overlap when hop < frameLen. Trailing samples that do not fill a
// complete frame are dropped, matching the boundary policy of LowFrameRate.
//
// The output rows are copies; mutating them does not touch samples.
// Frame fails with ErrInvalidArgument when frameLen < 1 or hop < 1, and
// with ErrShapeMismatch when samples holds fewer than frameLen values.
func Frame(samples []float32, frameLen, hop int) ([][]float32, error) {
	if frameLen < 1 {
		return nil, fmt.Errorf("%w: frameLen = %d, must be >= 1", ErrInvalidArgument, frameLen)
	}
	if hop < 1 {
		return nil, fmt.Errorf("%w: hop = %d, must be >= 1", ErrInvalidArgument, hop)
	}
	if len(samples) < frameLen {
		return nil, fmt.Errorf("%w: %d samples cannot fill a frame of %d",
			ErrShapeMismatch, len(samples), frameLen)
	}

	nFrames := (len(samples)-frameLen)/hop + 1

	out := make([][]float32, nFrames)
	for i := 0; i < nFrames; i++ {
		start := i * hop
		row := make([]float32, frameLen)
		copy(row, samples[start:start+frameLen])
		out[i] = row
	}

	return out, nil
}
