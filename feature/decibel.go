// SPDX-License-Identifier: EPL-2.0

package feature

import (
	"fmt"
	"math"
)

const (
	// DecibelReference is the multiplier applied to log10 of each value.
	// 20 is the amplitude-domain convention; pipelines working on power
	// values should square into amplitude (or halve the result) rather
	// than mix conventions.
	DecibelReference = 20.0

	// DecibelFloor is the numeric floor applied before taking log10 so a
	// zero magnitude maps to a finite value. It is not a physically
	// meaningful signal floor, only protection against log(0).
	DecibelFloor = 1e-10
)

// ComputeDecibel converts a linear-magnitude frame matrix to decibel scale.
//
// frames is shaped (nFrames, nFeatures); the result has identical shape with
// every element mapped independently to
//
//	d = DecibelReference * log10(max(v, DecibelFloor))
//
// There is no normalization against a running peak: this is a stateless
// per-element conversion, not relative-to-peak dB. Values at or below the
// floor (including zero and -Inf) clamp to DecibelReference*log10(DecibelFloor).
//
// ComputeDecibel never mutates frames. It fails with ErrShapeMismatch on
// ragged rows or an empty feature axis, and with ErrInvalidArgument when the
// input contains NaN or +Inf, which cannot be floor-clamped to a finite
// result.
func ComputeDecibel(frames [][]float32) ([][]float32, error) {
	if _, err := checkRank2(frames); err != nil {
		return nil, err
	}

	out := make([][]float32, len(frames))
	for i, row := range frames {
		dst := make([]float32, len(row))
		for j, v := range row {
			f := float64(v)
			if math.IsNaN(f) || math.IsInf(f, 1) {
				return nil, fmt.Errorf("%w: non-finite value %v at (%d,%d)",
					ErrInvalidArgument, v, i, j)
			}
			if f < DecibelFloor {
				f = DecibelFloor
			}
			dst[j] = float32(DecibelReference * math.Log10(f))
		}
		out[i] = dst
	}

	return out, nil
}

// checkRank2 validates that frames is a well-formed rank-2 matrix and
// returns its feature count. Every row must agree on feature count and the
// feature axis must be non-empty.
func checkRank2(frames [][]float32) (nFeatures int, err error) {
	if len(frames) == 0 {
		return 0, fmt.Errorf("%w: empty frame axis, want rank-2 input", ErrShapeMismatch)
	}

	nFeatures = len(frames[0])
	if nFeatures == 0 {
		return 0, fmt.Errorf("%w: empty feature axis", ErrShapeMismatch)
	}

	for i, row := range frames {
		if len(row) != nFeatures {
			return 0, fmt.Errorf("%w: frame %d has %d features, want %d",
				ErrShapeMismatch, i, len(row), nFeatures)
		}
	}

	return nFeatures, nil
}
