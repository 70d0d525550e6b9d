// SPDX-License-Identifier: EPL-2.0

package feature

import "fmt"

// LowFrameRate reduces the temporal resolution of a batched frame sequence.
//
// frames is shaped (batch, nFrames, nFeatures). Each output step concatenates
// m consecutive input frames along the feature axis, then the window start
// advances by m+n frames, so n is the number of frames skipped between
// windows on top of the m already consumed. With n=0 this is plain
// non-overlapping frame stacking; with n>0 it is strided subsampling with
// local context.
//
// The output is shaped (batch, nOut, nFeatures*m) with
//
//	nOut = (nFrames-m)/(m+n) + 1   when nFrames >= m, else 0
//
// Trailing frames that do not fill a complete window of m are dropped, not
// padded. That truncation is deliberate and lossy.
//
// LowFrameRate never mutates frames and returns freshly allocated output.
// It fails with ErrInvalidArgument when m < 1 or n < 0, and with
// ErrShapeMismatch when batches disagree on frame count, rows disagree on
// feature count, or the feature axis is empty.
func LowFrameRate(frames [][][]float32, m, n int) ([][][]float32, error) {
	if m < 1 {
		return nil, fmt.Errorf("%w: m = %d, must be >= 1", ErrInvalidArgument, m)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: n = %d, must be >= 0", ErrInvalidArgument, n)
	}

	nFrames, nFeatures, err := checkRank3(frames)
	if err != nil {
		return nil, err
	}

	stride := m + n
	nOut := 0
	if nFrames >= m {
		nOut = (nFrames-m)/stride + 1
	}

	out := make([][][]float32, len(frames))
	for b, batch := range frames {
		rows := make([][]float32, nOut)
		for i := 0; i < nOut; i++ {
			start := i * stride
			row := make([]float32, 0, nFeatures*m)
			for j := 0; j < m; j++ {
				row = append(row, batch[start+j]...)
			}
			rows[i] = row
		}
		out[b] = rows
	}

	return out, nil
}

// checkRank3 validates that frames is a well-formed rank-3 tensor and
// returns its (nFrames, nFeatures) dimensions. Batches must agree on frame
// count, every frame must agree on feature count, and the feature axis must
// be non-empty.
func checkRank3(frames [][][]float32) (nFrames, nFeatures int, err error) {
	if len(frames) == 0 {
		return 0, 0, fmt.Errorf("%w: empty batch axis, want rank-3 input", ErrShapeMismatch)
	}

	nFrames = len(frames[0])

	for b, batch := range frames {
		if len(batch) != nFrames {
			return 0, 0, fmt.Errorf("%w: batch %d has %d frames, batch 0 has %d",
				ErrShapeMismatch, b, len(batch), nFrames)
		}

		for f, row := range batch {
			if b == 0 && f == 0 {
				nFeatures = len(row)
				if nFeatures == 0 {
					return 0, 0, fmt.Errorf("%w: empty feature axis", ErrShapeMismatch)
				}
			}
			if len(row) != nFeatures {
				return 0, 0, fmt.Errorf("%w: frame (%d,%d) has %d features, want %d",
					ErrShapeMismatch, b, f, len(row), nFeatures)
			}
		}
	}

	// A batch with zero frames has no row to take the feature count from;
	// nOut is zero for it anyway.
	return nFrames, nFeatures, nil
}
