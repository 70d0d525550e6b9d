// SPDX-License-Identifier: EPL-2.0

// Package feature provides the numeric transforms applied to audio feature
// frames before they are fed to a model.
//
// A frame is one time slice of feature values. Frame sequences are plain
// nested float32 slices: a rank-2 matrix (frames × features) for a single
// clip, and a rank-3 tensor (batch × frames × features) for a batch.
//
// # Transforms
//
// LowFrameRate reduces temporal resolution by stacking m consecutive frames
// into one wide frame and skipping n frames between windows:
//
//	out, err := feature.LowFrameRate(frames, 3, 1)
//
// ComputeDecibel converts linear magnitudes to decibel scale elementwise:
//
//	db, err := feature.ComputeDecibel(frames)
//
// Frame slices a raw waveform into a rank-2 frame matrix so loaded audio can
// feed the two transforms:
//
//	mat, err := feature.Frame(asset.Waveform(), 400, 160)
//
// All transforms are pure functions: they never mutate their input, hold no
// state, and are safe for concurrent use.
//
// # Errors
//
//   - ErrInvalidArgument: parameter out of range (m < 1, n < 0, non-finite
//     input values)
//   - ErrShapeMismatch: ragged rows, empty feature axis, or otherwise
//     malformed input
package feature
