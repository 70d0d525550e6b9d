// SPDX-License-Identifier: EPL-2.0

package utils

import "encoding/binary"

// Float32ToInt16 converts a normalized sample in [-1, 1] to 16-bit PCM.
// Values outside the range are clamped.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Int16ToFloat32 converts a 16-bit PCM sample to a normalized float32 in [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// PCMScale returns the divisor that normalizes a signed PCM sample of the
// given bit depth to [-1, 1). Unknown depths fall back to 16-bit scaling.
func PCMScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 1 << 7
	case 16:
		return 1 << 15
	case 24:
		return 1 << 23
	case 32:
		return 1 << 31
	default:
		return 1 << 15
	}
}

// PCM16BytesToFloat32 converts little-endian 16-bit PCM bytes into normalized
// float32 samples written to dst. It returns the number of samples written,
// which is len(src)/2 capped at len(dst). Trailing odd bytes are ignored.
func PCM16BytesToFloat32(dst []float32, src []byte) int {
	samples := len(src) / 2
	if samples > len(dst) {
		samples = len(dst)
	}

	for i := 0; i < samples; i++ {
		v := int16(binary.LittleEndian.Uint16(src[2*i : 2*i+2]))
		dst[i] = Int16ToFloat32(v)
	}

	return samples
}
