// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
)

// WAVBytes builds a canonical PCM 16-bit WAV file in memory. samples are
// interleaved when channels > 1. Intended for loader and decoder tests that
// need real container bytes without fixture files on disk.
func WAVBytes(sampleRate, channels int, samples []int16) []byte {
	bitsPerSample := 16
	dataSize := uint32(len(samples) * 2)

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*channels*bitsPerSample/8))
	binary.Write(&buf, binary.LittleEndian, uint16(channels*bitsPerSample/8))
	binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataSize)
	for _, s := range samples {
		binary.Write(&buf, binary.LittleEndian, s)
	}

	return buf.Bytes()
}

// SawtoothSamples generates n deterministic int16 samples for fixtures.
func SawtoothSamples(n int) []int16 {
	samples := make([]int16, n)
	for i := range samples {
		samples[i] = int16((i % 200) * 100)
	}
	return samples
}
