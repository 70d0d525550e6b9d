// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteWAV16 writes samples as a canonical mono 16-bit PCM WAV file.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	const (
		channels      = 1
		bitsPerSample = 16
		bytesPerFrame = channels * bitsPerSample / 8
	)

	dataSize := uint32(len(samples) * 2)

	var header [44]byte
	le := binary.LittleEndian

	copy(header[0:4], "RIFF")
	le.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	le.PutUint32(header[16:20], 16) // PCM fmt chunk size
	le.PutUint16(header[20:22], 1)  // PCM
	le.PutUint16(header[22:24], channels)
	le.PutUint32(header[24:28], uint32(sampleRate))
	le.PutUint32(header[28:32], uint32(sampleRate)*bytesPerFrame)
	le.PutUint16(header[32:34], bytesPerFrame)
	le.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	le.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("%w", err)
	}

	// Encode in fixed-size chunks so large inputs don't need one big
	// scratch buffer.
	const chunkFrames = 8192
	n := len(samples)
	if n == 0 {
		return nil
	}

	buf := make([]byte, min(n, chunkFrames)*2)
	for i := 0; i < n; i += chunkFrames {
		chunk := samples[i:min(i+chunkFrames, n)]
		out := buf[:len(chunk)*2]
		for j, s := range chunk {
			le.PutUint16(out[j*2:], uint16(s))
		}
		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
