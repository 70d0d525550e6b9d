// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"

	"github.com/di-osc/osc-data/utils"
)

// stubAiffReader serves a fixed slice of int samples through the
// go-audio PCMBuffer contract.
type stubAiffReader struct {
	sampleRate int
	channels   int
	samples    []int
	offset     int
	fail       bool
}

func (m *stubAiffReader) Format() *goaudio.Format {
	return &goaudio.Format{
		SampleRate:  m.sampleRate,
		NumChannels: m.channels,
	}
}

func (m *stubAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.fail {
		return 0, io.ErrUnexpectedEOF
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := len(buf.Data)
	if left := len(m.samples) - m.offset; n > left {
		n = left
	}
	copy(buf.Data, m.samples[m.offset:m.offset+n])
	m.offset += n

	if m.offset >= len(m.samples) {
		return n, io.EOF
	}
	return n, nil
}

func newStubSource(sampleRate, channels, bitDepth int, samples []int) (*source, *stubAiffReader) {
	stub := &stubAiffReader{sampleRate: sampleRate, channels: channels, samples: samples}
	return &source{
		dec:        stub,
		sampleRate: sampleRate,
		channels:   channels,
		scale:      utils.PCMScale(bitDepth),
	}, stub
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("this is not AIFF data"))); err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
	if _, err := (Decoder{}).Decode(bytes.NewReader(nil)); err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src, _ := newStubSource(44100, 2, 16, make([]int, 100))

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_Conversion(t *testing.T) {
	t.Parallel()

	in := []int{0, 16384, -16384, 32767, -32768}
	want := []float32{0, 0.5, -0.5, 32767.0 / 32768, -1}

	src, _ := newStubSource(44100, 1, 16, in)

	dst := make([]float32, len(in))
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(in) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(in))
	}
	for i := 0; i < n; i++ {
		if dst[i] < want[i]-0.001 || dst[i] > want[i]+0.001 {
			t.Errorf("dst[%d] = %v, want ≈%v", i, dst[i], want[i])
		}
	}
}

func TestSource_EOF(t *testing.T) {
	t.Parallel()

	src, _ := newStubSource(44100, 1, 16, []int{100, 200})

	dst := make([]float32, 2)
	n, err := src.ReadSamples(dst)
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
	if n != 2 {
		t.Errorf("ReadSamples() n = %d, want 2", n)
	}

	n, err = src.ReadSamples(dst)
	if err != io.EOF {
		t.Errorf("second ReadSamples() error = %v, want io.EOF", err)
	}
	if n != 0 {
		t.Errorf("second ReadSamples() n = %d, want 0", n)
	}
}

func TestSource_ChunkedReads(t *testing.T) {
	t.Parallel()

	src, _ := newStubSource(44100, 1, 16, []int{100, 200, 300, 400, 500})

	dst := make([]float32, 2)
	for i, want := range []int{2, 2, 1} {
		n, err := src.ReadSamples(dst)
		if err != nil && err != io.EOF {
			t.Fatalf("read %d: error = %v", i, err)
		}
		if n != want {
			t.Errorf("read %d: n = %d, want %d", i, n, want)
		}
	}
}

func TestSource_DrainLargeStream(t *testing.T) {
	t.Parallel()

	samples := make([]int, 1000)
	for i := range samples {
		samples[i] = i * 10
	}
	src, _ := newStubSource(44100, 1, 16, samples)

	total := 0
	dst := make([]float32, 256)
	for {
		n, err := src.ReadSamples(dst)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
		if n == 0 {
			t.Fatal("ReadSamples() returned 0 samples without EOF")
		}
	}
	if total != 1000 {
		t.Errorf("total samples = %d, want 1000", total)
	}
}

func TestSource_EmptyDst(t *testing.T) {
	t.Parallel()

	src, _ := newStubSource(44100, 2, 16, make([]int, 100))

	n, err := src.ReadSamples(nil)
	if err != nil {
		t.Errorf("ReadSamples(nil) error = %v, want nil", err)
	}
	if n != 0 {
		t.Errorf("ReadSamples(nil) n = %d, want 0", n)
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	src, stub := newStubSource(44100, 1, 16, []int{100, 200})
	stub.fail = true

	if _, err := src.ReadSamples(make([]float32, 10)); err == nil {
		t.Error("ReadSamples() error = nil, want error")
	}
}

func TestSource_BufSize(t *testing.T) {
	t.Parallel()

	src, _ := newStubSource(44100, 2, 16, make([]int, 100))

	if got := src.BufSize(); got != 4096 {
		t.Errorf("BufSize() before first read = %d, want 4096", got)
	}

	src.ReadSamples(make([]float32, 100))

	if got := src.BufSize(); got < 100 {
		t.Errorf("BufSize() after read = %d, want >= 100", got)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int, 4096)
	for i := range samples {
		samples[i] = i * 100
	}
	src, stub := newStubSource(44100, 2, 16, samples)
	dst := make([]float32, 1024)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		stub.offset = 0
		for {
			n, err := src.ReadSamples(dst)
			if err == io.EOF || n == 0 {
				break
			}
		}
	}
}
