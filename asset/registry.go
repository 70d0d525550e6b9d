// SPDX-License-Identifier: EPL-2.0

package asset

import (
	"bytes"
	"fmt"

	"github.com/di-osc/osc-data/audio"
	"github.com/di-osc/osc-data/formats/aiff"
	"github.com/di-osc/osc-data/formats/mp3"
	"github.com/di-osc/osc-data/formats/vorbis"
	"github.com/di-osc/osc-data/formats/wav"
)

// defaultRegistry holds the decoders this module ships, keyed by the
// format names audio.Detect reports.
var defaultRegistry = func() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	return r
}()

// clip is the result of a successful decode: every field an Audio publishes
// in one atomic swap.
type clip struct {
	sampleRate int
	channels   int
	duration   float64
	waveform   []float32
}

// decode turns raw container bytes into a clip, applying the optional
// resample and mono-mixdown stages.
func decode(data []byte, o loadOptions) (clip, error) {
	format := o.format
	if format == "" {
		sniff := data
		if len(sniff) > audio.SniffLen {
			sniff = sniff[:audio.SniffLen]
		}

		var err error
		format, err = audio.Detect(sniff)
		if err != nil {
			return clip{}, fmt.Errorf("%w: %s", ErrDecode, err)
		}
	}

	dec, ok := defaultRegistry.Get(format)
	if !ok {
		return clip{}, fmt.Errorf("%w: no decoder for format %q", ErrDecode, format)
	}

	src, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return clip{}, fmt.Errorf("%w: %s", ErrDecode, err)
	}
	defer src.Close()

	out := audio.Pipeline(src, o.sampleRate, o.mono)

	waveform, err := audio.Collect(out, o.bufferSize)
	if err != nil {
		return clip{}, fmt.Errorf("%w: %s", ErrDecode, err)
	}

	c := clip{
		sampleRate: out.SampleRate(),
		channels:   out.Channels(),
		waveform:   waveform,
	}
	if c.sampleRate > 0 && c.channels > 0 {
		frames := len(waveform) / c.channels
		c.duration = float64(frames) / float64(c.sampleRate)
	}

	return c, nil
}
