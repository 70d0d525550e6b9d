// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/di-osc/osc-data/audio"
	"github.com/di-osc/osc-data/formats/mp3"
)

// ExampleDecoder_Decode shows how to decode an MP3 file into normalized
// float32 samples.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	decoder := mp3.Decoder{}
	src, err := decoder.Decode(f)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	fmt.Printf("Sample rate: %d Hz, channels: %d\n", src.SampleRate(), src.Channels())

	buf := make([]float32, 4096)
	for {
		n, err := src.ReadSamples(buf)
		_ = buf[:n] // process samples

		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
	}
}

// ExampleDecoder_Decode_pipeline chains the decoder with the processing
// stages to get 16kHz mono samples.
func ExampleDecoder_Decode_pipeline() {
	f, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := mp3.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	// go-mp3 always decodes to stereo; mix down and resample in one chain.
	out := audio.Pipeline(src, 16000, true)

	samples, err := audio.Collect(out, 4096)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d mono samples at 16kHz\n", len(samples))
}
