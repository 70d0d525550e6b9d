// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level audio processing primitives the
// loaders are built on.
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders and processors implement this interface, allowing
// them to be chained together in processing pipelines.
//
// # Pipelines
//
// Pipeline chains the two processing stages this package ships:
//
//	out := audio.Pipeline(src, 16000, true) // 16kHz mono
//	samples, err := audio.Collect(out, 4096)
//
// The Resampler changes the sample rate using cubic interpolation and works
// for both upsampling and downsampling. The MonoMixer converts multi-channel
// audio to mono by averaging channels. Both can also be used directly:
//
//	resampler := audio.NewResampler(source, 16000)
//	mono := audio.NewMonoMixer(resampler)
//
// # Format Registry
//
// The registry allows dynamic decoder registration and lookup, and Detect
// sniffs the container format from a stream's leading bytes:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	format, _ := audio.Detect(header)
//	decoder, _ := registry.Get(format)
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format makes it easy to process audio without worrying
// about bit depths and ensures no clipping during intermediate processing.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. Other errors
// indicate problems with the source or processing:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
