// SPDX-License-Identifier: EPL-2.0

// Package oscdata prepares audio for multi-modal machine-learning
// pipelines: it loads audio assets into a canonical waveform
// representation and provides the numeric feature transforms applied
// before model input.
//
// # Layout
//
//   - asset: catalog records (Doc) and materialized clips (Audio) with
//     local-file and URL loaders
//   - feature: the frame transforms (LowFrameRate, ComputeDecibel, Frame)
//   - audio: low-level processing primitives (decoders, resampler, mono
//     mixer, format registry)
//   - formats/{wav,mp3,vorbis,aiff}: container decoders
//
// # Quick Start
//
// Load resolves a locator as a local path when one exists, and as a URL
// otherwise:
//
//	a, err := oscdata.Load(ctx, "speech.wav", asset.WithSampleRate(16000), asset.WithMono())
//	if err != nil {
//	    // handle error
//	}
//
//	waveform, _ := a.Waveform()
//	frames, _ := feature.Frame(waveform, 400, 160)
//	db, _ := feature.ComputeDecibel(frames)
//
// The feature transforms are pure functions over nested float32 slices and
// carry no state, so the loaded waveform can be shared across concurrent
// pipelines freely.
//
// # Supported Formats
//
// WAV (PCM), MP3, Ogg Vorbis and AIFF (16-bit PCM). The container format
// is sniffed from the stream's leading bytes, never from the file name.
package oscdata
