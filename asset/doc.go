// SPDX-License-Identifier: EPL-2.0

// Package asset holds the audio data entities: the lightweight catalog
// record (Doc) and the materialized in-memory clip (Audio).
//
// A Doc references an audio file by URL without carrying any waveform, so
// catalogs can be built and serialized before any audio is fetched. An
// Audio is the materialized form: source locator, metadata and the decoded
// waveform as normalized float32 samples.
//
// # Loading
//
// The two load entry points are mutually exclusive interpretations of the
// same locator: LoadLocal treats it as a filesystem path, LoadURL as a
// remote URL. Both are idempotent; loading again re-fetches the source and
// replaces waveform and metadata together. A failed load leaves the Audio
// exactly as it was.
//
//	a, err := asset.LoadLocal("clip.wav", asset.WithSampleRate(16000), asset.WithMono())
//	a, err := asset.LoadURL(ctx, "https://example.com/clip.mp3")
//
// A Doc is materialized over the network:
//
//	doc, _ := asset.NewDoc("https://example.com/clip.ogg")
//	a, err := doc.Materialize(ctx)
//
// The container format is sniffed from the stream's leading bytes; WAV,
// MP3, Ogg Vorbis and AIFF are supported. Use WithFormat to override
// sniffing for misnamed or headerless sources.
//
// # Errors
//
//   - ErrNotFound: local path does not exist or cannot be opened
//   - ErrNetwork: transport failure or non-success HTTP status
//   - ErrDecode: fetched bytes could not be decoded as audio
//   - ErrMissingURL: catalog record constructed without a URL
package asset
