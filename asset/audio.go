// SPDX-License-Identifier: EPL-2.0

package asset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/google/uuid"
)

// Audio is a materialized audio asset: a source locator plus the decoded
// waveform and its metadata. Metadata and waveform are absent until a load
// succeeds; a failed or cancelled load never leaves them half-written.
//
// The waveform is normalized float32 samples in [-1, 1], interleaved when
// multi-channel. It is owned by the Audio; loading again replaces it.
//
// An Audio is safe for concurrent use, but the two load entry points are
// mutually exclusive interpretations of the same locator; pick one per
// entity. The package-level LoadLocal/LoadURL constructors are the
// preferred way to get a loaded Audio in one step.
type Audio struct {
	path string
	id   string

	mtx sync.Mutex

	loaded     bool
	sampleRate int
	channels   int
	duration   float64
	waveform   []float32
}

// New creates an unloaded Audio for the given locator (local path or URL)
// with a generated unique id.
func New(pathOrURL string) *Audio {
	return &Audio{
		path: pathOrURL,
		id:   uuid.NewString(),
	}
}

// LoadLocal creates an Audio from a local file and loads it.
func LoadLocal(path string, opts ...Option) (*Audio, error) {
	a := New(path)
	if err := a.LoadLocal(opts...); err != nil {
		return nil, err
	}
	return a, nil
}

// LoadURL creates an Audio from a remote URL and loads it.
func LoadURL(ctx context.Context, url string, opts ...Option) (*Audio, error) {
	a := New(url)
	if err := a.LoadURL(ctx, opts...); err != nil {
		return nil, err
	}
	return a, nil
}

// Path returns the source locator the Audio was created with.
func (a *Audio) Path() string { return a.path }

// ID returns the asset's unique identifier.
func (a *Audio) ID() string { return a.id }

// Loaded reports whether a load operation has succeeded.
func (a *Audio) Loaded() bool {
	a.mtx.Lock()
	defer a.mtx.Unlock()
	return a.loaded
}

// SampleRate returns the waveform sample rate in Hz. ok is false until a
// load succeeds.
func (a *Audio) SampleRate() (rate int, ok bool) {
	a.mtx.Lock()
	defer a.mtx.Unlock()
	return a.sampleRate, a.loaded
}

// Channels returns the waveform channel count. ok is false until a load
// succeeds.
func (a *Audio) Channels() (channels int, ok bool) {
	a.mtx.Lock()
	defer a.mtx.Unlock()
	return a.channels, a.loaded
}

// Mono reports whether the waveform is single-channel. ok is false until a
// load succeeds.
func (a *Audio) Mono() (mono, ok bool) {
	a.mtx.Lock()
	defer a.mtx.Unlock()
	return a.channels == 1, a.loaded
}

// Duration returns the clip length in seconds, derived from the waveform
// length and sample rate. ok is false until a load succeeds.
func (a *Audio) Duration() (seconds float64, ok bool) {
	a.mtx.Lock()
	defer a.mtx.Unlock()
	return a.duration, a.loaded
}

// DurationMillis returns the clip length in milliseconds. ok is false until
// a load succeeds.
func (a *Audio) DurationMillis() (millis float64, ok bool) {
	a.mtx.Lock()
	defer a.mtx.Unlock()
	return a.duration * 1000, a.loaded
}

// Waveform returns the decoded sample buffer. ok is false until a load
// succeeds. The buffer is owned by the Audio and replaced wholesale by a
// re-load; callers must not mutate it.
func (a *Audio) Waveform() (samples []float32, ok bool) {
	a.mtx.Lock()
	defer a.mtx.Unlock()
	return a.waveform, a.loaded
}

// LoadLocal interprets the locator as a filesystem path, decodes the file
// and populates waveform and metadata in place. Loading is idempotent: a
// second call re-reads the file and replaces everything. On error the
// Audio keeps its prior state.
func (a *Audio) LoadLocal(opts ...Option) error {
	o := newLoadOptions(opts)

	data, err := os.ReadFile(a.path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, err)
	}

	c, err := decode(data, o)
	if err != nil {
		return err
	}

	a.publish(c)
	return nil
}

// LoadURL interprets the locator as a URL, fetches it over HTTP and
// populates waveform and metadata in place. Loading is idempotent: a
// second call re-fetches and replaces everything. On error (including
// context cancellation) the Audio keeps its prior state. Retry and backoff
// are the caller's concern.
func (a *Audio) LoadURL(ctx context.Context, opts ...Option) error {
	o := newLoadOptions(opts)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.path, nil)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNetwork, err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %s for %s", ErrNetwork, resp.Status, a.path)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNetwork, err)
	}

	c, err := decode(data, o)
	if err != nil {
		return err
	}

	a.publish(c)
	return nil
}

// publish swaps in the result of a successful decode. All fields update
// together so readers never observe a partially loaded asset.
func (a *Audio) publish(c clip) {
	a.mtx.Lock()
	defer a.mtx.Unlock()

	a.loaded = true
	a.sampleRate = c.sampleRate
	a.channels = c.channels
	a.duration = c.duration
	a.waveform = c.waveform
}
