// SPDX-License-Identifier: EPL-2.0

package asset

import "net/http"

type loadOptions struct {
	sampleRate int
	mono       bool
	bufferSize int
	format     string
	client     *http.Client
}

func newLoadOptions(opts []Option) loadOptions {
	o := loadOptions{
		bufferSize: 4096,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures a load operation.
type Option func(*loadOptions)

// WithSampleRate resamples the decoded audio to rate Hz during loading.
func WithSampleRate(rate int) Option {
	return func(o *loadOptions) {
		o.sampleRate = rate
	}
}

// WithMono mixes multi-channel audio down to a single channel during loading.
func WithMono() Option {
	return func(o *loadOptions) {
		o.mono = true
	}
}

// WithBufferSize sets the decode read chunk size in samples (default 4096).
func WithBufferSize(size int) Option {
	return func(o *loadOptions) {
		o.bufferSize = size
	}
}

// WithFormat overrides container format sniffing with an explicit format
// key ("wav", "mp3", "ogg", "aiff").
func WithFormat(format string) Option {
	return func(o *loadOptions) {
		o.format = format
	}
}

// WithHTTPClient sets the client used by LoadURL. The caller owns timeout
// and retry policy; the loader never retries on its own.
func WithHTTPClient(client *http.Client) Option {
	return func(o *loadOptions) {
		if client != nil {
			o.client = client
		}
	}
}
