// SPDX-License-Identifier: EPL-2.0

package asset

import (
	"context"

	"github.com/google/uuid"
)

// Doc is a serializable catalog record referencing an audio file by URL.
// It carries no waveform; optional metadata may be filled by an indexing
// step before the audio is ever fetched. Doc values are immutable by
// convention: build them with NewDoc and treat the fields as read-only.
type Doc struct {
	URL      string   `json:"url"`
	ID       string   `json:"id,omitempty"`
	Duration *float64 `json:"duration,omitempty"`
	Mono     *bool    `json:"mono,omitempty"`
}

// NewDoc creates a catalog record for url with a generated unique id.
// It fails with ErrMissingURL when url is empty.
func NewDoc(url string) (Doc, error) {
	if url == "" {
		return Doc{}, ErrMissingURL
	}

	return Doc{
		URL: url,
		ID:  uuid.NewString(),
	}, nil
}

// Materialize fetches and decodes the referenced audio, superseding the
// record with a fully loaded Audio. The record itself is not modified.
func (d Doc) Materialize(ctx context.Context, opts ...Option) (*Audio, error) {
	if d.URL == "" {
		return nil, ErrMissingURL
	}

	a := New(d.URL)
	if d.ID != "" {
		a.id = d.ID
	}

	if err := a.LoadURL(ctx, opts...); err != nil {
		return nil, err
	}

	return a, nil
}
