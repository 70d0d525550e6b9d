// SPDX-License-Identifier: EPL-2.0

package oscdata

import (
	"context"
	"os"

	"github.com/di-osc/osc-data/asset"
)

// Load materializes an audio asset from a locator that may be either a
// local filesystem path or a URL. A locator naming an existing file is
// loaded from disk; anything else is fetched over HTTP.
//
// The explicit asset.LoadLocal / asset.LoadURL constructors are preferred
// when the locator kind is known up front; Load exists for catalog entries
// that mix the two.
func Load(ctx context.Context, uri string, opts ...asset.Option) (*asset.Audio, error) {
	if _, err := os.Stat(uri); err == nil {
		return asset.LoadLocal(uri, opts...)
	}

	return asset.LoadURL(ctx, uri, opts...)
}
