// SPDX-License-Identifier: EPL-2.0

package asset

import "errors"

var (
	ErrMissingURL = errors.New("catalog record requires a url")
	ErrNotFound   = errors.New("audio file not found")
	ErrNetwork    = errors.New("audio fetch failed")
	ErrDecode     = errors.New("audio decode failed")
)
