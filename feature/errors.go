// SPDX-License-Identifier: EPL-2.0

package feature

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid transform argument")
	ErrShapeMismatch   = errors.New("input shape mismatch")
)
