// SPDX-License-Identifier: MIT

package compress

import "errors"

var (
	// ErrInvalidRankFactor is returned for a NaN rank factor, and for any
	// factor outside [0, 1] when WithStrictRankFactor is set.
	ErrInvalidRankFactor = errors.New("compress: invalid rank factor")
)
