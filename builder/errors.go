// SPDX-License-Identifier: MIT
// Package: streetpath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; context (polyline index, point index) is
// attached with %w at the failure site.

package builder

import "errors"

// ErrBadWeight indicates that the distance function returned a negative,
// NaN or infinite weight for a segment.
var ErrBadWeight = errors.New("builder: invalid segment weight")
