// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Metric, Report, options and sentinel errors for connectivity repair.

package connectivity

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/fortgraph/core"
)

// Sentinel errors.
var (
	// ErrUnconnectable indicates repair cannot proceed: the graph or the
	// distance metric is missing.
	ErrUnconnectable = errors.New("connectivity: unconnectable")

	// ErrBadDistance indicates the metric returned a negative or NaN distance.
	ErrBadDistance = fmt.Errorf("%w: metric returned negative or NaN distance", core.ErrInvalidArgument)
)

// Metric is a non-negative domain distance between two node payloads.
type Metric[T any] func(a, b T) float64

// Report describes what Repair did.
type Report struct {
	// Added lists the bridging edges in the order they were created.
	Added []core.Edge

	// Components is the number of connected components before repair.
	Components int

	// Iterations is the number of bridges laid; it equals len(Added).
	Iterations int
}

// Option configures Repair.
type Option func(*Options)

// Options holds Repair settings.
type Options struct {
	// Logger receives one debug entry per bridge and a summary. Defaults to a no-op.
	Logger *zap.Logger
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger sets the logger used to report bridges.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
