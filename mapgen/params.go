// SPDX-License-Identifier: MIT
//
// File: params.go
// Role: generation parameters, defaults and validation.

package mapgen

import (
	"fmt"

	"github.com/katalvlaran/fortgraph/core"
	"github.com/katalvlaran/fortgraph/geom"
)

// ErrInvalidParams indicates unusable generation parameters.
var ErrInvalidParams = fmt.Errorf("%w: mapgen: invalid parameters", core.ErrInvalidArgument)

// Map size floors, in tiles.
const (
	MinWidth  = 15
	MinHeight = 10

	// DefaultLandThreshold is the terrain value a castle site must reach.
	DefaultLandThreshold = 0.6
)

// Params drives Generate.
type Params struct {
	// Width and Height are in tiles; raised to MinWidth/MinHeight when smaller.
	Width, Height int

	// Scale is the number of world units per tile.
	Scale int

	// Castles is the maximum number of castles to place. Fewer may fit.
	Castles int

	// Kingdoms is the number of territories; values below 2 or not below the
	// number of placed castles produce no kingdoms.
	Kingdoms int

	// Seed makes the world reproducible; 0 selects the default seed.
	Seed int64

	// LandThreshold in (0,1]; 0 means DefaultLandThreshold.
	LandThreshold float64

	// LinkRadius links castles at most this far apart, in world units.
	// 0 means (Width+Height)/8 tiles.
	LinkRadius float64
}

// DefaultParams returns a medium-sized map.
func DefaultParams() Params {
	return Params{
		Width:    30,
		Height:   20,
		Scale:    10,
		Castles:  20,
		Kingdoms: 4,
	}
}

// Bounds returns the map bounds.
func (p Params) Bounds() geom.Bounds {
	return geom.Bounds{Width: p.Width, Height: p.Height, Scale: p.Scale}
}

// Validate returns p with size floors and defaults applied, or ErrInvalidParams.
func (p Params) Validate() (Params, error) {
	if p.Scale <= 0 {
		return p, fmt.Errorf("%w: scale must be positive (%d)", ErrInvalidParams, p.Scale)
	}
	if p.Castles <= 0 {
		return p, fmt.Errorf("%w: castle count must be positive (%d)", ErrInvalidParams, p.Castles)
	}
	if p.Kingdoms < 0 {
		return p, fmt.Errorf("%w: kingdom count cannot be negative (%d)", ErrInvalidParams, p.Kingdoms)
	}
	if p.LandThreshold < 0 || p.LandThreshold > 1 {
		return p, fmt.Errorf("%w: land threshold %v outside [0,1]", ErrInvalidParams, p.LandThreshold)
	}
	if p.LinkRadius < 0 {
		return p, fmt.Errorf("%w: link radius cannot be negative (%v)", ErrInvalidParams, p.LinkRadius)
	}

	p.Width = max(p.Width, MinWidth)
	p.Height = max(p.Height, MinHeight)
	if p.LandThreshold == 0 {
		p.LandThreshold = DefaultLandThreshold
	}
	if p.LinkRadius == 0 {
		p.LinkRadius = float64((p.Width+p.Height)/8) * float64(p.Scale)
	}

	return p, nil
}
