// SPDX-License-Identifier: MIT

// Package geom holds the planar coordinates shared by clustering and map
// generation.
package geom

import (
	"fmt"
	"math"
)

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Scale returns p·k.
func (p Point) Scale(k float64) Point { return Point{X: p.X * k, Y: p.Y * k} }

func (p Point) String() string { return fmt.Sprintf("(%.1f,%.1f)", p.X, p.Y) }

// Euclidean is Point.Distance as a free function, usable as a metric.
func Euclidean(p, q Point) float64 { return p.Distance(q) }

// Bounds is the map size: Width×Height tiles of Scale world units each.
type Bounds struct {
	Width, Height, Scale int
}

// Extent returns the world-unit size of the map.
func (b Bounds) Extent() (w, h float64) {
	return float64(b.Width * b.Scale), float64(b.Height * b.Scale)
}

// Contains reports whether p lies inside [0,w)×[0,h).
func (b Bounds) Contains(p Point) bool {
	w, h := b.Extent()

	return p.X >= 0 && p.Y >= 0 && p.X < w && p.Y < h
}

// Empty reports whether the bounds have no area.
func (b Bounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0 || b.Scale <= 0
}

// Box returns the world-unit rectangle covered by b, anchored at the origin.
func (b Bounds) Box() Box {
	w, h := b.Extent()

	return Box{Max: Point{X: w, Y: h}}
}

// Box is the closed axis-aligned rectangle [Min.X,Max.X]×[Min.Y,Max.Y].
type Box struct {
	Min, Max Point
}

// BoxOf returns the tightest box holding every point; the zero Box for none.
func BoxOf(pts []Point) Box {
	if len(pts) == 0 {
		return Box{}
	}
	b := Box{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b.Min = Point{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y)}
		b.Max = Point{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y)}
	}

	return b
}

// Size returns the width and height of b.
func (b Box) Size() (w, h float64) {
	return b.Max.X - b.Min.X, b.Max.Y - b.Min.Y
}

// Contains reports whether p lies inside b, edges included.
func (b Box) Contains(p Point) bool {
	return p.X >= b.Min.X && p.Y >= b.Min.Y && p.X <= b.Max.X && p.Y <= b.Max.Y
}

// At maps fractions (fx, fy) in [0,1] to the point at that relative position.
func (b Box) At(fx, fy float64) Point {
	w, h := b.Size()

	return Point{X: b.Min.X + fx*w, Y: b.Min.Y + fy*h}
}
