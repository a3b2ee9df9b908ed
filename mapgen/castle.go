// SPDX-License-Identifier: MIT
//
// File: castle.go
// Role: Castle payload and tile-based castle placement on the terrain.

package mapgen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/fortgraph/geom"
)

// NoKingdom marks a castle outside every kingdom.
const NoKingdom = -1

// Castle is one fortress on the map and the payload of the road graph.
type Castle struct {
	ID      uuid.UUID
	Name    string
	Pos     geom.Point
	Kingdom int
}

// Location implements cluster.Locatable.
func (c *Castle) Location() geom.Point { return c.Pos }

// Distance returns the straight-line distance to o in world units.
func (c *Castle) Distance(o *Castle) float64 {
	return c.Pos.Distance(o.Pos)
}

func (c *Castle) String() string {
	return fmt.Sprintf("%s %s", c.Name, c.Pos)
}

var (
	namePrefixes = []string{"Castle", "Fort", "Keep"}
	baseNames    = []string{
		"Ashford", "Blackmoor", "Brightwater", "Coldharbour", "Dunmere",
		"Eastwatch", "Fallowmere", "Greystone", "Hollowmere", "Ironhold",
		"Kingsbridge", "Lowfield", "Marrowdale", "Northmarch", "Oakheart",
		"Pinecrest", "Ravenscar", "Redcliff", "Silverbrook", "Stormhold",
		"Thornbury", "Underhill", "Valemont", "Westmarch", "Whitehaven",
		"Wolfden", "Yarrowby",
	}
)

// castleNames returns "<prefix> <name>" for every base name, prefixes drawn from r.
func castleNames(r *rand.Rand) []string {
	out := make([]string, len(baseNames))
	for i, n := range baseNames {
		out[i] = namePrefixes[r.Intn(len(namePrefixes))] + " " + n
	}

	return out
}

// pickName removes and returns a random name from pool, or "Castle n" once
// the pool is exhausted.
func pickName(pool *[]string, r *rand.Rand, n int) string {
	if len(*pool) == 0 {
		return fmt.Sprintf("Castle %d", n)
	}
	j := r.Intn(len(*pool))
	name := (*pool)[j]
	*pool = append((*pool)[:j], (*pool)[j+1:]...)

	return name
}

// tiling returns the tile grid used for placement: roughly √castles tiles per
// axis, split by aspect ratio, plus a margin of 5.
func tiling(p Params) (tilesX, tilesY, tileW, tileH int) {
	square := math.Ceil(math.Sqrt(float64(p.Castles)))
	length := float64(p.Width + p.Height)
	tilesX = int(math.Max(1, (float64(p.Width)/length+0.5)*square)) + 5
	tilesY = int(math.Max(1, (float64(p.Height)/length+0.5)*square)) + 5

	return tilesX, tilesY, p.Width * p.Scale / tilesX, p.Height * p.Scale / tilesY
}

// placeCastles puts at most p.Castles castles on land. Each tile hosts at most
// one castle; inside a random tile the search walks from the tile center back
// toward its corner and takes the first site whose terrain reaches
// LandThreshold and that keeps max(tileW, tileH) from every castle placed so
// far. Tiles without such a site are skipped, so fewer castles may result.
func placeCastles(t *Terrain, p Params, r *rand.Rand) ([]*Castle, error) {
	tilesX, tilesY, tileW, tileH := tiling(p)
	if tileW <= 0 || tileH <= 0 {
		return nil, fmt.Errorf("%w: map too small for %d castles", ErrInvalidParams, p.Castles)
	}
	spacing := float64(max(tileW, tileH))

	fields := make([][2]int, 0, tilesX*tilesY)
	for x := 0; x < tilesX-1; x++ {
		for y := 0; y < tilesY-1; y++ {
			fields = append(fields, [2]int{x, y})
		}
	}

	names := castleNames(r)
	var castles []*Castle
	for len(fields) > 0 && len(castles) < p.Castles {
		i := r.Intn(len(fields))
		f := fields[i]
		fields = append(fields[:i], fields[i+1:]...)

		x0, y0 := int((float64(f[0])+0.5)*float64(tileW)), int((float64(f[1])+0.5)*float64(tileH))
		site, ok := findSite(t, x0, y0, tileW/2, tileH/2, p.LandThreshold, spacing, castles)
		if !ok {
			continue
		}

		name := pickName(&names, r, len(castles)+1)
		id, err := uuid.NewRandomFromReader(r)
		if err != nil {
			return nil, fmt.Errorf("mapgen: castle id: %w", err)
		}
		castles = append(castles, &Castle{ID: id, Name: name, Pos: site, Kingdom: NoKingdom})
	}

	return castles, nil
}

// findSite scans offsets (dx, dy) from (halfW, halfH) down to 0 around (x0, y0).
func findSite(t *Terrain, x0, y0, halfW, halfH int, land, spacing float64, placed []*Castle) (geom.Point, bool) {
	for dx := halfW; dx >= 0; dx-- {
		for dy := halfH; dy >= 0; dy-- {
			x, y := x0+dx, y0+dy
			if t.At(x, y) < land {
				continue
			}
			site := geom.Pt(float64(x), float64(y))
			if tooClose(site, placed, spacing) {
				continue
			}

			return site, true
		}
	}

	return geom.Point{}, false
}

func tooClose(p geom.Point, placed []*Castle, spacing float64) bool {
	for _, c := range placed {
		if c.Pos.Distance(p) < spacing {
			return true
		}
	}

	return false
}
