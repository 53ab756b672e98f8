package frame

import (
	"math"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generator produces square frames using its own random source.
//
// A Generator is not safe for concurrent use unless its source is.
// The zero value draws from the process-wide math/rand/v2 generator.
type Generator struct {
	src rand.Source
}

// NewGenerator returns a Generator drawing jitter from src.
// A nil src selects the process-wide generator.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{src: src}
}

// NewSeededGenerator returns a Generator whose output is fully determined by
// seed. Two generators with the same seed yield the same sequence of frames
// for the same sequence of arguments.
func NewSeededGenerator(seed uint64) *Generator {
	return &Generator{src: rand.NewPCG(seed, seed)}
}

var defaultGenerator Generator

// Generate returns a frame drawn from the process-wide random generator.
// It is safe for concurrent use.
func Generate(numDatapoints uint, sizeSide, thickness float64) Frame {
	return defaultGenerator.Generate(numDatapoints, sizeSide, thickness)
}

// Generate returns numDatapoints points (rounded down to a multiple of 4)
// spread evenly along the four sides of a square of side sizeSide centred at
// the origin. Each point is offset perpendicular to its side by a uniform draw
// from [-thickness/2, thickness/2).
//
// Inputs are not validated: a non-positive sizeSide or negative thickness
// yields a degenerate frame rather than an error.
func (g *Generator) Generate(numDatapoints uint, sizeSide, thickness float64) Frame {
	numSide := int(numDatapoints / 4)
	if dropped := numDatapoints % 4; dropped != 0 {
		opsf("%d points requested, generating %d (dropping %d to fill 4 equal sides)",
			numDatapoints, 4*numSide, dropped)
	}
	if !(sizeSide > 0) || !(thickness >= 0) || math.IsInf(sizeSide, 0) || math.IsInf(thickness, 0) {
		diagf("degenerate frame: size_side=%v thickness=%v", sizeSide, thickness)
	}

	half := sizeSide / 2
	avgline := linspace(numSide, -half, half)

	// lower is drawn in full before upper so a seeded source replays exactly.
	lower := g.window(numSide, thickness, -half)
	upper := g.window(numSide, thickness, half)

	tracef("generated frame: points=%d size_side=%v thickness=%v", 4*numSide, sizeSide, thickness)
	return Frame{
		X: slices.Concat(avgline, avgline, lower, upper),
		Y: slices.Concat(lower, upper, avgline, avgline),
	}
}

// window draws n jitter offsets across a band of width thickness and shifts
// them onto the side line at offset.
func (g *Generator) window(n int, thickness, offset float64) []float64 {
	dist := distuv.Uniform{Min: -thickness / 2, Max: thickness / 2, Src: g.src}
	w := make([]float64, n)
	for i := range w {
		w[i] = dist.Rand()
	}
	floats.AddConst(offset, w)
	return w
}

// linspace returns n evenly spaced values over [lo, hi], both ends included.
// A single value is lo.
func linspace(n int, lo, hi float64) []float64 {
	switch n {
	case 0:
		return nil
	case 1:
		return []float64{lo}
	}
	dst := floats.Span(make([]float64, n), lo, hi)
	// Span accumulates lo+step*i; pin the end so it never overshoots hi.
	dst[n-1] = hi
	return dst
}
