package render

import (
	"math"
	"math/rand/v2"
)

const (
	// FractalDepth caps the midpoint subdivision of a rough edge.
	FractalDepth = 5
	// DisplacementScale is the first midpoint's maximum offset, as a
	// fraction of the cell size.
	DisplacementScale = 0.2
)

// FractalEdge roughens the straight segment a-b by recursive midpoint
// displacement. It returns the points that follow a along the jagged line,
// ending exactly at b. At most 2^depth points are produced.
func FractalEdge(rng *rand.Rand, a, b Point, displacement float64, depth int) []Point {
	path := make([]Point, 0, 1<<max(depth, 0))
	return fractalPath(rng, a, b, displacement, depth, path)
}

func fractalPath(rng *rand.Rand, a, b Point, displacement float64, depth int, path []Point) []Point {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	dist := math.Hypot(dx, dy)

	if depth <= 0 || dist < 1 {
		return append(path, b)
	}

	// Push the midpoint off the segment along its normal
	offset := displacement * randomUnit(rng)
	mx := float64(a.X+b.X)/2 - dy/dist*offset
	my := float64(a.Y+b.Y)/2 + dx/dist*offset
	mid := Point{int(mx), int(my)}

	path = fractalPath(rng, a, mid, displacement/2, depth-1, path)
	return fractalPath(rng, mid, b, displacement/2, depth-1, path)
}
