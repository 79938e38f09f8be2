package render

import (
	"math"
	"math/rand/v2"

	"gridmapper/internal/gridmap"
)

// Direction names one edge of a cell.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

var directions = [...]Direction{North, East, South, West}

func (d Direction) step(c gridmap.Coord) gridmap.Coord {
	switch d {
	case North:
		return c.North()
	case East:
		return c.East()
	case South:
		return c.South()
	default:
		return c.West()
	}
}

const (
	stairsPerCell  = 5
	waterPerEdge   = 4
	spiralGap      = 1.0 // radians, centred on the top of the circle
	spiralInner    = 0.20
	spiralSpokes   = 12
	diamondScaling = math.Sqrt2 / 2
)

// Floor renders the floor of c.
func Floor(v View, c gridmap.Coord) []Command {
	floor := v.Cell(c).Floor
	if !floor.Valid() {
		return nil
	}
	cs := CellSize(v)
	rough := v.Display().RoughEdges()
	p := origin(c, cs)
	far := p.Add(cs, cs)

	// Solid rock with smooth edges is a plain black square
	if floor == gridmap.FloorFill && !rough {
		return []Command{rect(p, far, solidBlack)}
	}

	cmds := []Command{rect(p, far, solidWhite)}
	rng := cellRand(c, floorStream)

	switch floor {
	case gridmap.FloorFill:
		for _, dir := range directions {
			cmds = append(cmds, fillQuadrant(v, c, p, cs, dir, rng))
		}

	case gridmap.FloorNorthSouthStairs, gridmap.FloorWestEastStairs:
		for s := 0; s <= stairsPerCell; s++ {
			d := s * cs / stairsPerCell
			if floor == gridmap.FloorNorthSouthStairs {
				cmds = append(cmds, line(p.Add(0, d), p.Add(cs, d), thinBlack))
			} else {
				cmds = append(cmds, line(p.Add(d, 0), p.Add(d, cs), thinBlack))
			}
		}

	case gridmap.FloorNWWall:
		cmds = append(cmds, line(p, far, thickBlack))
	case gridmap.FloorNEWall:
		cmds = append(cmds, line(p.Add(cs, 0), p.Add(0, cs), thickBlack))
	case gridmap.FloorNWDoor:
		cmds = append(cmds, line(p, far, thickBlack), diamond(p, cs))
	case gridmap.FloorNEDoor:
		cmds = append(cmds, line(p.Add(cs, 0), p.Add(0, cs), thickBlack), diamond(p, cs))

	case gridmap.FloorNWFill, gridmap.FloorNEFill, gridmap.FloorSWFill, gridmap.FloorSEFill:
		if rough {
			cmds = append(cmds, diagonalFillRough(p, cs, floor, rng))
		} else {
			cmds = append(cmds, diagonalFillSmooth(p, cs, floor))
		}

	case gridmap.FloorSpiralStairs:
		cmds = append(cmds, spiralStairs(p, cs)...)

	case gridmap.FloorWater:
		cmds = append(cmds, water(p, cs)...)
	}
	return cmds
}

// diamond is the door drawn across a diagonal wall.
func diamond(p Point, cs int) Command {
	half := cs / 2
	cx, cy := p.X+half, p.Y+half
	off := int(float64(half) * diamondScaling)
	return polygon([]Point{
		{cx - off, cy},
		{cx, cy + off},
		{cx + off, cy},
		{cx, cy - off},
	}, outlineWhite)
}

func spiralStairs(p Point, cs int) []Command {
	r := cs / 2
	cx, cy := p.X+r, p.Y+r
	center := Point{cx, cy}

	// Screen angles grow clockwise; the gap straddles -π/2.
	cmds := []Command{
		arc(center, r, -math.Pi/2+spiralGap/2, 3*math.Pi/2-spiralGap/2, thinBlack),
		circle(center, int(float64(r)*spiralInner), solidBlack),
	}

	// Spokes run from one end of the arc to the other, counter-clockwise
	// in math orientation.
	start := math.Pi/2 + spiralGap/2
	step := (2*math.Pi - spiralGap) / spiralSpokes
	for i := 0; i <= spiralSpokes; i++ {
		angle := start + step*float64(i)
		outer := Point{
			cx + int(float64(r)*math.Cos(angle)),
			cy - int(float64(r)*math.Sin(angle)),
		}
		cmds = append(cmds, line(center, outer, thinBlack))
	}
	return cmds
}

// water hatches the cell with two families of diagonal lines.
func water(p Point, cs int) []Command {
	inc := max(cs/waterPerEdge, 1)
	var cmds []Command

	// Top-left to bottom-right
	for off := -cs; off <= cs; off += inc {
		from := p.Add(max(0, off), max(0, -off))
		to := p.Add(min(cs, cs+off), min(cs, cs-off))
		cmds = append(cmds, line(from, to, thinBlack))
	}

	// Top-right to bottom-left
	for off := 1; off <= 2*cs; off += inc {
		from := p.Add(min(cs, off), max(0, off-cs))
		to := p.Add(max(0, off-cs), min(cs, off))
		cmds = append(cmds, line(from, to, thinBlack))
	}
	return cmds
}

// edgeVertices returns the ends of one cell edge, ordered clockwise.
func edgeVertices(p Point, cs int, dir Direction) (Point, Point) {
	switch dir {
	case North:
		return p, p.Add(cs, 0)
	case South:
		return p.Add(cs, cs), p.Add(0, cs)
	case East:
		return p.Add(cs, 0), p.Add(cs, cs)
	default:
		return p.Add(0, cs), p
	}
}

// IsExposedEdge reports whether the dir edge of the filled cell c faces
// open space: an open neighbour, or a diagonal fill whose open side is
// turned toward c. Edges on the map border are never exposed.
func IsExposedEdge(v View, c gridmap.Coord, dir Direction) bool {
	n := dir.step(c)
	if !inside(v, n) {
		return false
	}
	f := v.Cell(n).Floor
	if f.IsOpenType() {
		return true
	}
	switch dir {
	case West:
		return f == gridmap.FloorNWFill || f == gridmap.FloorSWFill
	case East:
		return f == gridmap.FloorNEFill || f == gridmap.FloorSEFill
	case North:
		return f == gridmap.FloorNEFill || f == gridmap.FloorNWFill
	default:
		return f == gridmap.FloorSEFill || f == gridmap.FloorSWFill
	}
}

// fillQuadrant draws the triangle between one edge of a filled cell and
// its centre, roughened when the edge is exposed.
func fillQuadrant(v View, c gridmap.Coord, p Point, cs int, dir Direction, rng *rand.Rand) Command {
	center := p.Add(cs/2, cs/2)
	a, b := edgeVertices(p, cs, dir)
	if !IsExposedEdge(v, c, dir) {
		return polygon([]Point{a, b, center}, solidBlack)
	}
	shape := []Point{a}
	shape = append(shape, FractalEdge(rng, a, b, float64(cs)*DisplacementScale, FractalDepth)...)
	shape = append(shape, center)
	return polygon(shape, solidBlack)
}

func diagonalFillSmooth(p Point, cs int, floor gridmap.FloorType) Command {
	var tri []Point
	switch floor {
	case gridmap.FloorNWFill:
		tri = []Point{p, p.Add(cs, 0), p.Add(0, cs)}
	case gridmap.FloorNEFill:
		tri = []Point{p.Add(cs, 0), p.Add(cs, cs), p}
	case gridmap.FloorSWFill:
		tri = []Point{p.Add(0, cs), p, p.Add(cs, cs)}
	default:
		tri = []Point{p.Add(cs, cs), p.Add(0, cs), p.Add(cs, 0)}
	}
	return polygon(tri, solidBlack)
}

func diagonalFillRough(p Point, cs int, floor gridmap.FloorType, rng *rand.Rand) Command {
	// The rough line runs along the diagonal that splits the cell
	start, end := p.Add(cs, 0), p.Add(0, cs)
	if floor == gridmap.FloorNEFill || floor == gridmap.FloorSWFill {
		start, end = p, p.Add(cs, cs)
	}

	var corner Point
	switch floor {
	case gridmap.FloorNWFill:
		corner = p
	case gridmap.FloorNEFill:
		corner = p.Add(cs, 0)
	case gridmap.FloorSEFill:
		corner = p.Add(cs, cs)
	default:
		corner = p.Add(0, cs)
	}

	shape := []Point{start}
	shape = append(shape, FractalEdge(rng, start, end, float64(cs)*DisplacementScale, FractalDepth)...)
	shape = append(shape, corner)
	return polygon(shape, solidBlack)
}
