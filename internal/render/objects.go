package render

import (
	"math"

	"gridmapper/internal/gridmap"
)

const (
	pillarRadius    = 0.50
	statueRadius    = 0.70
	starInnerRatio  = 0.382 // golden ratio
	starPoints      = 5
	trapdoorRatio   = 0.80
	pitRatio        = 0.70
	rubbleFont      = 0.30
	rubbleCount     = 10
	xMarkFont       = 0.65
	stalagmiteSpoke = 4
)

// Object renders the overlay object of c, if any.
func Object(v View, c gridmap.Coord) []Command {
	cs := CellSize(v)
	p := origin(c, cs)
	half := cs / 2
	center := p.Add(half, half)

	switch v.Cell(c).Object {
	case gridmap.ObjectPillar:
		return []Command{circle(center, int(float64(half)*pillarRadius), solidBlack)}

	case gridmap.ObjectStatue:
		r := int(float64(half) * statueRadius)
		return []Command{
			circle(center, r, outlineWhite),
			polygon(star(center, r, int(float64(r)*starInnerRatio)), solidBlack),
		}

	case gridmap.ObjectTrapdoor:
		size := int(float64(cs) * trapdoorRatio)
		corner := p.Add((cs-size)/2, (cs-size)/2)
		fh := int(float64(size) * trapdoorRatio)
		at := corner.Add(size/2, size/2+int(float64(fh)*0.43))
		return []Command{
			rect(corner, corner.Add(size, size), thinBlack),
			glyph("T", at, 0.5, 0, fontStyle(fh, true)),
		}

	case gridmap.ObjectPit:
		size := int(float64(cs) * pitRatio)
		a := p.Add((cs-size)/2, (cs-size)/2)
		b := a.Add(size, size)
		return []Command{
			rect(a, b, thinBlack),
			line(a, b, thinBlack),
			line(Point{b.X, a.Y}, Point{a.X, b.Y}, thinBlack),
		}

	case gridmap.ObjectRubble:
		return rubble(c, p, cs)

	case gridmap.ObjectStalagmite:
		return stalagmite(c, p, cs)

	case gridmap.ObjectXMark:
		fh := int(float64(cs) * xMarkFont)
		return []Command{glyph("X", center, 0.5, 0.5, fontStyle(fh, true))}
	}
	return nil
}

// star returns the ten vertices of a five-pointed star, first point up.
func star(center Point, outer, inner int) []Point {
	pts := make([]Point, 0, 2*starPoints)
	step := 2 * math.Pi / (2 * starPoints)
	for i := 0; i < 2*starPoints; i++ {
		angle := -math.Pi/2 + float64(i)*step
		r := outer
		if i%2 == 1 {
			r = inner
		}
		pts = append(pts, Point{
			center.X + int(float64(r)*math.Cos(angle)),
			center.Y + int(float64(r)*math.Sin(angle)),
		})
	}
	return pts
}

// rubble scatters small "x" marks over the cell. Glyph extent is taken as
// half the font size wide and the font size tall.
func rubble(c gridmap.Coord, p Point, cs int) []Command {
	rng := cellRand(c, objectStream)
	fh := int(float64(cs) * rubbleFont)
	st := fontStyle(fh, true)
	cmds := make([]Command, 0, rubbleCount)
	for i := 0; i < rubbleCount; i++ {
		pctX, pctY := rng.IntN(100), rng.IntN(100)
		at := p.Add((cs-fh/2)*pctX/100, (cs-fh)*pctY/100)
		cmds = append(cmds, glyph("x", at, 0, 1, st))
	}
	return cmds
}

func stalagmite(c gridmap.Coord, p Point, cs int) []Command {
	rng := cellRand(c, objectStream)
	fraction := 0.30 + 0.01*float64(rng.IntN(20))
	diameter := int(float64(cs) * fraction)
	r := diameter / 2

	// Keep the whole circle inside the cell
	room := cs - diameter
	pctX, pctY := rng.IntN(100), rng.IntN(100)
	center := p.Add(pctX*room/100+r, pctY*room/100+r)

	cmds := []Command{circle(center, r, outlineWhite)}
	for i := 0; i < stalagmiteSpoke; i++ {
		angle := float64(i) * 2 * math.Pi / stalagmiteSpoke
		cos, sin := math.Cos(angle), math.Sin(angle)
		outer := center.Add(int(float64(r)*cos), int(float64(r)*sin))
		inner := center.Add(int(float64(r)/2*cos), int(float64(r)/2*sin))
		cmds = append(cmds, line(outer, inner, thinBlack))
	}
	return cmds
}
