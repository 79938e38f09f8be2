package main

import (
	"gridmapper/internal/gridmap"
)

// The text map draws every cell as a blockSize x blockSize character
// block:
//
//	corner     north edge
//	west edge  content
//
// A window reaching the east or south side of the map gets one extra
// column or row to close the outline.

const (
	rockGlyph    = '█'
	unknownGlyph = '?'
)

var floorGlyphs = map[gridmap.FloorType]rune{
	gridmap.FloorFill:             rockGlyph,
	gridmap.FloorOpen:             ' ',
	gridmap.FloorNorthSouthStairs: '≡',
	gridmap.FloorWestEastStairs:   '‖',
	gridmap.FloorNEWall:           '╱',
	gridmap.FloorNWWall:           '╲',
	gridmap.FloorNEDoor:           '/',
	gridmap.FloorNWDoor:           '\\',
	gridmap.FloorNWFill:           '◤',
	gridmap.FloorNEFill:           '◥',
	gridmap.FloorSWFill:           '◣',
	gridmap.FloorSEFill:           '◢',
	gridmap.FloorSpiralStairs:     '@',
	gridmap.FloorWater:            '~',
}

var objectGlyphs = map[gridmap.ObjectType]rune{
	gridmap.ObjectPillar:     'o',
	gridmap.ObjectStatue:     '&',
	gridmap.ObjectTrapdoor:   'T',
	gridmap.ObjectPit:        'P',
	gridmap.ObjectRubble:     '%',
	gridmap.ObjectStalagmite: '^',
	gridmap.ObjectXMark:      'X',
}

var northWallGlyphs = map[gridmap.WallType]rune{
	gridmap.WallFill:       '─',
	gridmap.WallSingleDoor: '┄',
	gridmap.WallDoubleDoor: '═',
	gridmap.WallSecretDoor: 'S',
}

var westWallGlyphs = map[gridmap.WallType]rune{
	gridmap.WallFill:       '│',
	gridmap.WallSingleDoor: '┆',
	gridmap.WallDoubleDoor: '║',
	gridmap.WallSecretDoor: 'S',
}

func contentGlyph(g *gridmap.Grid, c gridmap.Coord) rune {
	cell := g.Cell(c)
	if cell.Object != gridmap.ObjectNone {
		if r, ok := objectGlyphs[cell.Object]; ok {
			return r
		}
		return unknownGlyph
	}
	if r, ok := floorGlyphs[cell.Floor]; ok {
		return r
	}
	return unknownGlyph
}

// Outside the map counts as solid rock.
func solidAt(g *gridmap.Grid, c gridmap.Coord) bool {
	return !g.Contains(c) || g.Floor(c) == gridmap.FloorFill
}

func northEdgeGlyph(g *gridmap.Grid, c gridmap.Coord) rune {
	if g.Contains(c) {
		wall := g.NorthWall(c)
		if wall != gridmap.WallOpen {
			if r, ok := northWallGlyphs[wall]; ok {
				return r
			}
			return unknownGlyph
		}
	}
	self := !g.Contains(c) || g.Floor(c).SolidNorth()
	north := c.North()
	other := !g.Contains(north) || g.Floor(north).SolidSouth()
	if self && other {
		return rockGlyph
	}
	return ' '
}

func westEdgeGlyph(g *gridmap.Grid, c gridmap.Coord) rune {
	if g.Contains(c) {
		wall := g.WestWall(c)
		if wall != gridmap.WallOpen {
			if r, ok := westWallGlyphs[wall]; ok {
				return r
			}
			return unknownGlyph
		}
	}
	self := !g.Contains(c) || g.Floor(c).SolidWest()
	west := c.West()
	other := !g.Contains(west) || g.Floor(west).SolidEast()
	if self && other {
		return rockGlyph
	}
	return ' '
}

// cornerGlyph draws the grid point at the north-west corner of c.
func cornerGlyph(g *gridmap.Grid, c gridmap.Coord) rune {
	nw := gridmap.Coord{X: c.X - 1, Y: c.Y - 1}
	for _, wall := range []struct {
		at    gridmap.Coord
		north bool
	}{
		{c, true}, {c.West(), true}, {c, false}, {c.North(), false},
	} {
		if !g.Contains(wall.at) {
			continue
		}
		if wall.north && g.NorthWall(wall.at) != gridmap.WallOpen {
			return '+'
		}
		if !wall.north && g.WestWall(wall.at) != gridmap.WallOpen {
			return '+'
		}
	}
	if solidAt(g, c) && solidAt(g, c.West()) && solidAt(g, c.North()) && solidAt(g, nw) {
		return rockGlyph
	}
	if g.Display().HideGrid() {
		return ' '
	}
	return '·'
}

// textMapBlocks renders the cells in [x0, x0+cols) x [y0, y0+rows) as rune
// rows, clipped to the map.
func textMapBlocks(g *gridmap.Grid, x0, y0, cols, rows int) [][]rune {
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	x1 := min(x0+cols, g.Width())
	y1 := min(y0+rows, g.Height())
	if x1 <= x0 || y1 <= y0 {
		return nil
	}

	closeEast := x1 == g.Width()
	closeSouth := y1 == g.Height()
	lineLen := (x1 - x0) * blockSize
	if closeEast {
		lineLen++
	}

	var out [][]rune
	for y := y0; y < y1; y++ {
		top := make([]rune, 0, lineLen)
		mid := make([]rune, 0, lineLen)
		for x := x0; x < x1; x++ {
			c := gridmap.Coord{X: x, Y: y}
			top = append(top, cornerGlyph(g, c), northEdgeGlyph(g, c))
			mid = append(mid, westEdgeGlyph(g, c), contentGlyph(g, c))
		}
		if closeEast {
			c := gridmap.Coord{X: x1, Y: y}
			top = append(top, cornerGlyph(g, c))
			mid = append(mid, westEdgeGlyph(g, c))
		}
		out = append(out, top, mid)
	}
	if closeSouth {
		bottom := make([]rune, 0, lineLen)
		for x := x0; x < x1; x++ {
			c := gridmap.Coord{X: x, Y: y1}
			bottom = append(bottom, cornerGlyph(g, c), northEdgeGlyph(g, c))
		}
		if closeEast {
			bottom = append(bottom, cornerGlyph(g, gridmap.Coord{X: x1, Y: y1}))
		}
		out = append(out, bottom)
	}
	return out
}

// textMap renders the whole map, one string per line.
func textMap(g *gridmap.Grid) []string {
	blocks := textMapBlocks(g, 0, 0, g.Width(), g.Height())
	lines := make([]string, len(blocks))
	for i, row := range blocks {
		lines[i] = string(row)
	}
	return lines
}
