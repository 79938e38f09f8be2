package render

import "gridmapper/internal/gridmap"

// View is the read-only part of a grid the renderer needs.
// *gridmap.Grid satisfies it.
type View interface {
	Width() int
	Height() int
	Display() gridmap.DisplayConfig
	Cell(c gridmap.Coord) gridmap.Cell
}

// CellSize is the pixel size cells are drawn at. Files may carry sizes
// below the editing minimum; those draw at the minimum.
func CellSize(v View) int {
	return max(v.Display().CellSize(), gridmap.CellSizeMin)
}

// PixelSize is the extent of the whole map in pixels.
func PixelSize(v View) (width, height int) {
	cs := CellSize(v)
	return v.Width() * cs, v.Height() * cs
}

// CellAt maps a pixel position to the cell under it.
func CellAt(v View, x, y int) (gridmap.Coord, bool) {
	if x < 0 || y < 0 {
		return gridmap.Coord{}, false
	}
	cs := CellSize(v)
	c := gridmap.Coord{X: x / cs, Y: y / cs}
	return c, c.X < v.Width() && c.Y < v.Height()
}

func origin(c gridmap.Coord, cs int) Point {
	return Point{c.X * cs, c.Y * cs}
}

func inside(v View, c gridmap.Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < v.Width() && c.Y < v.Height()
}

// Cell renders everything a cell owns: floor, object, north wall and west
// wall, in that order.
func Cell(v View, c gridmap.Coord) []Command {
	cmds := Floor(v, c)
	cmds = append(cmds, Object(v, c)...)
	cmds = append(cmds, NorthWall(v, c)...)
	return append(cmds, WestWall(v, c)...)
}
