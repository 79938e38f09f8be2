package gridmap

import (
	"errors"
	"fmt"
)

// MaxDimension bounds the width and height of a grid.
const MaxDimension = 1 << 14

var ErrInvalidSize = errors.New("invalid grid size")

// Grid is a width x height map of cells plus its display configuration.
// Cells are stored column-major, matching the file layout.
//
// A Grid is not safe for concurrent use; one editing session owns it.
type Grid struct {
	width   int
	height  int
	cells   []Cell
	display DisplayConfig
	changed bool
	loaded  bool
}

// New creates a grid with every cell solid rock.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	g := &Grid{
		width:   width,
		height:  height,
		cells:   make([]Cell, width*height),
		display: DefaultDisplay(),
		loaded:  true,
	}
	// FloorFill and WallOpen are both zero, so the fresh slice is already
	// an all-rock map.
	return g, nil
}

func (g *Grid) Width() int { return g.width }
func (g *Grid) Height() int { return g.height }

// Loaded is false for a grid returned from a failed Load.
func (g *Grid) Loaded() bool { return g.loaded }

// Changed reports whether the grid was modified since creation, load or
// the last MarkSaved.
func (g *Grid) Changed() bool { return g.changed }

func (g *Grid) MarkSaved() { g.changed = false }

// Contains reports whether c lies inside the grid.
func (g *Grid) Contains(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.width && c.Y < g.height
}

func (g *Grid) index(c Coord) int {
	if !g.Contains(c) {
		panic(fmt.Sprintf("gridmap: coordinate %v outside %dx%d grid", c, g.width, g.height))
	}
	return c.X*g.height + c.Y
}

func (g *Grid) Cell(c Coord) Cell { return g.cells[g.index(c)] }
func (g *Grid) Floor(c Coord) FloorType { return g.cells[g.index(c)].Floor }
func (g *Grid) NorthWall(c Coord) WallType { return g.cells[g.index(c)].NorthWall }
func (g *Grid) WestWall(c Coord) WallType { return g.cells[g.index(c)].WestWall }
func (g *Grid) Object(c Coord) ObjectType { return g.cells[g.index(c)].Object }
func (g *Grid) Display() DisplayConfig { return g.display }
func (g *Grid) CellSize() int { return g.display.CellSize() }
func (g *Grid) WidthPixels() int { return g.width * g.CellSize() }
func (g *Grid) HeightPixels() int { return g.height * g.CellSize() }

func (g *Grid) SetFloor(c Coord, f FloorType) {
	g.cells[g.index(c)].Floor = f
	g.changed = true
}

func (g *Grid) SetNorthWall(c Coord, w WallType) {
	g.cells[g.index(c)].NorthWall = w
	g.changed = true
}

func (g *Grid) SetWestWall(c Coord, w WallType) {
	g.cells[g.index(c)].WestWall = w
	g.changed = true
}

func (g *Grid) SetObject(c Coord, o ObjectType) {
	g.cells[g.index(c)].Object = o
	g.changed = true
}

// SetCellSize sets the pixel size of a cell, clamped to the legal range.
func (g *Grid) SetCellSize(size int) {
	g.display = g.display.WithCellSize(size)
}

func (g *Grid) ToggleRoughEdges() {
	g.display = g.display.WithRoughEdges(!g.display.RoughEdges())
}

func (g *Grid) ToggleHideGrid() {
	g.display = g.display.WithHideGrid(!g.display.HideGrid())
}

// CanBuildNorthWall reports whether a wall may stand on the north edge of
// c. Not on the top border, and not where rock on either side touches the
// edge.
func (g *Grid) CanBuildNorthWall(c Coord) bool {
	if c.Y == 0 {
		return false
	}
	if g.Floor(c.North()).SolidSouth() {
		return false
	}
	return !g.Floor(c).SolidNorth()
}

// CanBuildWestWall is the west-edge counterpart of CanBuildNorthWall.
func (g *Grid) CanBuildWestWall(c Coord) bool {
	if c.X == 0 {
		return false
	}
	if g.Floor(c.West()).SolidEast() {
		return false
	}
	return !g.Floor(c).SolidWest()
}

// FillCell turns c into solid rock: the object is removed and every wall
// on the cell's four edges is opened. It returns the cells whose drawing
// changed, c first.
func (g *Grid) FillCell(c Coord) []Coord {
	i := g.index(c)
	g.cells[i] = Cell{Floor: FloorFill}
	g.changed = true

	touched := []Coord{c}
	if e := c.East(); g.Contains(e) {
		g.cells[g.index(e)].WestWall = WallOpen
		touched = append(touched, e)
	}
	if s := c.South(); g.Contains(s) {
		g.cells[g.index(s)].NorthWall = WallOpen
		touched = append(touched, s)
	}
	if w := c.West(); g.Contains(w) {
		touched = append(touched, w)
	}
	if n := c.North(); g.Contains(n) {
		touched = append(touched, n)
	}
	return touched
}

// DropIllegalWalls opens any wall on the four edges of c that no longer
// satisfies the build predicates. It reports whether anything changed.
func (g *Grid) DropIllegalWalls(c Coord) bool {
	dropped := false
	if g.NorthWall(c) != WallOpen && !g.CanBuildNorthWall(c) {
		g.SetNorthWall(c, WallOpen)
		dropped = true
	}
	if g.WestWall(c) != WallOpen && !g.CanBuildWestWall(c) {
		g.SetWestWall(c, WallOpen)
		dropped = true
	}
	if e := c.East(); g.Contains(e) && g.WestWall(e) != WallOpen && !g.CanBuildWestWall(e) {
		g.SetWestWall(e, WallOpen)
		dropped = true
	}
	if s := c.South(); g.Contains(s) && g.NorthWall(s) != WallOpen && !g.CanBuildNorthWall(s) {
		g.SetNorthWall(s, WallOpen)
		dropped = true
	}
	return dropped
}

// Clear resets every cell to the given floor with open walls and no object.
func (g *Grid) Clear(floor FloorType) {
	for i := range g.cells {
		g.cells[i] = Cell{Floor: floor}
	}
	g.changed = true
}
