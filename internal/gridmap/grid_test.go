package gridmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, w, h int) *Grid {
	t.Helper()
	g, err := New(w, h)
	require.NoError(t, err)
	return g
}

func TestNewGridIsSolidRock(t *testing.T) {
	g := mustGrid(t, 4, 3)

	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.True(t, g.Loaded())
	assert.False(t, g.Changed())
	assert.Equal(t, CellSizeDefault, g.CellSize())
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			assert.Equal(t, Cell{Floor: FloorFill}, g.Cell(Coord{x, y}))
		}
	}
}

func TestNewGridRejectsBadSize(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {MaxDimension + 1, 1}} {
		_, err := New(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidSize, "dims %v", dims)
	}
}

func TestSettersMarkChanged(t *testing.T) {
	c := Coord{1, 1}
	setters := map[string]func(g *Grid){
		"floor":  func(g *Grid) { g.SetFloor(c, FloorOpen) },
		"north":  func(g *Grid) { g.SetNorthWall(c, WallSingleDoor) },
		"west":   func(g *Grid) { g.SetWestWall(c, WallSecretDoor) },
		"object": func(g *Grid) { g.SetObject(c, ObjectPit) },
		"clear":  func(g *Grid) { g.Clear(FloorOpen) },
	}
	for name, set := range setters {
		t.Run(name, func(t *testing.T) {
			g := mustGrid(t, 3, 3)
			set(g)
			assert.True(t, g.Changed())
			g.MarkSaved()
			assert.False(t, g.Changed())
		})
	}
}

func TestOutOfRangeAccessPanics(t *testing.T) {
	g := mustGrid(t, 3, 2)
	assert.Panics(t, func() { g.Floor(Coord{3, 0}) })
	assert.Panics(t, func() { g.Floor(Coord{0, 2}) })
	assert.Panics(t, func() { g.SetObject(Coord{-1, 0}, ObjectPillar) })
	assert.NotPanics(t, func() { g.Floor(Coord{2, 1}) })
}

func TestCellsAreIndependent(t *testing.T) {
	g := mustGrid(t, 3, 4)
	g.SetFloor(Coord{2, 0}, FloorWater)

	for x := 0; x < 3; x++ {
		for y := 0; y < 4; y++ {
			if x == 2 && y == 0 {
				continue
			}
			assert.Equal(t, FloorFill, g.Floor(Coord{x, y}), "cell %d,%d", x, y)
		}
	}
}

func TestClearEntireGrid(t *testing.T) {
	g := mustGrid(t, 3, 3)
	g.SetFloor(Coord{1, 1}, FloorOpen)
	g.SetNorthWall(Coord{1, 1}, WallFill)
	g.SetObject(Coord{1, 1}, ObjectStatue)

	g.Clear(FloorOpen)

	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			assert.Equal(t, Cell{Floor: FloorOpen}, g.Cell(Coord{x, y}))
		}
	}
}

func TestDisplaySettings(t *testing.T) {
	g := mustGrid(t, 2, 2)

	g.SetCellSize(1)
	assert.Equal(t, CellSizeMin, g.CellSize())
	g.SetCellSize(5000)
	assert.Equal(t, CellSizeMax, g.CellSize())
	g.SetCellSize(32)
	assert.Equal(t, 32, g.CellSize())
	assert.Equal(t, 64, g.WidthPixels())

	assert.False(t, g.Display().RoughEdges())
	g.ToggleRoughEdges()
	assert.True(t, g.Display().RoughEdges())
	assert.Equal(t, 32, g.CellSize())

	assert.False(t, g.Display().HideGrid())
	g.ToggleHideGrid()
	assert.True(t, g.Display().HideGrid())
	g.ToggleRoughEdges()
	assert.False(t, g.Display().RoughEdges())
	assert.True(t, g.Display().HideGrid())
}

func TestDisplayConfigBitLayout(t *testing.T) {
	d := DisplayConfig(0).WithCellSize(40).WithRoughEdges(true).WithHideGrid(true)
	assert.Equal(t, uint32(40|1<<30|1<<31), uint32(d))

	reserved := DisplayConfig(0x00ABC000).WithCellSize(20)
	assert.Equal(t, uint32(0x00ABC000|20), uint32(reserved), "reserved bits survive")
}

func TestFillCellSideEffects(t *testing.T) {
	g := mustGrid(t, 3, 3)
	g.Clear(FloorOpen)
	center := Coord{1, 1}
	g.SetObject(center, ObjectStatue)
	g.SetNorthWall(center, WallSingleDoor)
	g.SetWestWall(center, WallFill)
	g.SetWestWall(center.East(), WallDoubleDoor)
	g.SetNorthWall(center.South(), WallSecretDoor)
	g.SetNorthWall(Coord{2, 2}, WallFill)

	touched := g.FillCell(center)

	assert.Equal(t, Cell{Floor: FloorFill}, g.Cell(center))
	assert.Equal(t, WallOpen, g.WestWall(center.East()))
	assert.Equal(t, WallOpen, g.NorthWall(center.South()))
	assert.Equal(t, WallFill, g.NorthWall(Coord{2, 2}), "unrelated wall kept")
	assert.ElementsMatch(t,
		[]Coord{center, center.East(), center.South(), center.West(), center.North()},
		touched)
	assert.Equal(t, center, touched[0])

	for _, c := range touched {
		if g.NorthWall(c) != WallOpen {
			assert.True(t, g.CanBuildNorthWall(c), "north wall at %v", c)
		}
		if g.WestWall(c) != WallOpen {
			assert.True(t, g.CanBuildWestWall(c), "west wall at %v", c)
		}
	}
}

func TestFillCellOnBorder(t *testing.T) {
	g := mustGrid(t, 2, 3)
	g.Clear(FloorOpen)

	touched := g.FillCell(Coord{1, 2})

	assert.ElementsMatch(t, []Coord{{1, 2}, {0, 2}, {1, 1}}, touched)
}

func TestDropIllegalWalls(t *testing.T) {
	g := mustGrid(t, 3, 3)
	g.Clear(FloorOpen)
	c := Coord{1, 1}
	g.SetNorthWall(c, WallFill)
	g.SetWestWall(c, WallFill)
	g.SetWestWall(c.East(), WallFill)
	g.SetNorthWall(c.South(), WallFill)

	g.SetFloor(c, FloorNWFill)
	assert.True(t, g.DropIllegalWalls(c))

	assert.Equal(t, WallOpen, g.NorthWall(c))
	assert.Equal(t, WallOpen, g.WestWall(c))
	assert.Equal(t, WallFill, g.WestWall(c.East()), "NW fill is open on its east edge")
	assert.Equal(t, WallFill, g.NorthWall(c.South()), "NW fill is open on its south edge")
	assert.False(t, g.DropIllegalWalls(c))
}

func TestBorderWallsNeverBuildable(t *testing.T) {
	g := mustGrid(t, 3, 3)
	g.Clear(FloorOpen)
	for i := 0; i < 3; i++ {
		assert.False(t, g.CanBuildNorthWall(Coord{i, 0}))
		assert.False(t, g.CanBuildWestWall(Coord{0, i}))
	}
	assert.True(t, g.CanBuildNorthWall(Coord{1, 1}))
	assert.True(t, g.CanBuildWestWall(Coord{1, 1}))
}

// Exhaustive check of the wall predicates against every pair of floors.
func TestWallPredicatesAllFloorPairs(t *testing.T) {
	blocksNorthOfSelf := map[FloorType]bool{FloorFill: true, FloorNWFill: true, FloorNEFill: true}
	blocksSouthOfNeighbour := map[FloorType]bool{FloorFill: true, FloorSWFill: true, FloorSEFill: true}
	blocksWestOfSelf := map[FloorType]bool{FloorFill: true, FloorNWFill: true, FloorSWFill: true}
	blocksEastOfNeighbour := map[FloorType]bool{FloorFill: true, FloorNEFill: true, FloorSEFill: true}

	floors := FloorTypes()
	require.Len(t, floors, 14)

	for _, self := range floors {
		for _, neighbour := range floors {
			g := mustGrid(t, 2, 2)
			g.SetFloor(Coord{1, 1}, self)
			g.SetFloor(Coord{1, 0}, neighbour)
			g.SetFloor(Coord{0, 1}, neighbour)

			wantNorth := !blocksNorthOfSelf[self] && !blocksSouthOfNeighbour[neighbour]
			wantWest := !blocksWestOfSelf[self] && !blocksEastOfNeighbour[neighbour]
			assert.Equal(t, wantNorth, g.CanBuildNorthWall(Coord{1, 1}),
				"north: self=%v neighbour=%v", self, neighbour)
			assert.Equal(t, wantWest, g.CanBuildWestWall(Coord{1, 1}),
				"west: self=%v neighbour=%v", self, neighbour)
		}
	}
}

func TestOpeningCenterOfSolidGrid(t *testing.T) {
	g := mustGrid(t, 3, 3)
	center := Coord{1, 1}

	g.SetFloor(center, FloorOpen)
	assert.False(t, g.CanBuildNorthWall(center))
	assert.False(t, g.CanBuildWestWall(center))

	g.SetFloor(center.North(), FloorOpen)
	assert.True(t, g.CanBuildNorthWall(center))
	assert.False(t, g.CanBuildWestWall(center))
}

func TestFloorClassification(t *testing.T) {
	for _, f := range FloorTypes() {
		assert.Equal(t, f.IsOpenType() || f.IsDiagonalFill(), f.IsSemiOpen(), f.String())
		assert.NotEqual(t, f.IsOpenType(), f.IsFillType(), f.String())
	}
	assert.False(t, FloorType(200).IsSemiOpen())
	assert.False(t, FloorType(200).Valid())
	assert.Equal(t, "floor(200)", FloorType(200).String())
}
