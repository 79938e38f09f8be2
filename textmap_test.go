package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridmapper/internal/gridmap"
)

func openGrid(t *testing.T, w, h int) *gridmap.Grid {
	t.Helper()
	g, err := gridmap.New(w, h)
	require.NoError(t, err)
	g.Clear(gridmap.FloorOpen)
	return g
}

func TestTextMapSolidRock(t *testing.T) {
	g, err := gridmap.New(2, 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"█████", "█████", "█████"}, textMap(g))
}

func TestTextMapFeatures(t *testing.T) {
	g := openGrid(t, 3, 3)
	g.SetFloor(gridmap.Coord{X: 0, Y: 0}, gridmap.FloorWater)
	g.SetNorthWall(gridmap.Coord{X: 1, Y: 1}, gridmap.WallFill)
	g.SetWestWall(gridmap.Coord{X: 1, Y: 1}, gridmap.WallSecretDoor)
	g.SetObject(gridmap.Coord{X: 2, Y: 2}, gridmap.ObjectPillar)

	lines := textMap(g)
	require.Len(t, lines, 7)
	assert.Equal(t, "· · · ·", lines[0])
	assert.Equal(t, " ~     ", lines[1])
	assert.Equal(t, "· +─+ ·", lines[2])
	assert.Equal(t, "  S    ", lines[3])
	assert.Equal(t, "· + · ·", lines[4])
	assert.Equal(t, "     o ", lines[5])
	assert.Equal(t, "· · · ·", lines[6])
}

func TestTextMapHiddenGrid(t *testing.T) {
	g := openGrid(t, 1, 1)
	g.ToggleHideGrid()

	assert.Equal(t, []string{"   ", "   ", "   "}, textMap(g))
}

func TestTextMapRockMeetsOpenFloor(t *testing.T) {
	g, err := gridmap.New(2, 1)
	require.NoError(t, err)
	g.SetFloor(gridmap.Coord{X: 1, Y: 0}, gridmap.FloorOpen)

	lines := textMap(g)
	require.Len(t, lines, 3)
	assert.Equal(t, "██· ·", lines[0])
	assert.Equal(t, "██   ", lines[1])
}

func TestTextMapWindow(t *testing.T) {
	g := openGrid(t, 3, 3)

	inner := textMapBlocks(g, 1, 1, 1, 1)
	require.Len(t, inner, 2, "no closing row away from the south edge")
	assert.Len(t, inner[0], 2, "no closing column away from the east edge")

	corner := textMapBlocks(g, 2, 2, 5, 5)
	require.Len(t, corner, 3)
	assert.Len(t, corner[0], 3)

	assert.Nil(t, textMapBlocks(g, 3, 0, 2, 2))
}

func TestContentGlyphPrefersObject(t *testing.T) {
	g := openGrid(t, 1, 1)
	c := gridmap.Coord{X: 0, Y: 0}
	g.SetFloor(c, gridmap.FloorSpiralStairs)
	assert.Equal(t, '@', contentGlyph(g, c))

	g.SetObject(c, gridmap.ObjectXMark)
	assert.Equal(t, 'X', contentGlyph(g, c))
}

func TestEveryFeatureHasAGlyph(t *testing.T) {
	for _, f := range gridmap.FloorTypes() {
		_, ok := floorGlyphs[f]
		assert.True(t, ok, f.String())
	}
	for _, o := range gridmap.ObjectTypes() {
		if o == gridmap.ObjectNone {
			continue
		}
		_, ok := objectGlyphs[o]
		assert.True(t, ok, o.String())
	}
	for _, w := range gridmap.WallTypes() {
		if w == gridmap.WallOpen {
			continue
		}
		_, north := northWallGlyphs[w]
		_, west := westWallGlyphs[w]
		assert.True(t, north && west, w.String())
	}
}
