package gridmap

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// populated returns a grid that uses every legal enum value somewhere.
func populated(t *testing.T) *Grid {
	t.Helper()
	g := mustGrid(t, 5, 7)
	floors, walls, objects := FloorTypes(), WallTypes(), ObjectTypes()
	i := 0
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			c := Coord{x, y}
			g.SetFloor(c, floors[i%len(floors)])
			g.SetNorthWall(c, walls[i%len(walls)])
			g.SetWestWall(c, walls[(i+2)%len(walls)])
			g.SetObject(c, objects[i%len(objects)])
			i++
		}
	}
	g.SetCellSize(33)
	g.ToggleRoughEdges()
	g.ToggleHideGrid()
	return g
}

func TestSerializeRoundTrip(t *testing.T) {
	g := populated(t)
	data := g.Serialize()

	loaded, err := Load(data)
	require.NoError(t, err)
	require.True(t, loaded.Loaded())

	assert.Equal(t, g.Width(), loaded.Width())
	assert.Equal(t, g.Height(), loaded.Height())
	assert.Equal(t, g.Display(), loaded.Display())
	assert.False(t, loaded.Changed())
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			c := Coord{x, y}
			assert.Equal(t, g.Cell(c), loaded.Cell(c), "cell %v", c)
		}
	}
	assert.Equal(t, data, loaded.Serialize(), "bit-for-bit")
}

func TestSerializeLayout(t *testing.T) {
	g := mustGrid(t, 2, 3)
	g.SetFloor(Coord{0, 1}, FloorWater)
	g.SetObject(Coord{1, 0}, ObjectXMark)
	g.SetNorthWall(Coord{1, 2}, WallSecretDoor)
	g.SetWestWall(Coord{1, 2}, WallDoubleDoor)

	data := g.Serialize()
	require.Len(t, data, 16+2*3*4)

	assert.Equal(t, []byte{'G', 'M', 1, 0}, data[:4])
	assert.Equal(t, uint32(g.Display()), binary.LittleEndian.Uint32(data[4:8]))
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(data[8:12]))
	assert.Equal(t, uint32(3), binary.LittleEndian.Uint32(data[12:16]))

	// Column-major: (0,0) (0,1) (0,2) (1,0) (1,1) (1,2)
	cells := data[16:]
	assert.Equal(t, []byte{byte(FloorWater), 0, 0, 0}, cells[4:8])
	assert.Equal(t, []byte{0, 0, 0, byte(ObjectXMark)}, cells[12:16])
	assert.Equal(t, []byte{0, byte(WallSecretDoor), byte(WallDoubleDoor), 0}, cells[20:24])
}

func TestEnumValuesArePositional(t *testing.T) {
	assert.Equal(t, FloorType(0), FloorFill)
	assert.Equal(t, FloorType(1), FloorOpen)
	assert.Equal(t, FloorType(5), FloorNWWall)
	assert.Equal(t, FloorType(8), FloorNWFill)
	assert.Equal(t, FloorType(13), FloorWater)
	assert.Equal(t, WallType(4), WallSecretDoor)
	assert.Equal(t, ObjectType(7), ObjectXMark)
}

func TestLoadIgnoresVersionBytes(t *testing.T) {
	data := populated(t).Serialize()
	data[2], data[3] = 9, 9

	g, err := Load(data)
	require.NoError(t, err)
	assert.Equal(t, 5, g.Width())
}

func TestLoadKeepsUnknownEnumBytes(t *testing.T) {
	data := mustGrid(t, 1, 1).Serialize()
	data[16] = 250

	g, err := Load(data)
	require.NoError(t, err)
	assert.Equal(t, FloorType(250), g.Floor(Coord{0, 0}))
	assert.Equal(t, data, g.Serialize())
}

func TestLoadFailures(t *testing.T) {
	good := populated(t).Serialize()
	badMagic := append([]byte(nil), good...)
	badMagic[0] = 'X'
	huge := append([]byte(nil), good[:16]...)
	binary.LittleEndian.PutUint32(huge[8:12], MaxDimension+1)

	cases := []struct {
		name string
		data []byte
		err  error
	}{
		{"empty", nil, ErrTruncated},
		{"three bytes", []byte("GM\x01"), ErrTruncated},
		{"short garbage", []byte("PNG"), ErrBadMagic},
		{"bad magic", badMagic, ErrBadMagic},
		{"header only", good[:16], ErrTruncated},
		{"missing last cell", good[:len(good)-1], ErrTruncated},
		{"oversized", huge, ErrTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Load(tc.data)
			assert.ErrorIs(t, err, tc.err)
			require.NotNil(t, g)
			assert.False(t, g.Loaded())
			assert.Zero(t, g.Width())
			assert.Zero(t, g.Height())
		})
	}
}

func TestBinaryMarshalerAndWriteTo(t *testing.T) {
	g := populated(t)

	data, err := g.MarshalBinary()
	require.NoError(t, err)

	var out Grid
	require.NoError(t, out.UnmarshalBinary(data))
	assert.Equal(t, g.Serialize(), out.Serialize())

	var buf bytes.Buffer
	n, err := g.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), n)
	assert.Equal(t, data, buf.Bytes())

	assert.Error(t, out.UnmarshalBinary([]byte("GM")))
	assert.False(t, out.Loaded())
}
