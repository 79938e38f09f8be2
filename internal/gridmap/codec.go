package gridmap

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

/*
Map file layout, little-endian:

	offset 0   4 bytes  magic "GM" + 2 reserved version bytes
	offset 4   4 bytes  display config
	offset 8   4 bytes  width in cells
	offset 12  4 bytes  height in cells
	offset 16  width*height cell records of 4 bytes
	           (floor, north wall, west wall, object), column-major
*/
const (
	headerSize     = 16
	cellRecordSize = 4
)

// fileMagic is what Serialize writes; Load only checks the first two bytes.
var fileMagic = [4]byte{'G', 'M', 1, 0}

var (
	ErrBadMagic  = errors.New("not a map file")
	ErrTruncated = errors.New("map file truncated")
	ErrTooLarge  = errors.New("map dimensions too large")
)

// Load parses a map file image. On failure it returns an unloaded, empty
// grid (zero width and height) together with the error, never a partially
// filled one.
func Load(data []byte) (*Grid, error) {
	g, err := decode(data)
	if err != nil {
		return &Grid{}, err
	}
	return g, nil
}

func decode(data []byte) (*Grid, error) {
	if len(data) < headerSize {
		if len(data) >= 2 && (data[0] != 'G' || data[1] != 'M') {
			return nil, ErrBadMagic
		}
		return nil, fmt.Errorf("%w: %d byte header", ErrTruncated, len(data))
	}
	if data[0] != 'G' || data[1] != 'M' {
		return nil, ErrBadMagic
	}

	display := DisplayConfig(binary.LittleEndian.Uint32(data[4:8]))
	width := binary.LittleEndian.Uint32(data[8:12])
	height := binary.LittleEndian.Uint32(data[12:16])
	if width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height)
	}

	count := int(width) * int(height)
	body := data[headerSize:]
	if len(body) < count*cellRecordSize {
		return nil, fmt.Errorf("%w: want %d cells, have %d bytes",
			ErrTruncated, count, len(body))
	}

	g := &Grid{
		width:   int(width),
		height:  int(height),
		cells:   make([]Cell, count),
		display: display,
		loaded:  true,
	}
	for i := range g.cells {
		rec := body[i*cellRecordSize : (i+1)*cellRecordSize]
		g.cells[i] = Cell{
			Floor:     FloorType(rec[0]),
			NorthWall: WallType(rec[1]),
			WestWall:  WallType(rec[2]),
			Object:    ObjectType(rec[3]),
		}
	}
	return g, nil
}

// Serialize encodes the grid in the map file layout. It is the exact
// inverse of Load.
func (g *Grid) Serialize() []byte {
	buf := make([]byte, headerSize+len(g.cells)*cellRecordSize)
	copy(buf[0:4], fileMagic[:])
	binary.LittleEndian.PutUint32(buf[4:8], uint32(g.display))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(g.width))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(g.height))
	for i, c := range g.cells {
		rec := buf[headerSize+i*cellRecordSize:]
		rec[0] = byte(c.Floor)
		rec[1] = byte(c.NorthWall)
		rec[2] = byte(c.WestWall)
		rec[3] = byte(c.Object)
	}
	return buf
}

// WriteTo writes the serialized grid to w.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	n, err := io.Copy(w, bytes.NewReader(g.Serialize()))
	return n, err
}

func (g *Grid) MarshalBinary() ([]byte, error) {
	return g.Serialize(), nil
}

// UnmarshalBinary replaces g with the decoded map. On error g is left
// unloaded and empty.
func (g *Grid) UnmarshalBinary(data []byte) error {
	loaded, err := Load(data)
	*g = *loaded
	return err
}
