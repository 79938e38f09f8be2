// Package gridmap holds the tile map model: a fixed-size grid of cells,
// the packed display configuration, and the binary map file format.
package gridmap

import "fmt"

// FloorType is the floor feature of a cell.
//
// Values are written to map files as single bytes. Never reorder or
// renumber them; append new types at the end.
type FloorType uint8

const (
	FloorFill FloorType = iota
	FloorOpen
	FloorNorthSouthStairs
	FloorWestEastStairs
	FloorNEWall
	FloorNWWall
	FloorNEDoor
	FloorNWDoor
	FloorNWFill
	FloorNEFill
	FloorSWFill
	FloorSEFill
	FloorSpiralStairs
	FloorWater

	numFloorTypes
)

// WallType is the feature on a north or west cell edge.
// Same persistence rule as FloorType: never reorder.
type WallType uint8

const (
	WallOpen WallType = iota
	WallFill
	WallSingleDoor
	WallDoubleDoor
	WallSecretDoor

	numWallTypes
)

// ObjectType is an overlay drawn on top of a cell's floor.
// Same persistence rule as FloorType: never reorder.
type ObjectType uint8

const (
	ObjectNone ObjectType = iota
	ObjectPillar
	ObjectStatue
	ObjectTrapdoor
	ObjectPit
	ObjectRubble
	ObjectStalagmite
	ObjectXMark

	numObjectTypes
)

var floorNames = [...]string{
	"fill", "open", "ns-stairs", "we-stairs", "ne-wall", "nw-wall",
	"ne-door", "nw-door", "nw-fill", "ne-fill", "sw-fill", "se-fill",
	"spiral-stairs", "water",
}

var wallNames = [...]string{"open", "fill", "single-door", "double-door", "secret-door"}

var objectNames = [...]string{
	"none", "pillar", "statue", "trapdoor", "pit", "rubble", "stalagmite", "x-mark",
}

// FloorTypes returns every known floor type in file order.
func FloorTypes() []FloorType {
	out := make([]FloorType, 0, numFloorTypes)
	for f := FloorType(0); f < numFloorTypes; f++ {
		out = append(out, f)
	}
	return out
}

// WallTypes returns every known wall type in file order.
func WallTypes() []WallType {
	out := make([]WallType, 0, numWallTypes)
	for w := WallType(0); w < numWallTypes; w++ {
		out = append(out, w)
	}
	return out
}

// ObjectTypes returns every known object type in file order.
func ObjectTypes() []ObjectType {
	out := make([]ObjectType, 0, numObjectTypes)
	for o := ObjectType(0); o < numObjectTypes; o++ {
		out = append(out, o)
	}
	return out
}

func (f FloorType) Valid() bool { return f < numFloorTypes }
func (w WallType) Valid() bool { return w < numWallTypes }
func (o ObjectType) Valid() bool { return o < numObjectTypes }

func (f FloorType) String() string {
	if !f.Valid() {
		return fmt.Sprintf("floor(%d)", uint8(f))
	}
	return floorNames[f]
}

func (w WallType) String() string {
	if !w.Valid() {
		return fmt.Sprintf("wall(%d)", uint8(w))
	}
	return wallNames[w]
}

func (o ObjectType) String() string {
	if !o.Valid() {
		return fmt.Sprintf("object(%d)", uint8(o))
	}
	return objectNames[o]
}

// IsDiagonalFill reports whether the floor is half rock, split on a diagonal.
func (f FloorType) IsDiagonalFill() bool {
	return FloorNWFill <= f && f <= FloorSEFill
}

// IsFillType reports whether any part of the cell is solid rock.
func (f FloorType) IsFillType() bool {
	return f == FloorFill || f.IsDiagonalFill()
}

// IsOpenType reports whether the floor is open on all four edges.
func (f FloorType) IsOpenType() bool {
	switch f {
	case FloorOpen, FloorNorthSouthStairs, FloorWestEastStairs,
		FloorNEWall, FloorNWWall, FloorNEDoor, FloorNWDoor,
		FloorSpiralStairs, FloorWater:
		return true
	default:
		return false
	}
}

// IsSemiOpen reports whether the floor is fully open or a diagonal fill.
func (f FloorType) IsSemiOpen() bool {
	return f.IsOpenType() || f.IsDiagonalFill()
}

// SolidNorth reports whether the rock in this cell touches its north edge.
func (f FloorType) SolidNorth() bool {
	return f == FloorFill || f == FloorNWFill || f == FloorNEFill
}

// SolidSouth reports whether the rock in this cell touches its south edge.
func (f FloorType) SolidSouth() bool {
	return f == FloorFill || f == FloorSWFill || f == FloorSEFill
}

// SolidWest reports whether the rock in this cell touches its west edge.
func (f FloorType) SolidWest() bool {
	return f == FloorFill || f == FloorNWFill || f == FloorSWFill
}

// SolidEast reports whether the rock in this cell touches its east edge.
func (f FloorType) SolidEast() bool {
	return f == FloorFill || f == FloorNEFill || f == FloorSEFill
}

// Cell is one grid square. Its walls are the edges shared with the
// neighbour to the north and the neighbour to the west.
type Cell struct {
	Floor     FloorType
	NorthWall WallType
	WestWall  WallType
	Object    ObjectType
}

// Coord addresses a cell by column (X) and row (Y).
type Coord struct {
	X, Y int
}

func (c Coord) North() Coord { return Coord{c.X, c.Y - 1} }
func (c Coord) South() Coord { return Coord{c.X, c.Y + 1} }
func (c Coord) West() Coord { return Coord{c.X - 1, c.Y} }
func (c Coord) East() Coord { return Coord{c.X + 1, c.Y} }

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
