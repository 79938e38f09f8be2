package editor

import (
	"log"

	"gridmapper/internal/gridmap"
)

// Edge selects which wall of a cell a wall feature is applied to.
type Edge uint8

const (
	North Edge = iota
	West
)

func (e Edge) String() string {
	if e == West {
		return "west"
	}
	return "north"
}

// Apply paints feature onto the map at c. For walls, edge picks the north
// or west edge of c. It reports whether the map changed; edits that are
// redundant or not allowed are ignored.
func (s *Session) Apply(feature gridmap.Feature, c gridmap.Coord, edge Edge) bool {
	if !s.grid.Contains(c) {
		return false
	}
	var changed bool
	switch f := feature.(type) {
	case gridmap.FloorFeature:
		changed = s.applyFloor(c, f.Type)
	case gridmap.WallFeature:
		changed = s.applyWall(c, edge, f.Type)
	case gridmap.ObjectFeature:
		changed = s.applyObject(c, f.Type)
	}
	if changed {
		log.Printf("apply %v at %v", feature, c)
	}
	return changed
}

func (s *Session) applyFloor(c gridmap.Coord, floor gridmap.FloorType) bool {
	g := s.grid
	if !floor.Valid() || g.Floor(c) == floor {
		return false
	}

	// Rock swallows the object and every wall around the cell
	if floor == gridmap.FloorFill {
		s.repaint(g.FillCell(c)...)
		return true
	}

	g.SetFloor(c, floor)
	if g.DropIllegalWalls(c) {
		s.repaint(c, c.North(), c.West(), c.East(), c.South())
		return true
	}
	s.repaint(c)
	return true
}

func (s *Session) applyWall(c gridmap.Coord, edge Edge, wall gridmap.WallType) bool {
	g := s.grid
	if !wall.Valid() {
		return false
	}

	switch edge {
	case North:
		if c.Y == 0 || g.NorthWall(c) == wall {
			return false
		}
		if wall != gridmap.WallOpen && !g.CanBuildNorthWall(c) {
			return false
		}
		g.SetNorthWall(c, wall)
		s.repaint(c.North(), c)

	case West:
		if c.X == 0 || g.WestWall(c) == wall {
			return false
		}
		if wall != gridmap.WallOpen && !g.CanBuildWestWall(c) {
			return false
		}
		g.SetWestWall(c, wall)
		s.repaint(c.West(), c)

	default:
		return false
	}
	return true
}

func (s *Session) applyObject(c gridmap.Coord, object gridmap.ObjectType) bool {
	g := s.grid
	if !object.Valid() || g.Object(c) == object {
		return false
	}
	// Nothing stands inside solid rock
	if g.Floor(c) == gridmap.FloorFill {
		return false
	}
	g.SetObject(c, object)
	s.repaint(c)
	return true
}
