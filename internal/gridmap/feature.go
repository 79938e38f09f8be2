package gridmap

import (
	"fmt"
	"strings"
)

// Feature is something the editor can paint onto the map: a floor, a wall
// or an object. The concrete types are FloorFeature, WallFeature and
// ObjectFeature.
type Feature interface {
	fmt.Stringer
	isFeature()
}

type FloorFeature struct{ Type FloorType }
type WallFeature struct{ Type WallType }
type ObjectFeature struct{ Type ObjectType }

func (FloorFeature) isFeature() {}
func (WallFeature) isFeature() {}
func (ObjectFeature) isFeature() {}

func (f FloorFeature) String() string { return "floor:" + f.Type.String() }
func (f WallFeature) String() string { return "wall:" + f.Type.String() }
func (f ObjectFeature) String() string { return "object:" + f.Type.String() }

// Toolbox lists every selectable feature in menu order: basic floors,
// walls, diagonals, then objects.
func Toolbox() []Feature {
	tools := []Feature{
		FloorFeature{FloorOpen},
		FloorFeature{FloorFill},
		FloorFeature{FloorWater},
		FloorFeature{FloorNorthSouthStairs},
		FloorFeature{FloorWestEastStairs},
		FloorFeature{FloorSpiralStairs},
		WallFeature{WallFill},
		WallFeature{WallOpen},
		WallFeature{WallSingleDoor},
		WallFeature{WallDoubleDoor},
		WallFeature{WallSecretDoor},
		FloorFeature{FloorNWFill},
		FloorFeature{FloorNEFill},
		FloorFeature{FloorSWFill},
		FloorFeature{FloorSEFill},
		FloorFeature{FloorNEWall},
		FloorFeature{FloorNWWall},
		FloorFeature{FloorNEDoor},
		FloorFeature{FloorNWDoor},
	}
	for _, o := range ObjectTypes() {
		tools = append(tools, ObjectFeature{o})
	}
	return tools
}

// ParseFeature decodes a "kind:name" string as produced by Feature.String.
func ParseFeature(s string) (Feature, error) {
	kind, name, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")
	if !ok {
		return nil, fmt.Errorf("feature %q: missing kind prefix", s)
	}
	switch kind {
	case "floor":
		for _, f := range FloorTypes() {
			if f.String() == name {
				return FloorFeature{f}, nil
			}
		}
	case "wall":
		for _, w := range WallTypes() {
			if w.String() == name {
				return WallFeature{w}, nil
			}
		}
	case "object":
		for _, o := range ObjectTypes() {
			if o.String() == name {
				return ObjectFeature{o}, nil
			}
		}
	default:
		return nil, fmt.Errorf("feature %q: unknown kind %q", s, kind)
	}
	return nil, fmt.Errorf("feature %q: unknown %s type %q", s, kind, name)
}
