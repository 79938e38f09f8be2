package render

import "gridmapper/internal/gridmap"

const secretDoorFont = 0.70

// NorthWall renders the edge c shares with its northern neighbour.
func NorthWall(v View, c gridmap.Coord) []Command {
	wall := v.Cell(c).NorthWall
	if !wall.Valid() {
		return nil
	}
	cs := CellSize(v)
	p := origin(c, cs)
	h := cs / 4 // half a door

	var cmds []Command
	if base, ok := wallLine(v, wall); ok {
		cmds = append(cmds, line(p, p.Add(cs, 0), base))
	}

	switch wall {
	case gridmap.WallSingleDoor:
		cmds = append(cmds, rect(Point{p.X + h + 1, p.Y - h + 1}, Point{p.X + 3*h, p.Y + h}, outlineWhite))
	case gridmap.WallDoubleDoor:
		cmds = append(cmds,
			rect(Point{p.X + 2, p.Y - h + 1}, Point{p.X + 2*h + 1, p.Y + h}, outlineWhite),
			rect(Point{p.X + 2*h, p.Y - h + 1}, Point{p.X + 4*h - 1, p.Y + h}, outlineWhite))
	case gridmap.WallSecretDoor:
		cmds = append(cmds, secretDoor(Point{p.X + 2*h, p.Y + 1}, cs))
	}
	return cmds
}

// WestWall renders the edge c shares with its western neighbour.
func WestWall(v View, c gridmap.Coord) []Command {
	wall := v.Cell(c).WestWall
	if !wall.Valid() {
		return nil
	}
	cs := CellSize(v)
	p := origin(c, cs)
	h := cs / 4

	var cmds []Command
	if base, ok := wallLine(v, wall); ok {
		cmds = append(cmds, line(p, p.Add(0, cs), base))
	}

	switch wall {
	case gridmap.WallSingleDoor:
		cmds = append(cmds, rect(Point{p.X - h + 1, p.Y + h + 1}, Point{p.X + h, p.Y + 3*h}, outlineWhite))
	case gridmap.WallDoubleDoor:
		cmds = append(cmds,
			rect(Point{p.X - h + 1, p.Y + 2}, Point{p.X + h, p.Y + 2*h + 1}, outlineWhite),
			rect(Point{p.X - h + 1, p.Y + 2*h}, Point{p.X + h, p.Y + 4*h - 1}, outlineWhite))
	case gridmap.WallSecretDoor:
		cmds = append(cmds, secretDoor(Point{p.X, p.Y + 2*h + 1}, cs))
	}
	return cmds
}

// wallLine picks the pen for an edge: thick for any wall or door, thin
// gray grid line when open, nothing when open and the grid is hidden.
func wallLine(v View, wall gridmap.WallType) (Style, bool) {
	if wall != gridmap.WallOpen {
		return thickBlack, true
	}
	if v.Display().HideGrid() {
		return Style{}, false
	}
	return thinGray, true
}

func secretDoor(at Point, cs int) Command {
	st := fontStyle(int(float64(cs)*secretDoorFont), false)
	st.Opaque = true
	return glyph("S", at, 0.5, 0.5, st)
}
