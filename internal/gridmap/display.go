package gridmap

/*
DisplayConfig packs the map's display settings into one word, stored in
the map file header:

	bits 0-9   cell size in pixels
	bits 10-29 reserved, kept as loaded
	bit 30     rough edges
	bit 31     hide grid lines
*/
type DisplayConfig uint32

const (
	maskCellSize   DisplayConfig = 1<<10 - 1
	maskRoughEdges DisplayConfig = 1 << 30
	maskHideGrid   DisplayConfig = 1 << 31
)

const (
	CellSizeMin     = 12
	CellSizeDefault = 20
	CellSizeMax     = int(maskCellSize)
)

// DefaultDisplay is the configuration of a freshly created map.
func DefaultDisplay() DisplayConfig {
	return DisplayConfig(0).WithCellSize(CellSizeDefault)
}

func (d DisplayConfig) CellSize() int {
	return int(d & maskCellSize)
}

// WithCellSize returns d with the cell size set, clamped to
// [CellSizeMin, CellSizeMax].
func (d DisplayConfig) WithCellSize(size int) DisplayConfig {
	if size < CellSizeMin {
		size = CellSizeMin
	}
	if size > CellSizeMax {
		size = CellSizeMax
	}
	return d&^maskCellSize | DisplayConfig(size)&maskCellSize
}

func (d DisplayConfig) RoughEdges() bool {
	return d&maskRoughEdges != 0
}

func (d DisplayConfig) HideGrid() bool {
	return d&maskHideGrid != 0
}

func (d DisplayConfig) WithRoughEdges(on bool) DisplayConfig {
	if on {
		return d | maskRoughEdges
	}
	return d &^ maskRoughEdges
}

func (d DisplayConfig) WithHideGrid(on bool) DisplayConfig {
	if on {
		return d | maskHideGrid
	}
	return d &^ maskHideGrid
}
