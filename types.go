package main

import (
	"context"

	"gridmapper/internal/editor"
	"gridmapper/internal/gridmap"
)

type model struct {
	ctx               context.Context
	width             int
	height            int
	cursorX           int // cell under the cursor
	cursorY           int
	panX              int // first visible cell
	panY              int
	zPanMode          bool
	session           *editor.Session
	tools             []gridmap.Feature
	tool              int
	edge              editor.Edge
	mode              Mode
	help              bool
	helpScroll        int
	filename          string
	fileList          []string
	selectedFileIndex int
	fileOp            FileOperation
	sizeInput         string
	confirmAction     ConfirmAction
	errorMessage      string
	successMessage    string
	config            *Config
}

func (m *model) grid() *gridmap.Grid {
	return m.session.Grid()
}

func (m *model) selectedTool() gridmap.Feature {
	return m.tools[m.tool]
}

func (m *model) cursorCell() gridmap.Coord {
	return gridmap.Coord{X: m.cursorX, Y: m.cursorY}
}
