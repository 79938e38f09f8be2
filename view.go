package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gridmapper/internal/editor"
	"gridmapper/internal/gridmap"
)

var (
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	toolbarStyle = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
)

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	width := max(m.width, 1)
	mapHeight := max(m.height-chromeHeight, 1)

	var result strings.Builder
	if m.mode == ModeFileInput && m.fileOp == FileOpOpen {
		m.writeFileList(&result, width, mapHeight)
	} else {
		m.writeMap(&result, mapHeight)
	}

	result.WriteString("\n")
	result.WriteString(toolbarStyle.Render(m.toolbar()))
	result.WriteString("\n")
	result.WriteString(m.statusLine())
	return result.String()
}

// writeMap draws the visible part of the map, padded to height lines.
func (m model) writeMap(result *strings.Builder, height int) {
	cols, rows := m.viewCells()
	blocks := textMapBlocks(m.grid(), m.panX, m.panY, cols, rows)

	curRow := (m.cursorY-m.panY)*blockSize + 1
	curCol := (m.cursorX-m.panX)*blockSize + 1
	if _, ok := m.selectedTool().(gridmap.WallFeature); ok {
		if m.edge == editor.North {
			curRow--
		} else {
			curCol--
		}
	}
	showCursor := m.mode != ModeFileInput

	for i := 0; i < height; i++ {
		if i > 0 {
			result.WriteString("\n")
		}
		if i >= len(blocks) {
			continue
		}
		line := blocks[i]
		if showCursor && i == curRow && curCol >= 0 && curCol < len(line) {
			result.WriteString(string(line[:curCol]))
			result.WriteString(cursorStyle.Render(string(line[curCol])))
			result.WriteString(string(line[curCol+1:]))
		} else {
			result.WriteString(string(line))
		}
	}
}

func (m model) writeFileList(result *strings.Builder, width, height int) {
	lines := []string{"Select a saved map:", strings.Repeat("─", width)}

	if len(m.fileList) == 0 {
		lines = append(lines, fmt.Sprintf("(No %s files found in %s)", mapExtension, m.mapDir()))
	} else {
		// Leave room for header, separator, input
		maxFiles := max(height-4, 1)
		startIdx := 0
		if m.selectedFileIndex >= maxFiles {
			startIdx = m.selectedFileIndex - maxFiles + 1
		}
		endIdx := min(startIdx+maxFiles, len(m.fileList))
		for i := startIdx; i < endIdx; i++ {
			displayName := stripExtension(m.fileList[i], mapExtension)
			if i == m.selectedFileIndex {
				lines = append(lines, "> "+displayName+" <")
			} else {
				lines = append(lines, "  "+displayName)
			}
		}
	}

	lines = append(lines, strings.Repeat("─", width), "Filename: "+m.filename+"█")
	result.WriteString(strings.Join(lines, "\n"))
}

func (m model) toolbar() string {
	tool := m.selectedTool()
	parts := []string{fmt.Sprintf("Tool %d/%d: %s", m.tool+1, len(m.tools), tool)}
	if _, ok := tool.(gridmap.WallFeature); ok {
		parts = append(parts, "Edge: "+m.edge.String())
	}
	d := m.grid().Display()
	parts = append(parts,
		fmt.Sprintf("Map: %dx%d", m.grid().Width(), m.grid().Height()),
		fmt.Sprintf("Cell: %dpx", m.grid().CellSize()),
		"Rough: "+onOff(d.RoughEdges()),
		"Grid: "+onOff(!d.HideGrid()),
	)
	name := "untitled"
	if f := m.session.Filename(); f != "" {
		name = filepath.Base(f)
	}
	if m.session.Changed() {
		name += " [+]"
	}
	parts = append(parts, name)
	return strings.Join(parts, " | ")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (m model) statusLine() string {
	switch m.mode {
	case ModeFileInput:
		var opStr string
		switch m.fileOp {
		case FileOpSave:
			opStr = "Save"
		case FileOpOpen:
			opStr = "Open"
		case FileOpSavePNG:
			opStr = "Export PNG"
		case FileOpSaveVisualTXT:
			opStr = "Export text"
		}
		hint := "Enter=confirm, Esc=cancel"
		if m.fileOp == FileOpOpen {
			hint = "↑/↓=navigate list, Type=enter name, Enter=confirm, Esc=cancel"
		}
		if m.errorMessage != "" {
			return fmt.Sprintf("Mode: FILE | %s | %s filename: %s | %s",
				errorStyle.Render("ERROR: "+m.errorMessage), opStr, m.filename, hint)
		}
		return fmt.Sprintf("Mode: FILE | %s filename: %s | %s", opStr, m.filename, hint)

	case ModeSizeInput:
		status := fmt.Sprintf("Mode: NEW | Size (WIDTHxHEIGHT): %s█ | Enter=create, Esc=cancel", m.sizeInput)
		if m.errorMessage != "" {
			status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
		}
		return status

	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmQuit:
			message = "Quit? Unsaved changes will be lost. (y/n)"
		case ConfirmNewMap:
			message = "Create new map? Unsaved changes will be lost. (y/n)"
		case ConfirmOpenMap:
			message = "Open another map? Unsaved changes will be lost. (y/n)"
		case ConfirmFillMap:
			message = "Fill the whole map with rock? (y/n)"
		case ConfirmClearMap:
			message = "Clear the whole map to open floor? (y/n)"
		case ConfirmOverwriteFile:
			message = fmt.Sprintf("File %s already exists. Overwrite? (y/n)", m.filename)
		}
		return fmt.Sprintf("Mode: CONFIRM | %s", message)
	}

	modeStr := m.modeString()
	if m.zPanMode {
		modeStr = "PAN"
	}
	status := fmt.Sprintf("Mode: %s | Cursor: (%d,%d)", modeStr, m.cursorX, m.cursorY)
	if m.successMessage != "" {
		status += " | " + successStyle.Render(m.successMessage)
	}
	if m.errorMessage != "" {
		status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
	} else if m.successMessage == "" {
		status += " | ? for help | q to quit"
	}
	return status
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		return "NORMAL"
	case ModeFileInput:
		return "FILE"
	case ModeSizeInput:
		return "NEW"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

var helpLines = []string{
	"Gridmapper Help",
	"===============",
	"",
	"Navigation:",
	"-----------",
	"  h/←/j/↓/k/↑/l/→  Move cursor one cell",
	"  Shift+h/j/k/l    Move cursor 2 cells",
	"  z                Toggle pan mode (direction keys scroll the map)",
	"  Mouse click      Apply the current tool at the clicked cell",
	"                   (click a wall character to pick that edge)",
	"",
	"Drawing:",
	"--------",
	"  [ / ]            Previous / next tool",
	"  Tab              Switch wall edge between north and west",
	"  Space/Enter      Apply the current tool at the cursor",
	"",
	"  Floors: fill, open, water, stairs, spiral stairs,",
	"          diagonal walls and doors, diagonal half fills",
	"  Walls:  fill, open, single door, double door, secret door",
	"          (walls only go between two open floors)",
	"  Objects: pillar, statue, trapdoor, pit, rubble, stalagmite, X",
	"",
	"Display:",
	"--------",
	"  r                Toggle rough rock edges",
	"  g                Toggle grid lines",
	"  +/-              Grow / shrink cells in the PNG image",
	"",
	"Map Operations:",
	"---------------",
	"  n                New map (asks for WIDTHxHEIGHT)",
	"  F                Fill the whole map with rock",
	"  C                Clear the whole map to open floor",
	"",
	"File Operations:",
	"----------------",
	"  s                Save map (" + mapExtension + ")",
	"  o                Open a saved map",
	"  S                Export as PNG image",
	"  t                Export as text",
	"  y                Copy text map to clipboard",
	"",
	"General:",
	"  Esc              Clear messages / leave pan mode",
	"  ?                Toggle this help screen",
	"  q/Ctrl+C         Quit",
}

func (m model) maxHelpScroll() int {
	visibleHeight := max(m.height-1, 1)
	return max(len(helpLines)-visibleHeight, 0)
}

func (m model) helpView() string {
	visibleHeight := max(m.height-1, 1)

	startLine := min(m.helpScroll, m.maxHelpScroll())
	endLine := min(startLine+visibleHeight, len(helpLines))

	visible := append([]string(nil), helpLines[startLine:endLine]...)
	if startLine == 0 && len(visible) > 0 {
		visible[0] = titleStyle.Render(visible[0])
	}

	statusLine := fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		startLine+1, endLine, len(helpLines))
	return strings.Join(visible, "\n") + "\n" + statusLine
}
