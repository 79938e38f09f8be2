package main

import tea "github.com/charmbracelet/bubbletea"

func (m model) handleNavigation(key string, speed int) (tea.Model, tea.Cmd) {
	if m.zPanMode {
		m.handlePan(key, speed)
	} else {
		m.handleCursorMove(key, speed)
	}
	return m, nil
}

// handlePan scrolls the view; the cursor is dragged along when it would
// leave the screen.
func (m *model) handlePan(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.panX -= speed
	case "l", "right", "L", "shift+right":
		m.panX += speed
	case "k", "up", "K", "shift+up":
		m.panY -= speed
	case "j", "down", "J", "shift+down":
		m.panY += speed
	}
	m.clampPan()
	cols, rows := m.viewCells()
	m.cursorX = clamp(m.cursorX, m.panX, m.panX+cols-1)
	m.cursorY = clamp(m.cursorY, m.panY, m.panY+rows-1)
	m.ensureCursorInBounds()
}

func (m *model) handleCursorMove(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursorX -= speed
	case "l", "right", "L", "shift+right":
		m.cursorX += speed
	case "k", "up", "K", "shift+up":
		m.cursorY -= speed
	case "j", "down", "J", "shift+down":
		m.cursorY += speed
	}
	m.ensureCursorInBounds()
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

// viewCells is how many map cells fit on screen above the toolbar and
// status line. One column and one row are kept for the closing outline.
func (m *model) viewCells() (cols, rows int) {
	cols = (m.width - 1) / blockSize
	rows = (m.height - chromeHeight - 1) / blockSize
	return max(cols, 1), max(rows, 1)
}

func (m *model) clampPan() {
	cols, rows := m.viewCells()
	m.panX = clamp(m.panX, 0, max(m.grid().Width()-cols, 0))
	m.panY = clamp(m.panY, 0, max(m.grid().Height()-rows, 0))
}

// ensureCursorInBounds keeps the cursor on the map and scrolls the view so
// that it stays visible.
func (m *model) ensureCursorInBounds() {
	g := m.grid()
	m.cursorX = clamp(m.cursorX, 0, max(g.Width()-1, 0))
	m.cursorY = clamp(m.cursorY, 0, max(g.Height()-1, 0))

	cols, rows := m.viewCells()
	if m.cursorX < m.panX {
		m.panX = m.cursorX
	} else if m.cursorX >= m.panX+cols {
		m.panX = m.cursorX - cols + 1
	}
	if m.cursorY < m.panY {
		m.panY = m.cursorY
	} else if m.cursorY >= m.panY+rows {
		m.panY = m.cursorY - rows + 1
	}
	m.clampPan()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
