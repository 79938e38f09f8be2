package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"gridmapper/internal/editor"
	"gridmapper/internal/gridmap"
	"gridmapper/internal/telemetry"
)

func main() {
	envErr := godotenv.Load()
	config := loadConfig()

	if config.DebugLog != "" {
		f, err := tea.LogToFile(config.DebugLog, "gridmapper")
		if err != nil {
			fmt.Fprintf(os.Stderr, "debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	if envErr != nil {
		log.Printf("Note: .env file not loaded: %v", envErr)
	}

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				log.Printf("Warning: telemetry shutdown failed: %v", err)
			}
		}()
	}

	m, err := initialModel(ctx, config, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

// initialModel opens the map named on the command line, or starts a blank
// map sized from the config.
func initialModel(ctx context.Context, config *Config, args []string) (model, error) {
	m := model{
		ctx:               ctx,
		config:            config,
		tools:             gridmap.Toolbox(),
		selectedFileIndex: -1,
	}

	if len(args) > 0 {
		session, err := editor.Open(ctx, args[0])
		if err != nil {
			return m, err
		}
		m.session = session
		return m, nil
	}

	session, err := editor.New(config.Width, config.Height, config.editorOptions())
	if err != nil {
		log.Printf("config size %dx%d rejected: %v", config.Width, config.Height, err)
		session, err = editor.New(defaultMapWidth, defaultMapHeight, config.editorOptions())
		if err != nil {
			return m, err
		}
	}
	m.session = session
	return m, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInBounds()
		return m, nil

	case tea.MouseMsg:
		if m.mode == ModeNormal && !m.help && msg.Type == tea.MouseLeft {
			m.handleClick(msg.X, msg.Y)
		}
		return m, nil

	case tea.KeyMsg:
		if m.help {
			switch msg.String() {
			case "esc", "q", "?":
				m.help = false
				m.helpScroll = 0
			case "j", "down":
				if m.helpScroll < m.maxHelpScroll() {
					m.helpScroll++
				}
			case "k", "up":
				if m.helpScroll > 0 {
					m.helpScroll--
				}
			default:
				m.help = false
				m.helpScroll = 0
			}
			return m, nil
		}

		switch m.mode {
		case ModeNormal:
			return m.updateNormal(msg)
		case ModeFileInput:
			return m.updateFileInput(msg)
		case ModeSizeInput:
			return m.updateSizeInput(msg)
		case ModeConfirm:
			return m.updateConfirm(msg)
		}
	}
	return m, nil
}

func (m model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEscape {
		m.zPanMode = false
		m.errorMessage = ""
		m.successMessage = ""
		return m, nil
	}

	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		return m.confirm(ConfirmQuit)
	case "?":
		m.help = !m.help
		return m, nil
	case "z":
		m.zPanMode = !m.zPanMode
		return m, nil
	case "h", "left", "H", "shift+left",
		"l", "right", "L", "shift+right",
		"k", "up", "K", "shift+up",
		"j", "down", "J", "shift+down":
		return m.handleNavigation(key, m.getMoveSpeed(key))
	case "]":
		m.tool = (m.tool + 1) % len(m.tools)
		return m, nil
	case "[":
		m.tool = (m.tool + len(m.tools) - 1) % len(m.tools)
		return m, nil
	case "tab":
		if m.edge == editor.North {
			m.edge = editor.West
		} else {
			m.edge = editor.North
		}
		return m, nil
	case " ", "enter":
		m.session.Apply(m.selectedTool(), m.cursorCell(), m.edge)
		return m, nil
	case "r":
		m.session.ToggleRoughEdges()
		return m, nil
	case "g":
		m.session.ToggleHideGrid()
		return m, nil
	case "+", "=":
		m.resizeCells(cellSizeStep)
		return m, nil
	case "-", "_":
		m.resizeCells(-cellSizeStep)
		return m, nil
	case "s":
		m.startFileOp(FileOpSave)
		return m, nil
	case "S":
		m.startFileOp(FileOpSavePNG)
		return m, nil
	case "t":
		m.startFileOp(FileOpSaveVisualTXT)
		return m, nil
	case "o":
		return m.confirm(ConfirmOpenMap)
	case "n":
		return m.confirm(ConfirmNewMap)
	case "F":
		return m.confirm(ConfirmFillMap)
	case "C":
		return m.confirm(ConfirmClearMap)
	case "y":
		if err := m.copyTextMap(); err != nil {
			m.errorMessage = fmt.Sprintf("Error copying map: %s", err.Error())
		} else {
			m.successMessage = "Copied text map to clipboard"
			m.errorMessage = ""
		}
		return m, nil
	}
	return m, nil
}

func (m *model) resizeCells(delta int) {
	m.session.SetCellSize(m.grid().CellSize() + delta)
	if err := m.session.SurfaceErr(); err != nil {
		m.errorMessage = fmt.Sprintf("No PNG at this size: %s", err.Error())
	} else {
		m.errorMessage = ""
	}
	m.successMessage = fmt.Sprintf("Cell size %dpx", m.grid().CellSize())
}

// handleClick applies the selected tool at the clicked block. Clicking the
// north or west edge character of a block picks that wall.
func (m *model) handleClick(x, y int) {
	cols, rows := m.viewCells()
	bx, by := x/blockSize, y/blockSize
	if x < 0 || y < 0 || bx >= cols || by >= rows {
		return
	}
	c := gridmap.Coord{X: m.panX + bx, Y: m.panY + by}
	if !m.grid().Contains(c) {
		return
	}
	m.cursorX, m.cursorY = c.X, c.Y

	edge := m.edge
	switch {
	case x%blockSize == 1 && y%blockSize == 0:
		edge = editor.North
	case x%blockSize == 0 && y%blockSize == 1:
		edge = editor.West
	}
	tool := m.selectedTool()
	if _, ok := tool.(gridmap.WallFeature); ok {
		m.edge = edge
	}
	m.session.Apply(tool, c, edge)
}

// confirm asks before actions that lose work. Quitting, opening and
// starting a new map only ask when there are unsaved changes.
func (m model) confirm(action ConfirmAction) (tea.Model, tea.Cmd) {
	ask := m.config == nil || m.config.Confirmations
	switch action {
	case ConfirmQuit, ConfirmNewMap, ConfirmOpenMap:
		ask = ask && m.session.Changed()
	}
	if !ask {
		return m.confirmed(action)
	}
	m.mode = ModeConfirm
	m.confirmAction = action
	return m, nil
}

func (m model) confirmed(action ConfirmAction) (tea.Model, tea.Cmd) {
	m.mode = ModeNormal
	switch action {
	case ConfirmQuit:
		return m, tea.Quit
	case ConfirmNewMap:
		m.mode = ModeSizeInput
		m.sizeInput = fmt.Sprintf("%dx%d", m.grid().Width(), m.grid().Height())
		m.errorMessage = ""
	case ConfirmOpenMap:
		m.startFileOp(FileOpOpen)
	case ConfirmFillMap:
		m.session.Clear(gridmap.FloorFill)
	case ConfirmClearMap:
		m.session.Clear(gridmap.FloorOpen)
	case ConfirmOverwriteFile:
		if err := m.saveTo(m.filename); err != nil {
			m.mode = ModeFileInput
			return m, nil
		}
		m.filename = ""
	}
	return m, nil
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.confirmed(m.confirmAction)
	case "n", "N", "esc":
		if m.confirmAction == ConfirmOverwriteFile {
			m.mode = ModeFileInput
			m.fileOp = FileOpSave
			m.filename = stripExtension(filepath.Base(m.filename), mapExtension)
		} else {
			m.mode = ModeNormal
		}
	}
	return m, nil
}

func (m *model) startFileOp(op FileOperation) {
	m.mode = ModeFileInput
	m.fileOp = op
	m.errorMessage = ""
	m.successMessage = ""
	m.filename = ""
	m.selectedFileIndex = -1
	if op == FileOpOpen {
		m.scanMapFiles()
		return
	}
	if current := m.session.Filename(); current != "" {
		m.filename = stripExtension(filepath.Base(current), mapExtension)
	}
}

func (m model) updateFileInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEscape:
		m.mode = ModeNormal
		m.filename = ""
		m.errorMessage = ""
		return m, nil
	case msg.String() == "up" || msg.String() == "down":
		// Only navigate while the name still matches the list selection
		if m.fileOp == FileOpOpen && (m.filename == "" || m.selectedFileMatches()) {
			if msg.String() == "up" {
				m.selectFile(-1)
			} else {
				m.selectFile(1)
			}
		}
		return m, nil
	case msg.Type == tea.KeyEnter:
		return m.runFileOp()
	case msg.Type == tea.KeyBackspace:
		if len(m.filename) > 0 {
			m.filename = m.filename[:len(m.filename)-1]
			m.selectedFileIndex = -1
		}
		return m, nil
	default:
		switch msg.Type {
		case tea.KeyRunes:
			m.filename += string(msg.Runes)
			m.selectedFileIndex = -1
		case tea.KeySpace:
			m.filename += " "
			m.selectedFileIndex = -1
		}
		return m, nil
	}
}

func (m model) runFileOp() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.filename)
	if name == "" {
		m.errorMessage = "Please enter a filename"
		return m, nil
	}

	switch m.fileOp {
	case FileOpSave:
		path := m.resolvePath(withExtension(name, mapExtension))
		if _, err := os.Stat(path); err == nil && path != m.session.Filename() {
			m.filename = path
			return m.confirm(ConfirmOverwriteFile)
		}
		if err := m.saveTo(path); err != nil {
			return m, nil
		}

	case FileOpOpen:
		path := m.resolvePath(withExtension(name, mapExtension))
		session, err := editor.Open(m.ctx, path)
		if err != nil {
			m.errorMessage = fmt.Sprintf("Error opening file: %s", openErrorText(err))
			return m, nil
		}
		m.session = session
		m.cursorX, m.cursorY, m.panX, m.panY = 0, 0, 0, 0
		m.ensureCursorInBounds()
		m.successMessage = fmt.Sprintf("Opened %s", path)
		m.errorMessage = ""

	case FileOpSavePNG:
		path := m.resolvePath(withExtension(name, ".png"))
		if err := m.exportPNG(path); err != nil {
			m.errorMessage = fmt.Sprintf("Error exporting PNG: %s", err.Error())
			return m, nil
		}
		m.successMessage = fmt.Sprintf("Exported to %s", absPath(path))
		m.errorMessage = ""

	case FileOpSaveVisualTXT:
		path := m.resolvePath(withExtension(name, ".txt"))
		if err := m.exportVisualTXT(path); err != nil {
			m.errorMessage = fmt.Sprintf("Error exporting text: %s", err.Error())
			return m, nil
		}
		m.successMessage = fmt.Sprintf("Exported to %s", absPath(path))
		m.errorMessage = ""
	}

	m.mode = ModeNormal
	m.filename = ""
	return m, nil
}

func (m *model) saveTo(path string) error {
	if err := m.session.Save(m.ctx, path); err != nil {
		m.errorMessage = fmt.Sprintf("Error saving file: %s", err.Error())
		return err
	}
	m.successMessage = fmt.Sprintf("Saved to %s", absPath(path))
	m.errorMessage = ""
	return nil
}

func openErrorText(err error) string {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return "file not found"
	case errors.Is(err, gridmap.ErrBadMagic):
		return "not a map file"
	case errors.Is(err, gridmap.ErrTruncated), errors.Is(err, gridmap.ErrTooLarge):
		return "map file is damaged"
	}
	return err.Error()
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func (m model) updateSizeInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
		m.sizeInput = ""
		m.errorMessage = ""
	case tea.KeyBackspace:
		if len(m.sizeInput) > 0 {
			m.sizeInput = m.sizeInput[:len(m.sizeInput)-1]
		}
	case tea.KeyEnter:
		w, h, err := parseSize(m.sizeInput)
		if err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		opts := editor.Options{
			CellSize:   m.grid().CellSize(),
			RoughEdges: m.grid().Display().RoughEdges(),
			HideGrid:   m.grid().Display().HideGrid(),
		}
		session, err := editor.New(w, h, opts)
		if err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		m.session = session
		m.mode = ModeNormal
		m.sizeInput = ""
		m.cursorX, m.cursorY, m.panX, m.panY = 0, 0, 0, 0
		m.ensureCursorInBounds()
		m.successMessage = fmt.Sprintf("New %dx%d map", w, h)
		m.errorMessage = ""
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if (r >= '0' && r <= '9') || r == 'x' || r == 'X' {
				m.sizeInput += string(r)
			}
		}
	}
	return m, nil
}

// parseSize reads "WIDTHxHEIGHT".
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WIDTHxHEIGHT", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: bad width", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: bad height", s)
	}
	if w <= 0 || h <= 0 || w > gridmap.MaxDimension || h > gridmap.MaxDimension {
		return 0, 0, fmt.Errorf("size %q: %w", s, gridmap.ErrInvalidSize)
	}
	return w, h, nil
}
