// Package editor ties a map, its raster image and its file together into
// one editing session, and enforces the rules for what an edit may change.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"gridmapper/internal/gridmap"
	"gridmapper/internal/render"
	"gridmapper/internal/telemetry"
)

var (
	ErrNoFilename = errors.New("no filename")
	ErrNoSurface  = errors.New("map has no raster image")
)

// Options are the display settings applied to a new map.
type Options struct {
	CellSize   int
	RoughEdges bool
	HideGrid   bool
}

// Session is a single open map. It keeps a raster image of the whole map
// up to date as edits are applied. When the map is too large to rasterize
// the session still edits and saves; only the image is missing.
type Session struct {
	grid       *gridmap.Grid
	surface    *render.Surface
	surfaceErr error
	painter    *render.Painter
	filename   string
	tracer     trace.Tracer

	// OnPaint is forwarded to the painter for every repainted cell.
	OnPaint func(c gridmap.Coord, depth int)
}

// New starts a session on a blank, all-rock map.
func New(width, height int, opts Options) (*Session, error) {
	g, err := gridmap.New(width, height)
	if err != nil {
		return nil, err
	}
	if opts.CellSize > 0 {
		g.SetCellSize(opts.CellSize)
	}
	if opts.RoughEdges {
		g.ToggleRoughEdges()
	}
	if opts.HideGrid {
		g.ToggleHideGrid()
	}
	g.MarkSaved()

	s := newSession(g)
	log.Printf("new map %dx%d", width, height)
	return s, nil
}

// Open starts a session on the map stored at path.
func Open(ctx context.Context, path string) (*Session, error) {
	tracer := telemetry.Tracer("editor")
	_, span := tracer.Start(ctx, "map.open", trace.WithAttributes(attribute.String("path", path)))
	defer span.End()

	data, err := os.ReadFile(path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read failed")
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	g, err := gridmap.Load(data)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode failed")
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	span.SetAttributes(
		attribute.Int("width", g.Width()),
		attribute.Int("height", g.Height()),
	)

	s := newSession(g)
	s.filename = path
	log.Printf("opened %s (%dx%d)", path, g.Width(), g.Height())
	return s, nil
}

func newSession(g *gridmap.Grid) *Session {
	s := &Session{grid: g, tracer: telemetry.Tracer("editor")}
	s.rebuildSurface()
	return s
}

// rebuildSurface allocates a raster sized for the current cell size and
// paints the whole map onto it.
func (s *Session) rebuildSurface() {
	_, span := s.tracer.Start(context.Background(), "map.paint")
	defer span.End()

	w, h := render.PixelSize(s.grid)
	surface, err := render.NewSurface(w, h)
	if err != nil {
		log.Printf("no raster image: %v", err)
		span.RecordError(err)
		s.surface, s.painter, s.surfaceErr = nil, nil, err
		return
	}
	s.surface, s.surfaceErr = surface, nil
	s.painter = render.NewPainter(s.grid, surface)
	s.painter.OnPaint = s.forwardPaint
	s.painter.PaintAll()
	span.SetAttributes(attribute.Int("pixels", w*h))
}

func (s *Session) forwardPaint(c gridmap.Coord, depth int) {
	if s.OnPaint != nil {
		s.OnPaint(c, depth)
	}
}

// Grid exposes the map for reading. Mutate it only through the session.
func (s *Session) Grid() *gridmap.Grid { return s.grid }

func (s *Session) Filename() string { return s.filename }

func (s *Session) Changed() bool { return s.grid.Changed() }

// Surface is the raster image of the map, or nil when SurfaceErr is set.
func (s *Session) Surface() *render.Surface { return s.surface }

func (s *Session) SurfaceErr() error { return s.surfaceErr }

// Save writes the map to path, or to the session's file when path is
// empty. A successful save makes path the session's file.
func (s *Session) Save(ctx context.Context, path string) error {
	if path == "" {
		path = s.filename
	}
	if path == "" {
		return ErrNoFilename
	}

	_, span := s.tracer.Start(ctx, "map.save", trace.WithAttributes(attribute.String("path", path)))
	defer span.End()

	if err := os.WriteFile(path, s.grid.Serialize(), 0644); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "write failed")
		return fmt.Errorf("save %s: %w", path, err)
	}
	s.filename = path
	s.grid.MarkSaved()
	log.Printf("saved %s", path)
	return nil
}

// ExportPNG writes the raster image of the map to path.
func (s *Session) ExportPNG(ctx context.Context, path string) error {
	_, span := s.tracer.Start(ctx, "map.export", trace.WithAttributes(attribute.String("path", path)))
	defer span.End()

	if s.surface == nil {
		err := fmt.Errorf("%w: %v", ErrNoSurface, s.surfaceErr)
		span.RecordError(err)
		return err
	}
	if err := s.surface.SavePNG(path); err != nil {
		span.RecordError(err)
		return fmt.Errorf("export %s: %w", path, err)
	}
	log.Printf("exported %s", path)
	return nil
}

// WritePNG encodes the raster image of the map to w.
func (s *Session) WritePNG(w io.Writer) error {
	if s.surface == nil {
		return fmt.Errorf("%w: %v", ErrNoSurface, s.surfaceErr)
	}
	return s.surface.EncodePNG(w)
}

// Clear resets every cell to floor and repaints the map.
func (s *Session) Clear(floor gridmap.FloorType) {
	s.grid.Clear(floor)
	s.paintAll()
}

// SetCellSize changes the pixel size of cells. The raster image is
// reallocated at the new size.
func (s *Session) SetCellSize(size int) {
	if s.grid.Display().WithCellSize(size) == s.grid.Display() {
		return
	}
	s.grid.SetCellSize(size)
	s.rebuildSurface()
}

func (s *Session) ToggleRoughEdges() {
	s.grid.ToggleRoughEdges()
	s.paintAll()
}

func (s *Session) ToggleHideGrid() {
	s.grid.ToggleHideGrid()
	s.paintAll()
}

func (s *Session) paintAll() {
	if s.painter == nil {
		return
	}
	_, span := s.tracer.Start(context.Background(), "map.paint")
	defer span.End()
	s.painter.PaintAll()
}

func (s *Session) repaint(cells ...gridmap.Coord) {
	if s.painter == nil {
		return
	}
	for _, c := range cells {
		if s.grid.Contains(c) {
			s.painter.PaintCell(c, true)
		}
	}
}
