package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// MaxSurfacePixels bounds the pixel buffer a Surface may allocate.
const MaxSurfacePixels = 1 << 26

var ErrSurfaceTooLarge = errors.New("surface too large")

var palette = map[Color]color.Color{
	Black: color.Black,
	White: color.White,
	Gray:  color.RGBA{0x80, 0x80, 0x80, 0xff},
}

// Surface is a raster Canvas backed by a gg context.
type Surface struct {
	dc      *gg.Context
	regular *truetype.Font
	bold    *truetype.Font
}

// NewSurface allocates a white width x height pixel surface.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 || width > MaxSurfacePixels/height {
		return nil, fmt.Errorf("%w: %dx%d pixels", ErrSurfaceTooLarge, width, height)
	}

	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()
	return &Surface{dc: dc, regular: regular, bold: bold}, nil
}

func (s *Surface) Width() int  { return s.dc.Width() }
func (s *Surface) Height() int { return s.dc.Height() }

// Image returns the backing image. It changes as commands are drawn.
func (s *Surface) Image() image.Image { return s.dc.Image() }

func (s *Surface) EncodePNG(w io.Writer) error { return s.dc.EncodePNG(w) }

func (s *Surface) SavePNG(path string) error { return s.dc.SavePNG(path) }

// Draw executes commands in order. Unknown kinds are skipped.
func (s *Surface) Draw(cmds []Command) {
	for _, cmd := range cmds {
		switch cmd.Kind {
		case KindRect:
			s.drawRect(cmd)
		case KindLine:
			s.drawLine(cmd)
		case KindPolygon:
			s.drawPolygon(cmd)
		case KindCircle:
			s.drawCircle(cmd)
		case KindArc:
			s.drawArc(cmd)
		case KindGlyph:
			s.drawGlyph(cmd)
		}
	}
}

// aligned shifts odd-width strokes onto pixel centres so that one pixel
// lines stay crisp.
func aligned(v int, width float64) float64 {
	if int(width)%2 == 1 {
		return float64(v) + 0.5
	}
	return float64(v)
}

func (s *Surface) fill(c Color, preserve bool) bool {
	ink, ok := palette[c]
	if !ok {
		return false
	}
	s.dc.SetColor(ink)
	if preserve {
		s.dc.FillPreserve()
	} else {
		s.dc.Fill()
	}
	return true
}

func (s *Surface) stroke(st Style) {
	ink, ok := palette[st.Stroke]
	if !ok {
		s.dc.ClearPath()
		return
	}
	s.dc.SetColor(ink)
	s.dc.SetLineWidth(max(st.LineWidth, 1))
	s.dc.Stroke()
}

func (s *Surface) drawRect(cmd Command) {
	if len(cmd.Points) < 2 {
		return
	}
	a, b := cmd.Points[0], cmd.Points[1]
	w, h := float64(b.X-a.X), float64(b.Y-a.Y)
	if w <= 0 || h <= 0 {
		return
	}
	st := cmd.Style

	// The pen draws inside the rectangle, like the fill
	s.dc.DrawRectangle(float64(a.X), float64(a.Y), w, h)
	if !s.fill(st.Fill, false) {
		s.dc.ClearPath()
	}
	if st.Stroke != None && st.Stroke != st.Fill {
		s.dc.DrawRectangle(float64(a.X)+0.5, float64(a.Y)+0.5, w-1, h-1)
		s.stroke(st)
	}
}

func (s *Surface) drawLine(cmd Command) {
	if len(cmd.Points) < 2 {
		return
	}
	a, b := cmd.Points[0], cmd.Points[1]
	lw := cmd.Style.LineWidth
	s.dc.DrawLine(aligned(a.X, lw), aligned(a.Y, lw), aligned(b.X, lw), aligned(b.Y, lw))
	s.stroke(cmd.Style)
}

func (s *Surface) drawPolygon(cmd Command) {
	if len(cmd.Points) < 3 {
		return
	}
	s.dc.NewSubPath()
	for i, pt := range cmd.Points {
		if i == 0 {
			s.dc.MoveTo(float64(pt.X), float64(pt.Y))
		} else {
			s.dc.LineTo(float64(pt.X), float64(pt.Y))
		}
	}
	s.dc.ClosePath()
	s.paintPath(cmd.Style)
}

func (s *Surface) drawCircle(cmd Command) {
	if len(cmd.Points) < 1 || cmd.Radius <= 0 {
		return
	}
	c := cmd.Points[0]
	s.dc.DrawCircle(float64(c.X), float64(c.Y), float64(cmd.Radius))
	s.paintPath(cmd.Style)
}

func (s *Surface) drawArc(cmd Command) {
	if len(cmd.Points) < 1 || cmd.Radius <= 0 {
		return
	}
	c := cmd.Points[0]
	s.dc.NewSubPath()
	s.dc.DrawArc(float64(c.X), float64(c.Y), float64(cmd.Radius), cmd.Start, cmd.End)
	s.stroke(cmd.Style)
}

func (s *Surface) paintPath(st Style) {
	if st.Stroke == None {
		if !s.fill(st.Fill, false) {
			s.dc.ClearPath()
		}
		return
	}
	s.fill(st.Fill, true)
	s.stroke(st)
}

// drawGlyph creates a face sized for this glyph alone and releases it
// before returning.
func (s *Surface) drawGlyph(cmd Command) {
	if len(cmd.Points) < 1 || cmd.Text == "" || cmd.Style.FontSize < 1 {
		return
	}
	st := cmd.Style
	f := s.regular
	if st.Bold {
		f = s.bold
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    st.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	s.dc.SetFontFace(face)

	at := cmd.Points[0]
	x, y := float64(at.X), float64(at.Y)
	if st.Opaque {
		w, h := s.dc.MeasureString(cmd.Text)
		left := x - cmd.AnchorX*w
		baseline := y + cmd.AnchorY*h
		s.dc.DrawRectangle(left, baseline-h, w, h)
		s.dc.SetColor(color.White)
		s.dc.Fill()
	}

	ink, ok := palette[st.Stroke]
	if !ok {
		ink = color.Black
	}
	s.dc.SetColor(ink)
	s.dc.DrawStringAnchored(cmd.Text, x, y, cmd.AnchorX, cmd.AnchorY)
}
