// Package render turns grid cells into lists of drawing commands and
// executes those lists on a raster surface.
//
// Rendering is a pure function of the grid and a coordinate: any
// randomness is drawn from a generator seeded by the cell's coordinate, so
// repainting an unedited cell always yields the same commands.
package render

import "fmt"

type Kind uint8

const (
	KindRect Kind = iota
	KindLine
	KindPolygon
	KindCircle
	KindArc
	KindGlyph
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindLine:
		return "line"
	case KindPolygon:
		return "polygon"
	case KindCircle:
		return "circle"
	case KindArc:
		return "arc"
	case KindGlyph:
		return "glyph"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Color is one of the few inks the map is drawn with.
type Color uint8

const (
	None Color = iota
	Black
	White
	Gray
)

// Point is a pixel position in map space.
type Point struct {
	X, Y int
}

func (p Point) Add(dx, dy int) Point { return Point{p.X + dx, p.Y + dy} }

// Style is the pen and brush for one command. A zero Stroke or Fill means
// that part is not drawn.
type Style struct {
	LineWidth float64
	Stroke    Color
	Fill      Color
	FontSize  float64 // pixels, glyphs only
	Bold      bool
	Opaque    bool // paint a white box behind the glyph
}

// Command is a single drawing primitive.
//
// Points is interpreted by Kind:
//
//	Rect     [top-left, bottom-right), right and bottom exclusive
//	Line     [from, to]
//	Polygon  vertices, implicitly closed
//	Circle   [center] with Radius
//	Arc      [center] with Radius, swept clockwise from Start to End
//	Glyph    [anchor] with AnchorX/AnchorY as fractions of the text extent
type Command struct {
	Kind   Kind
	Style  Style
	Points []Point
	Radius int

	// Arc angles in radians, screen orientation (y down).
	Start, End float64

	Text             string
	AnchorX, AnchorY float64
}

// Shared pens and brushes. Style is a value type, so commands get copies.
var (
	thinBlack    = Style{LineWidth: 1, Stroke: Black}
	thickBlack   = Style{LineWidth: 3, Stroke: Black}
	thinGray     = Style{LineWidth: 1, Stroke: Gray}
	solidBlack   = Style{LineWidth: 1, Stroke: Black, Fill: Black}
	solidWhite   = Style{LineWidth: 1, Stroke: White, Fill: White}
	outlineWhite = Style{LineWidth: 1, Stroke: Black, Fill: White}
)

func rect(min, max Point, st Style) Command {
	return Command{Kind: KindRect, Style: st, Points: []Point{min, max}}
}

func line(a, b Point, st Style) Command {
	return Command{Kind: KindLine, Style: st, Points: []Point{a, b}}
}

func polygon(pts []Point, st Style) Command {
	return Command{Kind: KindPolygon, Style: st, Points: pts}
}

func circle(center Point, radius int, st Style) Command {
	return Command{Kind: KindCircle, Style: st, Points: []Point{center}, Radius: radius}
}

func arc(center Point, radius int, start, end float64, st Style) Command {
	return Command{Kind: KindArc, Style: st, Points: []Point{center}, Radius: radius, Start: start, End: end}
}

func glyph(text string, at Point, ax, ay float64, st Style) Command {
	return Command{Kind: KindGlyph, Style: st, Points: []Point{at}, Text: text, AnchorX: ax, AnchorY: ay}
}

// fontStyle is a transparent black glyph of the given pixel size.
func fontStyle(size int, bold bool) Style {
	return Style{Stroke: Black, FontSize: float64(size), Bold: bold}
}
