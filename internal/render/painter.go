package render

import "gridmapper/internal/gridmap"

// Canvas receives rendered commands.
type Canvas interface {
	Draw(cmds []Command)
}

// Recorder is a Canvas that keeps every command it is given.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) Draw(cmds []Command) {
	r.Commands = append(r.Commands, cmds...)
}

func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// bleedDepth is how far a rough-edged repaint spreads into neighbours.
// Semi-open cells beyond it are left alone.
const bleedDepth = 1

// Painter paints cells of a grid onto a canvas, including the neighbouring
// lines and rough edges an edit can disturb.
type Painter struct {
	view   View
	canvas Canvas

	// OnPaint, when set, is called for every cell actually painted, with
	// the recursion depth it was painted at.
	OnPaint func(c gridmap.Coord, depth int)
}

func NewPainter(v View, canvas Canvas) *Painter {
	return &Painter{view: v, canvas: canvas}
}

// PaintAll paints every cell, column by column.
func (p *Painter) PaintAll() {
	for x := 0; x < p.view.Width(); x++ {
		for y := 0; y < p.view.Height(); y++ {
			p.paint(gridmap.Coord{X: x, Y: y}, false, 0)
		}
	}
}

// PaintCell repaints one cell. With partial set, the east neighbour's west
// wall and the south neighbour's north wall are redrawn too, since those
// lines overlap c.
func (p *Painter) PaintCell(c gridmap.Coord, partial bool) {
	p.paint(c, partial, 0)
}

func (p *Painter) paint(c gridmap.Coord, partial bool, depth int) {
	v := p.view
	semiOpen := v.Cell(c).Floor.IsSemiOpen()
	if depth > bleedDepth && semiOpen {
		return
	}
	if p.OnPaint != nil {
		p.OnPaint(c, depth)
	}

	p.canvas.Draw(Cell(v, c))

	if partial {
		if e := c.East(); inside(v, e) {
			p.canvas.Draw(WestWall(v, e))
		}
		if s := c.South(); inside(v, s) {
			p.canvas.Draw(NorthWall(v, s))
		}
	}

	// Rough edges of this cell may have been painted over its neighbours
	if v.Display().RoughEdges() && semiOpen {
		for _, n := range []gridmap.Coord{c.West(), c.North(), c.East(), c.South()} {
			if inside(v, n) {
				p.paint(n, true, depth+1)
			}
		}
	}
}
