// Package diagram draws a square's attack set as an SVG board.
package diagram

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"knight-tables/attacks"
)

type Options struct {
	// Cell is the side of one square in pixels; 48 when zero.
	Cell  int
	Light string
	Dark  string
	Mark  string
}

func (o Options) withDefaults() Options {
	if o.Cell <= 0 {
		o.Cell = 48
	}
	if o.Light == "" {
		o.Light = "#f0d9b5"
	}
	if o.Dark == "" {
		o.Dark = "#b58863"
	}
	if o.Mark == "" {
		o.Mark = "#d03030"
	}
	return o
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// Render writes an SVG board with rank 8 at the top, from marked with a
// ring and each square of bb marked with a dot.
func Render(w io.Writer, from attacks.Square, bb attacks.Bitboard, opts Options) error {
	if from >= attacks.NumSquares {
		return fmt.Errorf("%w: %d", attacks.ErrInvalidSquare, from)
	}
	o := opts.withDefaults()
	c := o.Cell
	margin := c / 2
	size := attacks.NumFiles*c + 2*margin

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(size, size)
	canvas.Title(fmt.Sprintf("knight attacks from %v", from))
	canvas.Rect(0, 0, size, size, "fill:white")

	for sq := attacks.Square(0); sq < attacks.NumSquares; sq++ {
		x := margin + sq.File()*c
		y := margin + (attacks.NumRanks-1-sq.Rank())*c
		fill := o.Light
		if (sq.File()+sq.Rank())%2 == 0 {
			fill = o.Dark
		}
		canvas.Rect(x, y, c, c, "fill:"+fill)
		switch {
		case sq == from:
			canvas.Circle(x+c/2, y+c/2, c/3, fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d", o.Mark, max(1, c/12)))
		case bb.Has(sq):
			canvas.Circle(x+c/2, y+c/2, c/6, "fill:"+o.Mark)
		}
	}

	label := fmt.Sprintf("font-family:sans-serif;font-size:%dpx;text-anchor:middle", max(8, c/4))
	for i := 0; i < attacks.NumFiles; i++ {
		canvas.Text(margin+i*c+c/2, size-margin/3, string(rune('a'+i)), label)
		canvas.Text(margin/2, margin+(attacks.NumRanks-1-i)*c+c/2+c/8, string(rune('1'+i)), label)
	}
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("render %v: %w", from, ew.err)
	}
	return nil
}
