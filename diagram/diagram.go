// Package diagram renders positions as SVG board images.
package diagram

import (
	"errors"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"qchess/board"
)

// Options control the rendered image. The zero value is usable.
type Options struct {
	Size        int    // board edge in pixels; 400 when zero
	Coordinates bool   // draw file letters and rank digits
	Flip        bool   // draw from Black's side
	Light, Dark string // square colours
}

const (
	defaultSize  = 400
	defaultLight = "#f0d9b5"
	defaultDark  = "#b58863"
)

var ErrSize = errors.New("diagram: size too small")

// errWriter keeps the first write error; svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(b)
	if err != nil {
		e.err = err
	}
	return n, err
}

// Write draws p to w as an 8x8 SVG board with the Unicode piece glyphs. It
// returns the first error w reported.
func Write(w io.Writer, p *board.Position, opts Options) error {
	opts = opts.withDefaults()
	if opts.Size < 64 {
		return fmt.Errorf("%w: %d", ErrSize, opts.Size)
	}
	sq := opts.Size / 8
	edge := sq * 8

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(edge, edge)
	canvas.Title(p.FEN())
	for rank := board.Rank8; rank >= board.Rank1; rank-- {
		for file := board.FileA; file <= board.FileH; file++ {
			s, _ := board.SquareAt(rank, file)
			x, y := opts.origin(s, sq)

			colour := opts.Light
			if (int(rank)+int(file))%2 == 0 {
				colour = opts.Dark
			}
			canvas.Rect(x, y, sq, sq, "fill:"+colour)

			if pc := p.PieceAt(s); !pc.Empty() {
				canvas.Text(x+sq/2, y+sq*4/5, pc.Glyph(),
					fmt.Sprintf("text-anchor:middle;font-size:%dpx;fill:black", sq*3/4))
			}
		}
	}
	if opts.Coordinates {
		opts.drawCoordinates(canvas, sq)
	}
	canvas.End()
	return ew.err
}

func (o Options) withDefaults() Options {
	if o.Size == 0 {
		o.Size = defaultSize
	}
	if o.Light == "" {
		o.Light = defaultLight
	}
	if o.Dark == "" {
		o.Dark = defaultDark
	}
	return o
}

// origin returns the top left pixel of s.
func (o Options) origin(s board.Square, sq int) (int, int) {
	col, row := int(s.File()), 7-int(s.Rank())
	if o.Flip {
		col, row = 7-col, 7-row
	}
	return col * sq, row * sq
}

func (o Options) drawCoordinates(canvas *svg.SVG, sq int) {
	style := fmt.Sprintf("font-size:%dpx;fill:#333", sq/6)
	for file := board.FileA; file <= board.FileH; file++ {
		s, _ := board.SquareAt(board.Rank1, file)
		if o.Flip {
			s, _ = board.SquareAt(board.Rank8, file)
		}
		x, y := o.origin(s, sq)
		canvas.Text(x+sq-sq/6, y+sq-sq/20, file.String(), style)
	}
	for rank := board.Rank1; rank <= board.Rank8; rank++ {
		s, _ := board.SquareAt(rank, board.FileA)
		if o.Flip {
			s, _ = board.SquareAt(rank, board.FileH)
		}
		x, y := o.origin(s, sq)
		canvas.Text(x+sq/20, y+sq/5, rank.String(), style)
	}
}
