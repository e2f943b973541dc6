// Package render draws positions for people: a plain text board for terminals and an SVG
// diagram.
package render

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/EricGlover/chess-engine-sub000/board"
)

// Options control both renderers.
type Options struct {
	// Flip draws the board from Black's side.
	Flip bool
	// LastMove, when not the zero Move, is highlighted.
	LastMove board.Move
	// SquareSize is the SVG square edge in pixels; zero means 45.
	SquareSize int
}

func (o Options) squareSize() int {
	if o.SquareSize <= 0 {
		return 45
	}
	return o.SquareSize
}

// order returns ranks and files in drawing order, top-left first.
func (o Options) order() (ranks, files [8]int) {
	for i := 0; i < 8; i++ {
		ranks[i], files[i] = 8-i, i+1
		if o.Flip {
			ranks[i], files[i] = i+1, 8-i
		}
	}
	return ranks, files
}

// Text writes an ASCII board with rank and file labels, followed by the side to move.
func Text(w io.Writer, p *board.Position, opts Options) error {
	ranks, files := opts.order()
	var sb strings.Builder
	for _, r := range ranks {
		fmt.Fprintf(&sb, "%d ", r)
		for _, f := range files {
			sq := board.Coord(f, r)
			ch := p.PieceAt(sq).Rune()
			if !opts.LastMove.IsZero() && (sq == opts.LastMove.From || sq == opts.LastMove.To) && ch == '.' {
				ch = '*'
			}
			sb.WriteRune(ch)
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for _, f := range files {
		sb.WriteByte(byte('a' + f - 1))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "%s to move\n", p.Turn())
	_, err := io.WriteString(w, sb.String())
	return err
}

// Unicode glyphs indexed by [color][type].
var glyphs = [2][7]string{
	board.White: {"", "♙", "♘", "♗", "♖", "♕", "♔"},
	board.Black: {"", "♟", "♞", "♝", "♜", "♛", "♚"},
}

const (
	lightSquare = "fill:#f0d9b5"
	darkSquare  = "fill:#b58863"
	highlight   = "fill:#cdd26a;fill-opacity:0.8"
	labelStyle  = "font-family:sans-serif;font-size:%dpx;fill:#333"
	pieceStyle  = "font-size:%dpx;text-anchor:middle;dominant-baseline:central"
)

// SVG writes the position as a standalone SVG document with coordinates along the edges.
func SVG(w io.Writer, p *board.Position, opts Options) {
	size := opts.squareSize()
	margin := size / 2
	total := 8*size + 2*margin
	ranks, files := opts.order()

	canvas := svg.New(w)
	canvas.Start(total, total)
	canvas.Rect(0, 0, total, total, "fill:white")

	canvas.Gid("squares")
	for row, r := range ranks {
		for col, f := range files {
			x, y := margin+col*size, margin+row*size
			style := lightSquare
			if (f+r)%2 == 0 {
				style = darkSquare
			}
			canvas.Rect(x, y, size, size, style)
			sq := board.Coord(f, r)
			if !opts.LastMove.IsZero() && (sq == opts.LastMove.From || sq == opts.LastMove.To) {
				canvas.Rect(x, y, size, size, highlight)
			}
		}
	}
	canvas.Gend()

	canvas.Gid("labels")
	label := fmt.Sprintf(labelStyle, size/4)
	for i := 0; i < 8; i++ {
		canvas.Text(margin/3, margin+i*size+size/2, fmt.Sprint(ranks[i]), label)
		canvas.Text(margin+i*size+size/2-size/12, total-margin/4, string(rune('a'+files[i]-1)), label)
	}
	canvas.Gend()

	canvas.Gid("pieces")
	piece := fmt.Sprintf(pieceStyle, size*3/4)
	for row, r := range ranks {
		for col, f := range files {
			pc := p.PieceAt(board.Coord(f, r))
			if pc.IsEmpty() {
				continue
			}
			canvas.Text(margin+col*size+size/2, margin+row*size+size/2, glyphs[pc.Color][pc.Type], piece)
		}
	}
	canvas.Gend()
	canvas.End()
}
