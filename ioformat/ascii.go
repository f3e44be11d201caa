// File: ascii.go
// Role: the ASCII rendering of a visibility representation: an
// (M+1)*(2N) character grid, '-' for a vertex's horizontal strip, '|' for
// an edge's vertical segment, the vertex's decimal index centered on its
// strip.

package ioformat

import (
	"bufio"
	"io"
	"strconv"

	"github.com/lowpoint/planarity/core"
	"github.com/lowpoint/planarity/drawing"
)

// RenderASCII draws layout as a grid of 2*N rows (vertex v's strip sits on
// row 2*VertexPos[v]) by M+1 columns (edge e's segment sits on column
// Pos(e)), and writes it to w, one grid row per line.
func RenderASCII(w io.Writer, g *core.Graph, layout *drawing.Layout) error {
	rows := 2 * layout.N
	cols := layout.M + 1
	if rows == 0 {
		rows = 1
	}
	if cols == 0 {
		cols = 1
	}
	grid := make([][]byte, rows)
	for r := range grid {
		grid[r] = make([]byte, cols)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}

	for v := 0; v < layout.N; v++ {
		row := 2 * layout.VertexPos[v]
		lo, hi := layout.VertexStart[v], layout.VertexEnd[v]
		for c := lo; c <= hi && c < cols; c++ {
			grid[row][c] = '-'
		}
		label := strconv.Itoa(v)
		mid := lo + (hi-lo)/2 - len(label)/2
		for i, ch := range []byte(label) {
			c := mid + i
			if c >= 0 && c < cols {
				grid[row][c] = ch
			}
		}
	}

	for v := 0; v < layout.N; v++ {
		g.ForEachArc(v, func(e int) {
			if g.Neighbor(e) < v {
				return // draw each undirected edge once, from its lower endpoint
			}
			col := g.Pos(e)
			lo, hi := g.ArcStart(e), g.ArcEnd(e)
			for row := 2*lo + 1; row < 2*hi && row < rows; row++ {
				if grid[row][col] == ' ' {
					grid[row][col] = '|'
				}
			}
		})
	}

	bw := bufio.NewWriter(w)
	for _, row := range grid {
		if _, err := bw.Write(row); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
