// File: drawformat.go
// Role: the <DrawPlanar>...</DrawPlanar> auxiliary output format: N lines
// of "i: pos start end" for vertices, then 2M lines for arcs.

package ioformat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lowpoint/planarity/core"
	"github.com/lowpoint/planarity/drawing"
)

// WriteDrawPlanar writes the auxiliary drawing block for g/layout between
// <DrawPlanar> and </DrawPlanar> tags.
func WriteDrawPlanar(w io.Writer, g *core.Graph, layout *drawing.Layout) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "<DrawPlanar>"); err != nil {
		return err
	}
	for v := 0; v < layout.N; v++ {
		if _, err := fmt.Fprintf(bw, "%d: %d %d %d\n", v, layout.VertexPos[v], layout.VertexStart[v], layout.VertexEnd[v]); err != nil {
			return err
		}
	}
	for v := 0; v < layout.N; v++ {
		var werr error
		g.ForEachArc(v, func(e int) {
			if werr != nil {
				return
			}
			_, werr = fmt.Fprintf(bw, "%d %d %d %d %d\n", v, g.Neighbor(e), g.Pos(e), g.ArcStart(e), g.ArcEnd(e))
		})
		if werr != nil {
			return werr
		}
	}
	if _, err := fmt.Fprintln(bw, "</DrawPlanar>"); err != nil {
		return err
	}
	return bw.Flush()
}
