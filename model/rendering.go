package model

import (
	"io"
	"strings"
)

const (
	liveCell = '*'
	deadCell = '-'
)

// TextRenderer serializes a grid using the character-grid convention:
// '*' for a live cell, '-' for a dead one, one line of text per row.
type TextRenderer struct{}

// RenderString returns the serialized grid. Rows are joined by line
// breaks with no trailing break after the last row; an empty grid
// renders as the empty string.
func (r *TextRenderer) RenderString(g *Grid) string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))

	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			if g.Get(x, y) {
				sb.WriteByte(liveCell)
			} else {
				sb.WriteByte(deadCell)
			}
		}
	}
	return sb.String()
}

// Render writes the serialized grid to w
func (r *TextRenderer) Render(g *Grid, w io.Writer) error {
	_, err := io.WriteString(w, r.RenderString(g))
	return err
}
