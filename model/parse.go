package model

import "strings"

// ParseRows converts a raw text block into a ragged boolean matrix.
// Lines are split on carriage-return/line-feed boundaries with empty
// lines discarded; '*' marks a live cell, any other character a dead
// one. The result is not yet rectangular, see GridFromRows.
func ParseRows(raw string) [][]bool {
	lines := strings.FieldsFunc(raw, isLineBreak)

	rows := make([][]bool, 0, len(lines))
	for _, line := range lines {
		row := make([]bool, len(line))
		for i := 0; i < len(line); i++ {
			row[i] = line[i] == liveCell
		}
		rows = append(rows, row)
	}
	return rows
}

func isLineBreak(r rune) bool {
	return r == '\r' || r == '\n'
}
