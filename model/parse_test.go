package model

import (
	"bytes"
	"testing"
)

func TestParseRowsOnlyStarIsLive(t *testing.T) {
	rows := ParseRows("*-*\n-x.")

	expected := [][]bool{
		{true, false, true},
		{false, false, false},
	}
	if len(rows) != len(expected) {
		t.Fatalf("row count = %d, expected %d", len(rows), len(expected))
	}
	for y, row := range expected {
		for x, alive := range row {
			if rows[y][x] != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, rows[y][x], alive)
			}
		}
	}
}

func TestParseRowsSplitsCRLFAndDropsEmptyLines(t *testing.T) {
	rows := ParseRows("**\r\n\r\n--\n\n*-\r")
	if len(rows) != 3 {
		t.Fatalf("row count = %d, expected 3", len(rows))
	}
}

func TestParseRowsKeepsRaggedLengths(t *testing.T) {
	rows := ParseRows("*\n***\n-")
	lengths := []int{1, 3, 1}
	for y, n := range lengths {
		if len(rows[y]) != n {
			t.Fatalf("row %d length = %d, expected %d", y, len(rows[y]), n)
		}
	}
}

func TestParseRowsEmptyInput(t *testing.T) {
	rows := ParseRows("")
	if rows == nil {
		t.Fatal("expected non-nil rows for empty input")
	}
	if len(rows) != 0 {
		t.Fatalf("row count = %d, expected 0", len(rows))
	}
}

func TestRenderStringNoTrailingLineBreak(t *testing.T) {
	g := mustGrid(t, "*-\n-*")

	renderer := &TextRenderer{}
	if got := renderer.RenderString(g); got != "*-\n-*" {
		t.Fatalf("rendered %q, expected %q", got, "*-\n-*")
	}
}

func TestRenderWritesSameBytes(t *testing.T) {
	var (
		g        = mustGrid(t, "--*\n*--")
		renderer = &TextRenderer{}
		buf      bytes.Buffer
	)

	if err := renderer.Render(g, &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if buf.String() != renderer.RenderString(g) {
		t.Fatalf("writer output %q differs from %q", buf.String(), renderer.RenderString(g))
	}
}

func TestParseRenderRoundTrip(t *testing.T) {
	raw := "*--*\n-**-\n----"
	g := mustGrid(t, raw)

	renderer := &TextRenderer{}
	if got := renderer.RenderString(g); got != raw {
		t.Fatalf("round trip produced %q, expected %q", got, raw)
	}
}
