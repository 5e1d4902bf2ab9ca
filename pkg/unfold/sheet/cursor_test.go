package sheet

import (
	"testing"

	"github.com/foldline/foldline/pkg/geom"
)

func TestPlaceAdvancesRight(t *testing.T) {
	c := NewCursor(1.0)

	pos, c := c.Place(2, 1)
	if pos != (geom.Point{X: Margin, Y: 1.0}) {
		t.Errorf("first position = %+v", pos)
	}

	pos, c = c.Place(3, 0.5)
	want := geom.Point{X: Margin + 2 + Spacing, Y: 1.0}
	if pos != want {
		t.Errorf("second position = %+v, want %+v", pos, want)
	}

	if c.RowMaxHeight != 1 {
		t.Errorf("RowMaxHeight = %v, want 1", c.RowMaxHeight)
	}
}

func TestPlaceWrapsRow(t *testing.T) {
	c := NewCursor(0)
	c.RowWidth = 5

	_, c = c.Place(3, 2)
	pos, c := c.Place(3, 1)

	want := geom.Point{X: Margin, Y: 2 + Spacing}
	if pos != want {
		t.Errorf("wrapped position = %+v, want %+v", pos, want)
	}
	if c.RowMaxHeight != 1 {
		t.Errorf("RowMaxHeight after wrap = %v, want 1", c.RowMaxHeight)
	}
}

func TestPlaceOversizePanelStaysOnFreshRow(t *testing.T) {
	c := NewCursor(0)
	c.RowWidth = 5

	// Wider than the row: placed anyway at the margin rather than
	// wrapping forever.
	pos, _ := c.Place(8, 1)
	if pos != (geom.Point{X: Margin, Y: 0}) {
		t.Errorf("oversize position = %+v", pos)
	}
}

func TestDeterminism(t *testing.T) {
	sizes := [][2]float64{{2, 1}, {4, 2}, {1, 0.5}, {6, 3}, {2, 2}, {3, 1}}

	run := func() []geom.Point {
		c := NewCursor(0.5)
		c.RowWidth = 8
		out := make([]geom.Point, 0, len(sizes))
		for _, s := range sizes {
			var p geom.Point
			p, c = c.Place(s[0], s[1])
			out = append(out, p)
		}
		return out
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("position %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestNextRowY(t *testing.T) {
	c := NewCursor(1)
	_, c = c.Place(2, 3)
	if got := c.NextRowY(); got != 1+3+Spacing {
		t.Errorf("NextRowY() = %v, want %v", got, 1+3+Spacing)
	}
}
