package layout

import (
	"errors"
	"math"
	"testing"
)

func TestColumnSlots_Empty(t *testing.T) {
	g := DefaultGeometry()
	if _, err := g.ColumnSlots(800, 10, 0); !errors.Is(err, ErrEmptyColumn) {
		t.Fatalf("expected ErrEmptyColumn, got %v", err)
	}
}

func TestColumnSlots_SingleCentered(t *testing.T) {
	g := DefaultGeometry()
	for _, w := range []int{300, 800, 1201} {
		slots, err := g.ColumnSlots(w, 10, 1)
		if err != nil {
			t.Fatalf("ColumnSlots(%d): %v", w, err)
		}
		if len(slots) != 1 {
			t.Fatalf("want 1 slot got %d", len(slots))
		}
		wantX := float64(w)/2 - 75
		if slots[0].X != wantX || slots[0].Width != 150 {
			t.Fatalf("width %d: slot=%+v want x=%v w=150", w, slots[0], wantX)
		}
	}
}

func TestColumnSlots_MultiUniform(t *testing.T) {
	g := DefaultGeometry()
	cases := []struct {
		canvas, padding, n int
	}{
		{800, 10, 2},
		{800, 10, 4},
		{800, 10, 3},
		{1200, 16, 5},
	}
	for _, c := range cases {
		slots, err := g.ColumnSlots(c.canvas, c.padding, c.n)
		if err != nil {
			t.Fatalf("%+v: %v", c, err)
		}
		if len(slots) != c.n {
			t.Fatalf("%+v: got %d slots", c, len(slots))
		}
		wantW := float64(c.canvas)/float64(c.n) - 20
		if slots[0].X != float64(c.padding) {
			t.Fatalf("%+v: first slot x=%v want %d", c, slots[0].X, c.padding)
		}
		for i, s := range slots {
			if math.Abs(s.Width-wantW) > 1e-9 {
				t.Fatalf("%+v: slot %d width=%v want %v", c, i, s.Width, wantW)
			}
			if i == 0 {
				continue
			}
			prev := slots[i-1]
			gap := s.X - (prev.X + prev.Width)
			if math.Abs(gap-float64(2*c.padding)) > 1e-9 {
				t.Fatalf("%+v: gap between %d and %d = %v want %d", c, i-1, i, gap, 2*c.padding)
			}
			if s.X < prev.X+prev.Width {
				t.Fatalf("%+v: slots %d and %d overlap", c, i-1, i)
			}
		}
	}
}

func TestStatContentHeight(t *testing.T) {
	g := DefaultGeometry()
	cases := map[int]int{0: 100, 1: 100, 2: 260, 3: 420}
	for blocks, want := range cases {
		if got := g.StatContentHeight(blocks); got != want {
			t.Fatalf("blocks=%d got %d want %d", blocks, got, want)
		}
	}
}

func TestRowExtent_Policies(t *testing.T) {
	g := DefaultGeometry()
	if got := g.RowExtent(RowHeightFixed, 10, 100, 400); got != 110 {
		t.Fatalf("fixed policy extent=%d want 110", got)
	}
	if got := g.RowExtent(RowHeightContent, 10, 100); got != 110 {
		t.Fatalf("content policy single block extent=%d want 110", got)
	}
	if got := g.RowExtent(RowHeightContent, 10, 100, 260); got != 270 {
		t.Fatalf("content policy tall extent=%d want 270", got)
	}
	if got := g.RowExtent(RowHeightContent, 10, 40); got != 110 {
		t.Fatalf("content policy short extent=%d want 110", got)
	}
	if !g.Overflows(RowHeightFixed, 400) || g.Overflows(RowHeightContent, 400) || g.Overflows(RowHeightFixed, 100) {
		t.Fatalf("overflow detection mismatch")
	}
}

func TestParseRowHeightPolicy(t *testing.T) {
	for in, want := range map[string]RowHeightPolicy{"": RowHeightContent, "content": RowHeightContent, " FIXED ": RowHeightFixed} {
		got, err := ParseRowHeightPolicy(in)
		if err != nil || got != want {
			t.Fatalf("parse %q => %v, %v", in, got, err)
		}
	}
	if _, err := ParseRowHeightPolicy("auto"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}

func TestFooterRect(t *testing.T) {
	r := DefaultGeometry().FooterRect(800, 800, 10)
	if r != (Rect{X: 10, Y: 710, W: 780, H: 80}) {
		t.Fatalf("footer rect %+v", r)
	}
}

func TestFitWidth(t *testing.T) {
	if w, h := FitWidth(770, 400, 800); w != 770 || h != 400 {
		t.Fatalf("fitting chart resized: %dx%d", w, h)
	}
	w, h := FitWidth(770, 400, 385)
	if w != 385 || h != 200 {
		t.Fatalf("downscale got %dx%d want 385x200", w, h)
	}
	if w, _ := FitWidth(770, 400, 0); w != 770 {
		t.Fatalf("zero max must not resize")
	}
}
