// Package layout holds the pure geometry of the report: column slots inside a row,
// row extents, panel heights and the footer rectangle. Nothing here draws.
package layout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyColumn is returned when a row has no items to lay out.
var ErrEmptyColumn = errors.New("no data: row has no items")

// Geometry is the fixed set of sizes used by the layout rules.
type Geometry struct {
	PanelHeight      int // nominal content height of a row (padding excluded)
	SinglePanelWidth int // width of the centered slot when a row has one item
	SlotGutter       int // subtracted from canvasWidth/n for multi-item rows
	StatLineStep     int // vertical step between stat lines
	StatBlockGap     int // extra gap after each stat block
	StatDataTop      int // offset of the first stat line below the panel top
	FooterHeight     int
}

// DefaultGeometry returns the sizes the report has always used.
func DefaultGeometry() Geometry {
	return Geometry{
		PanelHeight:      100,
		SinglePanelWidth: 150,
		SlotGutter:       20,
		StatLineStep:     20,
		StatBlockGap:     80,
		StatDataTop:      30,
		FooterHeight:     80,
	}
}

// Slot is the horizontal placement of one item in a row.
type Slot struct {
	X     float64
	Width float64
}

// ColumnSlots computes slot positions for n items on a canvas of the given width.
// One item gets a fixed-width centered slot; more items share the width evenly,
// starting at padding and advancing by width + 2*padding.
func (g Geometry) ColumnSlots(canvasWidth, padding, n int) ([]Slot, error) {
	switch {
	case n <= 0:
		return nil, ErrEmptyColumn
	case n == 1:
		w := float64(g.SinglePanelWidth)
		return []Slot{{X: float64(canvasWidth)/2 - w/2, Width: w}}, nil
	}
	width := float64(canvasWidth)/float64(n) - float64(g.SlotGutter)
	slots := make([]Slot, n)
	x := float64(padding)
	for i := range slots {
		slots[i] = Slot{X: x, Width: width}
		x += width + float64(padding*2)
	}
	return slots, nil
}

// StatContentHeight is the height needed by a panel holding the given number of stat
// blocks. The nominal panel height fits one block; each further block adds its four
// lines plus the block gap.
func (g Geometry) StatContentHeight(blocks int) int {
	if blocks <= 1 {
		return g.PanelHeight
	}
	perBlock := 4*g.StatLineStep + g.StatBlockGap
	return g.PanelHeight + (blocks-1)*perBlock
}

// RowHeightPolicy decides how far the cursor advances after a row.
type RowHeightPolicy int

const (
	// RowHeightContent advances by max(PanelHeight, tallest content) + padding.
	RowHeightContent RowHeightPolicy = iota
	// RowHeightFixed always advances by PanelHeight + padding; tall content overflows.
	RowHeightFixed
)

func (p RowHeightPolicy) String() string {
	switch p {
	case RowHeightFixed:
		return "fixed"
	default:
		return "content"
	}
}

// ParseRowHeightPolicy maps "content" / "fixed" to a policy. Empty means content.
func ParseRowHeightPolicy(s string) (RowHeightPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "content":
		return RowHeightContent, nil
	case "fixed":
		return RowHeightFixed, nil
	}
	return RowHeightContent, fmt.Errorf("unknown row height policy %q (want content|fixed)", s)
}

// BoxHeight is the drawn height of a panel (padding band included) for the given
// content height.
func (g Geometry) BoxHeight(policy RowHeightPolicy, padding, contentHeight int) int {
	if policy == RowHeightFixed || contentHeight < g.PanelHeight {
		return g.PanelHeight + padding
	}
	return contentHeight + padding
}

// RowExtent returns how far the cursor advances after a row whose items need the
// given content heights.
func (g Geometry) RowExtent(policy RowHeightPolicy, padding int, contentHeights ...int) int {
	tallest := 0
	for _, h := range contentHeights {
		if h > tallest {
			tallest = h
		}
	}
	return g.BoxHeight(policy, padding, tallest)
}

// Overflows reports whether content drawn under the policy would spill past its row.
func (g Geometry) Overflows(policy RowHeightPolicy, contentHeight int) bool {
	return policy == RowHeightFixed && contentHeight > g.PanelHeight
}

// Rect is an integer rectangle given by origin and size.
type Rect struct {
	X, Y, W, H int
}

// FooterRect anchors the footer panel to the bottom-left of the canvas.
func (g Geometry) FooterRect(canvasWidth, canvasHeight, padding int) Rect {
	return Rect{
		X: padding,
		Y: canvasHeight - padding - g.FooterHeight,
		W: canvasWidth - padding*2,
		H: g.FooterHeight,
	}
}

// FitWidth scales (w, h) down proportionally so w does not exceed maxW.
// Sizes that already fit are returned unchanged.
func FitWidth(w, h, maxW int) (int, int) {
	if maxW <= 0 || w <= maxW {
		return w, h
	}
	nh := int(float64(h) * float64(maxW) / float64(w))
	if nh < 1 {
		nh = 1
	}
	return maxW, nh
}
