package report

import (
	"fmt"
	"image"
	"image/draw"
	"time"

	"github.com/disintegration/imaging"

	"github.com/iafilius/AnalyticsReport/src/layout"
	"github.com/iafilius/AnalyticsReport/src/types"
)

// chartSize is the drawn size of a chart: full size in a single-item row, scaled down
// to the slot width otherwise.
func (p *renderPass) chartSize(slot layout.Slot, single bool) (int, int) {
	w, h := p.style.ChartWidth, p.style.ChartHeight
	if single {
		return w, h
	}
	return layout.FitWidth(w, h, int(slot.Width))
}

func (p *renderPass) contentHeight(it types.ReportItem, slot layout.Slot, single bool) int {
	switch it.Kind() {
	case types.KindChart:
		_, h := p.chartSize(slot, single)
		return h
	default:
		stats, _ := it.Stats()
		return p.style.Geometry.StatContentHeight(len(stats))
	}
}

// renderRow lays out and draws every item of row at y and returns the cursor advance.
func (p *renderPass) renderRow(title string, row types.ReportRow, y int) (int, error) {
	slots, err := p.style.Geometry.ColumnSlots(p.width, p.padding, len(row.Items))
	if err != nil {
		return 0, fmt.Errorf("row %q: %w", title, err)
	}
	single := len(row.Items) == 1
	heights := make([]int, len(row.Items))
	for i, it := range row.Items {
		heights[i] = p.contentHeight(it, slots[i], single)
	}
	extent := p.style.Geometry.RowExtent(p.policy, p.padding, heights...)
	Debugf("[row %s] y=%d items=%d extent=%d policy=%s", title, y, len(row.Items), extent, p.policy)

	for i, it := range row.Items {
		switch it.Kind() {
		case types.KindStats:
			err = p.drawStatPanel(it, slots[i], y)
		case types.KindChart:
			err = p.drawChart(it, slots[i], y, single)
		default:
			err = fmt.Errorf("item %q: %w", it.Title(), ErrEmptyStats)
		}
		if err != nil {
			return 0, fmt.Errorf("row %q: %w", title, err)
		}
	}
	return extent, nil
}

func (p *renderPass) drawChart(it types.ReportItem, slot layout.Slot, y int, single bool) error {
	series, _ := it.Chart()
	start := time.Now()
	img, err := p.charts.Render(series)
	TimeTrack(start, fmt.Sprintf("[chart %s] render", it.Title()))
	if err != nil {
		return fmt.Errorf("item %q: %w", it.Title(), err)
	}
	x := p.style.ChartInset
	var src image.Image = img
	if !single {
		x = int(slot.X)
		w, h := p.chartSize(slot, single)
		if w != img.Bounds().Dx() || h != img.Bounds().Dy() {
			src = imaging.Resize(img, w, h, imaging.Lanczos)
		}
	}
	b := src.Bounds()
	if p.style.Geometry.Overflows(p.policy, b.Dy()) {
		Warnf("[chart %s] height %dpx exceeds fixed row height %dpx", it.Title(), b.Dy(), p.style.Geometry.PanelHeight)
	}
	draw.Draw(p.canvas, image.Rect(x, y, x+b.Dx(), y+b.Dy()), src, b.Min, draw.Over)
	Debugf("[chart %s] x=%d y=%d size=%dx%d", it.Title(), x, y, b.Dx(), b.Dy())
	return nil
}
