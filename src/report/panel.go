package report

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/iafilius/AnalyticsReport/src/layout"
	"github.com/iafilius/AnalyticsReport/src/types"
)

// StatLine is one "label value" line of a stat panel. Top is the y of the text top.
type StatLine struct {
	Label  string
	Value  string
	LabelX float64
	ValueX float64
	Top    float64
}

// statLines lays out four lines per stat block, in label order, starting StatDataTop
// below the panel top. The value starts right after the measured label.
func statLines(style Style, face font.Face, stats []types.DateRangeStat, x, y float64) []StatLine {
	g := style.Geometry
	lines := make([]StatLine, 0, 4*len(stats))
	labelX := x + float64(style.TextInset)
	top := y + float64(g.StatDataTop)
	for _, st := range stats {
		for i, v := range st.Values() {
			label := style.Labels.Stats[i]
			lines = append(lines, StatLine{
				Label:  label,
				Value:  style.FormatValue(v),
				LabelX: labelX,
				ValueX: labelX + textWidth(face, label),
				Top:    top,
			})
			top += float64(g.StatLineStep)
		}
		top += float64(g.StatBlockGap)
	}
	return lines
}

// panelRect is the integer rectangle of a panel drawn in slot at y with height h.
func panelRect(slot layout.Slot, y, h int) image.Rectangle {
	return image.Rect(int(slot.X), y, int(slot.X+slot.Width), y+h)
}

// blendPanel composites a rounded panel-colored rectangle over rect at PanelOpacity.
// Pixels outside the rounded corners keep the canvas content.
func (p *renderPass) blendPanel(rect image.Rectangle) {
	visible := rect.Intersect(p.canvas.Bounds())
	if visible.Empty() {
		return
	}
	layer := gg.NewContext(rect.Dx(), rect.Dy())
	layer.DrawRoundedRectangle(0.5, 0.5, float64(rect.Dx())-1, float64(rect.Dy())-1, p.style.CornerRadius)
	layer.SetColor(p.style.PanelColor)
	layer.FillPreserve()
	layer.SetColor(p.style.PanelOutline)
	layer.SetLineWidth(1)
	layer.Stroke()

	region := imaging.Crop(p.canvas, visible)
	offset := rect.Min.Sub(visible.Min)
	blended := imaging.Overlay(region, layer.Image(), offset, p.style.PanelOpacity)
	draw.Draw(p.canvas, visible, blended, image.Point{}, draw.Src)
}

func (p *renderPass) drawIcon(path string, x, y int) error {
	im, err := imaging.Open(path)
	if err != nil {
		return assetOpenError("icon", path, err)
	}
	size := p.style.IconSize
	icon := imaging.Resize(im, size, size, imaging.Lanczos)
	at := image.Pt(x+p.style.IconInset, y+p.style.IconInset)
	draw.Draw(p.canvas, image.Rectangle{Min: at, Max: at.Add(image.Pt(size, size))}, icon, image.Point{}, draw.Over)
	return nil
}

// drawStatPanel renders a stat item into slot at y.
func (p *renderPass) drawStatPanel(it types.ReportItem, slot layout.Slot, y int) error {
	stats, _ := it.Stats()
	if len(stats) == 0 {
		return fmt.Errorf("item %q: %w", it.Title(), ErrEmptyStats)
	}
	g := p.style.Geometry
	content := g.StatContentHeight(len(stats))
	if g.Overflows(p.policy, content) {
		Warnf("[panel %s] %d stat blocks need %dpx, fixed row height is %dpx; content overflows into the next row", it.Title(), len(stats), content, g.PanelHeight)
	}
	rect := panelRect(slot, y, g.BoxHeight(p.policy, p.padding, content))
	p.blendPanel(rect)

	textX := float64(p.style.TextInset)
	if it.Icon() != "" {
		if err := p.drawIcon(it.Icon(), rect.Min.X, y); err != nil {
			return fmt.Errorf("item %q: %w", it.Title(), err)
		}
		textX = float64(p.style.IconTextX)
	}

	titleFace := p.fonts.face(p.style.TitleTextSize)
	p.dc.SetFontFace(titleFace)
	p.dc.SetColor(p.style.TextColor)
	p.dc.DrawString(it.Title(), slot.X+textX, float64(y+p.style.TextInset)+ascent(titleFace))

	face := p.fonts.face(p.style.MainTextSize)
	p.dc.SetFontFace(face)
	base := ascent(face)
	for _, ln := range statLines(p.style, face, stats, slot.X, float64(y)) {
		p.dc.SetColor(p.style.TextColor)
		p.dc.DrawString(ln.Label, ln.LabelX, ln.Top+base)
		p.dc.SetColor(p.style.AccentColor)
		p.dc.DrawString(ln.Value, ln.ValueX, ln.Top+base)
	}
	Debugf("[panel %s] x=%.1f y=%d w=%.1f h=%d blocks=%d icon=%t", it.Title(), slot.X, y, slot.Width, rect.Dy(), len(stats), it.Icon() != "")
	return nil
}
