package report

import "time"

// drawFooter draws the info bar anchored to the bottom-left of the canvas: generation
// date in the text color, then the display label in the info color at a fixed offset.
func (p *renderPass) drawFooter(now time.Time, label string) {
	r := p.style.Geometry.FooterRect(p.width, p.height, p.padding)
	x, y := float64(r.X), float64(r.Y)
	p.dc.DrawRoundedRectangle(x, y, float64(r.W), float64(r.H), p.style.CornerRadius)
	p.dc.SetColor(p.style.PanelColor)
	p.dc.Fill()

	face := p.fonts.face(p.style.InfoTextSize)
	p.dc.SetFontFace(face)
	baseline := y + float64(p.style.FooterTextY) + ascent(face)

	textX := x + float64(p.style.FooterTextX)
	p.dc.SetColor(p.style.TextColor)
	p.dc.DrawString(p.style.FooterText(now.Format(p.style.DateLayout)), textX, baseline)

	textX += x + float64(p.style.FooterLabelGap)
	p.dc.SetColor(p.style.InfoColor)
	p.dc.DrawString(label, textX, baseline)
}
