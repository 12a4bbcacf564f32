// Package report composes the analytics report image: a background canvas with rows of
// semi-transparent stat panels and charts, stacked top to bottom, and a footer info bar.
//
// Usage:
//
//	cfg, err := report.NewConfig("font.ttf", "background.png")
//	r := report.New(800, 800, "@bot", cfg)
//	err = r.AddRow("orders", types.NewRow(item1, item2))
//	img, err := r.Render()
//
// Rendering is single-threaded and deterministic for a fixed clock (see WithClock).
package report

import (
	"fmt"
	"image"
	"image/draw"
	"time"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/iafilius/AnalyticsReport/src/chart"
	"github.com/iafilius/AnalyticsReport/src/layout"
	"github.com/iafilius/AnalyticsReport/src/types"
)

// DefaultPadding is the gap used around rows, between slots and around the footer.
const DefaultPadding = 10

// Report owns the canvas size, the assets, the footer label and the ordered rows.
type Report struct {
	width, height int
	label         string
	config        Config
	padding       int
	style         Style
	policy        layout.RowHeightPolicy
	now           func() time.Time
	rows          *orderedmap.OrderedMap[string, types.ReportRow]
	rendered      bool
}

// Option customizes a Report.
type Option func(*Report)

func WithPadding(p int) Option { return func(r *Report) { r.padding = p } }

func WithStyle(s Style) Option { return func(r *Report) { r.style = s } }

// WithClock fixes the time used for the footer date.
func WithClock(now func() time.Time) Option { return func(r *Report) { r.now = now } }

func WithRowHeightPolicy(p layout.RowHeightPolicy) Option {
	return func(r *Report) { r.policy = p }
}

// New creates an empty report. label is shown in the footer.
// Rows advance by their content height by default (layout.RowHeightContent), not by the
// flat 100+padding of the classic layout; pass WithRowHeightPolicy(layout.RowHeightFixed)
// to get that behavior.
func New(width, height int, label string, cfg Config, opts ...Option) *Report {
	r := &Report{
		width:   width,
		height:  height,
		label:   label,
		config:  cfg,
		padding: DefaultPadding,
		style:   DefaultStyle(),
		policy:  layout.RowHeightContent,
		now:     time.Now,
		rows:    orderedmap.New[string, types.ReportRow](),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// AddRow registers row under a unique title. Rows render in insertion order.
func (r *Report) AddRow(title string, row types.ReportRow) error {
	if r.rendered {
		return ErrReportRendered
	}
	if _, ok := r.rows.Get(title); ok {
		return fmt.Errorf("add row %q: %w", title, ErrDuplicateRowTitle)
	}
	r.rows.Set(title, row)
	return nil
}

// RowTitles returns the row titles in render order.
func (r *Report) RowTitles() []string {
	out := make([]string, 0, r.rows.Len())
	for pair := r.rows.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Row returns the row registered under title.
func (r *Report) Row(title string) (types.ReportRow, bool) {
	return r.rows.Get(title)
}

func (r *Report) Size() (int, int) { return r.width, r.height }

// renderPass is the state of one Render call.
type renderPass struct {
	canvas  *image.RGBA
	dc      *gg.Context
	fonts   *fontSet
	charts  chart.Renderer
	style   Style
	policy  layout.RowHeightPolicy
	width   int
	height  int
	padding int
}

// Render builds the canvas from scratch. Any error aborts the whole render and no
// image is returned. After the first successful render no rows can be added.
func (r *Report) Render() (*image.RGBA, error) {
	defer TimeTrack(time.Now(), "render report")
	if r.width <= 0 || r.height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidCanvas, r.width, r.height)
	}

	bg, err := imaging.Open(r.config.BackgroundPath)
	if err != nil {
		return nil, assetOpenError("background", r.config.BackgroundPath, err)
	}
	canvas := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(r.style.PanelColor), image.Point{}, draw.Src)
	draw.Draw(canvas, bg.Bounds().Sub(bg.Bounds().Min), bg, bg.Bounds().Min, draw.Over)

	fonts, err := loadFonts(r.config.FontPath)
	if err != nil {
		return nil, err
	}
	defer fonts.Close()

	charts := chart.DefaultRenderer(fonts.font)
	charts.Width, charts.Height = r.style.ChartWidth, r.style.ChartHeight
	charts.FontSize = r.style.ChartTextSize

	p := &renderPass{
		canvas:  canvas,
		dc:      gg.NewContextForRGBA(canvas),
		fonts:   fonts,
		charts:  charts,
		style:   r.style,
		policy:  r.policy,
		width:   r.width,
		height:  r.height,
		padding: r.padding,
	}

	y := r.padding
	for pair := r.rows.Oldest(); pair != nil; pair = pair.Next() {
		extent, err := p.renderRow(pair.Key, pair.Value, y)
		if err != nil {
			return nil, err
		}
		y += extent
	}
	if footer := r.style.Geometry.FooterRect(r.width, r.height, r.padding); y > footer.Y {
		Warnf("[report] rows end at y=%d, below the footer top y=%d", y, footer.Y)
	}
	p.drawFooter(r.now(), r.label)

	r.rendered = true
	Infof("[report] rendered %dx%d rows=%d", r.width, r.height, r.rows.Len())
	return canvas, nil
}
