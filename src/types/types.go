// Package types holds the report data model shared by the renderers and the
// definition loader.
package types

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyStats is returned when a stat item is built without any stat blocks.
	ErrEmptyStats = errors.New("stat item has no data")
	// ErrSeriesLength is returned when dates and values differ in length.
	ErrSeriesLength = errors.New("chart series dates/values length mismatch")
)

// DateRangeStat is one stat block: today, this week, this month and all time counters.
type DateRangeStat struct {
	Today     float64 `mapstructure:"today" json:"today"`
	ThisWeek  float64 `mapstructure:"week" json:"week"`
	ThisMonth float64 `mapstructure:"month" json:"month"`
	AllTime   float64 `mapstructure:"all_time" json:"all_time"`
}

// Values returns the counters in display order.
func (d DateRangeStat) Values() [4]float64 {
	return [4]float64{d.Today, d.ThisWeek, d.ThisMonth, d.AllTime}
}

// ChartSeries is a date-indexed numeric series. Dates use the dd.mm.yyyy format.
type ChartSeries struct {
	Title  string    `mapstructure:"title" json:"title"`
	XLabel string    `mapstructure:"x_label" json:"x_label"`
	YLabel string    `mapstructure:"y_label" json:"y_label"`
	Dates  []string  `mapstructure:"dates" json:"dates"`
	Values []float64 `mapstructure:"values" json:"values"`
}

// Validate checks the parallel sequences are the same length.
func (s ChartSeries) Validate() error {
	if len(s.Dates) != len(s.Values) {
		return fmt.Errorf("%w: %d dates, %d values", ErrSeriesLength, len(s.Dates), len(s.Values))
	}
	return nil
}

// ItemKind discriminates the two ReportItem variants.
type ItemKind int

const (
	KindStats ItemKind = iota + 1
	KindChart
)

func (k ItemKind) String() string {
	switch k {
	case KindStats:
		return "stats"
	case KindChart:
		return "chart"
	default:
		return "unknown"
	}
}

// ReportItem is one display unit in a row. It holds either stat blocks or a chart,
// never both; the variant is fixed by the constructor used.
type ReportItem struct {
	title string
	icon  string
	kind  ItemKind
	stats []DateRangeStat
	chart ChartSeries
}

// NewStatItem builds a stat panel item. icon may be empty.
func NewStatItem(title, icon string, stats ...DateRangeStat) (ReportItem, error) {
	if len(stats) == 0 {
		return ReportItem{}, fmt.Errorf("item %q: %w", title, ErrEmptyStats)
	}
	cp := make([]DateRangeStat, len(stats))
	copy(cp, stats)
	return ReportItem{title: title, icon: icon, kind: KindStats, stats: cp}, nil
}

// NewChartItem builds a chart item. The series must have equal-length dates and values.
func NewChartItem(title string, series ChartSeries) (ReportItem, error) {
	if err := series.Validate(); err != nil {
		return ReportItem{}, fmt.Errorf("item %q: %w", title, err)
	}
	series.Dates = append([]string(nil), series.Dates...)
	series.Values = append([]float64(nil), series.Values...)
	return ReportItem{title: title, kind: KindChart, chart: series}, nil
}

func (it ReportItem) Title() string  { return it.title }
func (it ReportItem) Icon() string   { return it.icon }
func (it ReportItem) Kind() ItemKind { return it.kind }

// Stats returns the stat blocks and true for a stat item.
func (it ReportItem) Stats() ([]DateRangeStat, bool) {
	if it.kind != KindStats {
		return nil, false
	}
	return it.stats, true
}

// Chart returns the series and true for a chart item.
func (it ReportItem) Chart() (ChartSeries, bool) {
	if it.kind != KindChart {
		return ChartSeries{}, false
	}
	return it.chart, true
}

// ReportRow is a horizontal band of items rendered left to right.
type ReportRow struct {
	Items []ReportItem
}

// NewRow is a convenience constructor.
func NewRow(items ...ReportItem) ReportRow {
	return ReportRow{Items: items}
}
