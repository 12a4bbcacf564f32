// Package chart renders a date-indexed series into a line-and-fill raster using go-chart.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/golang/freetype/truetype"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/AnalyticsReport/src/types"
)

const (
	// DateLayout is the accepted input date format (day.month.year, leading zeros optional).
	DateLayout = "2.1.2006"
	// LabelLayout formats x-axis tick labels.
	LabelLayout = "02.01.2006"

	// go-chart converts times to int64 nanoseconds; dates outside these years overflow.
	MinYear = 1678
	MaxYear = 2261
)

var (
	// ErrEmptySeries is returned for a series without any points.
	ErrEmptySeries = errors.New("chart series has no points")
	// ErrDateParse is matched by every *DateParseError.
	ErrDateParse = errors.New("chart date parse error")
)

// DateParseError carries the date string that failed to parse.
type DateParseError struct {
	Index int
	Value string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("chart date %d %q: not in dd.mm.yyyy format: %v", e.Index, e.Value, e.Err)
}

func (e *DateParseError) Unwrap() []error { return []error{ErrDateParse, e.Err} }

// Renderer turns a ChartSeries into an image of a fixed size.
type Renderer struct {
	Width         int
	Height        int
	Font          *truetype.Font // nil falls back to go-chart's default font
	FontSize      float64        // title, axis names and tick labels
	LineColor     drawing.Color
	FillColor     drawing.Color
	GridColor     drawing.Color
	MaxDayTicks   int
	TickRotation  float64
	BackgroundCol drawing.Color
}

// DefaultRenderer mirrors the report's historic chart: 770x400, blue line, 10% blue fill.
func DefaultRenderer(font *truetype.Font) Renderer {
	return Renderer{
		Width:         770,
		Height:        400,
		Font:          font,
		FontSize:      10,
		LineColor:     drawing.Color{R: 31, G: 119, B: 180, A: 255},
		FillColor:     drawing.Color{R: 0, G: 0, B: 255, A: 26},
		GridColor:     drawing.Color{R: 176, G: 176, B: 176, A: 255},
		MaxDayTicks:   31,
		TickRotation:  30,
		BackgroundCol: drawing.ColorWhite,
	}
}

// ParseDates parses every date of the series, failing on the first bad value.
func ParseDates(dates []string) ([]time.Time, error) {
	out := make([]time.Time, len(dates))
	for i, d := range dates {
		t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(d), time.UTC)
		if err != nil {
			return nil, &DateParseError{Index: i, Value: d, Err: err}
		}
		if y := t.Year(); y < MinYear || y > MaxYear {
			return nil, &DateParseError{Index: i, Value: d, Err: fmt.Errorf("year %d outside %d..%d", y, MinYear, MaxYear)}
		}
		out[i] = t
	}
	return out, nil
}

// Build validates the series and returns the configured go-chart chart without rendering it.
func (r Renderer) Build(s types.ChartSeries) (gochart.Chart, error) {
	if err := s.Validate(); err != nil {
		return gochart.Chart{}, err
	}
	if len(s.Dates) == 0 {
		return gochart.Chart{}, ErrEmptySeries
	}
	times, err := ParseDates(s.Dates)
	if err != nil {
		return gochart.Chart{}, err
	}
	ys := append([]float64(nil), s.Values...)

	minT, maxT := times[0], times[0]
	for _, t := range times[1:] {
		if t.Before(minT) {
			minT = t
		}
		if t.After(maxT) {
			maxT = t
		}
	}
	// go-chart needs a non-zero x range; pad a single day out to the next one
	minF := gochart.TimeToFloat64(minT)
	maxF := gochart.TimeToFloat64(maxT)
	if maxF <= minF {
		maxT = minT.AddDate(0, 0, 1)
		maxF = gochart.TimeToFloat64(maxT)
	}
	if maxF <= minF {
		return gochart.Chart{}, fmt.Errorf("chart %q: empty x range %v..%v", s.Title, minT, maxT)
	}
	xTicks := makeDailyTicks(minT, maxT, r.MaxDayTicks, LabelLayout)
	yMin, yMax := valueAxisRange(ys)
	yTicks := niceTicks(yMin, yMax, 6)

	grid := gochart.Style{StrokeColor: r.GridColor, StrokeWidth: 0.8}
	text := gochart.Style{FontSize: r.FontSize}
	xStyle := text
	xStyle.TextRotationDegrees = r.TickRotation

	return gochart.Chart{
		Title:      s.Title,
		TitleStyle: text,
		Width:      r.Width,
		Height:     r.Height,
		Font:       r.Font,
		Background: gochart.Style{
			FillColor: r.BackgroundCol,
			Padding:   gochart.Box{Top: 24, Left: 16, Right: 56, Bottom: 16},
		},
		Canvas: gochart.Style{FillColor: r.BackgroundCol},
		XAxis: gochart.XAxis{
			Name:           s.XLabel,
			NameStyle:      text,
			Style:          xStyle,
			Ticks:          xTicks,
			Range:          &gochart.ContinuousRange{Min: minF, Max: maxF},
			GridMajorStyle: grid,
			GridLines:      gridLines(xTicks),
			ValueFormatter: gochart.TimeValueFormatterWithFormat(LabelLayout),
		},
		YAxis: gochart.YAxis{
			Name:           s.YLabel,
			NameStyle:      text,
			Style:          text,
			Ticks:          yTicks,
			Range:          &gochart.ContinuousRange{Min: yMin, Max: yMax},
			GridMajorStyle: grid,
			GridLines:      gridLines(yTicks),
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name:    s.Title,
				XValues: times,
				YValues: ys,
				Style: gochart.Style{
					StrokeColor: r.LineColor,
					StrokeWidth: 1.5,
					FillColor:   r.FillColor,
				},
			},
		},
	}, nil
}

// Render draws the series and returns a composable NRGBA image of Width x Height.
func (r Renderer) Render(s types.ChartSeries) (*image.NRGBA, error) {
	ch, err := r.Build(s)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := ch.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart %q: %w", s.Title, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart %q: %w", s.Title, err)
	}
	return imaging.Clone(img), nil
}

// Bounds is the size every rendered chart will have.
func (r Renderer) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.Width, r.Height)
}
