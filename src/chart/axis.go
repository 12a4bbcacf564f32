package chart

import (
	"fmt"
	"math"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
)

// niceAxisBounds expands [min,max] by a small margin and rounds to "nice" numbers for readability.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	// 5% margin on both sides
	pad := span * 0.05
	if pad <= 0 {
		pad = 1
	}
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// valueAxisRange anchors the y-axis at zero for non-negative data and always returns a
// non-empty range, so flat series still render.
func valueAxisRange(values []float64) (float64, float64) {
	minY := math.MaxFloat64
	maxY := -math.MaxFloat64
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}
	if minY == math.MaxFloat64 {
		return 0, 1
	}
	if minY >= 0 {
		if maxY <= 0 {
			maxY = 1
		}
		_, nMax := niceAxisBounds(0, maxY)
		return 0, nMax
	}
	return niceAxisBounds(minY, maxY)
}

// niceTicks generates up to n desired tick marks between [min, max] using nice increments.
func niceTicks(min, max float64, n int) []gochart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	// Preferred tick steps: 1, 2, 2.5, 5, 10 ... scaled by power of 10
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil((max - min) / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	ticks := []gochart.Tick{}
	for v := start; v <= end+bestStep/2; v += bestStep {
		ticks = append(ticks, gochart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	case av == math.Trunc(av):
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// dayStep picks how many days lie between two x ticks so no more than maxTicks are drawn.
func dayStep(first, last time.Time, maxTicks int) int {
	days := int(last.Sub(first).Hours()/24) + 1
	if maxTicks < 1 || days <= maxTicks {
		return 1
	}
	return int(math.Ceil(float64(days) / float64(maxTicks)))
}

// makeDailyTicks returns one tick per step days from first to last, labelled with layout.
// Both bounds are truncated to midnight.
func makeDailyTicks(first, last time.Time, maxTicks int, layout string) []gochart.Tick {
	start := truncateDay(first)
	end := truncateDay(last)
	step := dayStep(start, end, maxTicks)
	ticks := []gochart.Tick{}
	for t := start; !t.After(end); t = t.AddDate(0, 0, step) {
		ticks = append(ticks, gochart.Tick{Value: gochart.TimeToFloat64(t), Label: t.Format(layout)})
	}
	return ticks
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func gridLines(ticks []gochart.Tick) []gochart.GridLine {
	lines := make([]gochart.GridLine, len(ticks))
	for i, t := range ticks {
		lines[i] = gochart.GridLine{Value: t.Value}
	}
	return lines
}
