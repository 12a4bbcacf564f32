package report

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/iafilius/AnalyticsReport/src/types"
)

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func writePNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

type assets struct {
	dir        string
	font       string
	background string
	icon       string
}

// newAssets writes a TTF font, a solid red 800x800 background and a green icon.
func newAssets(t *testing.T) assets {
	t.Helper()
	dir := t.TempDir()
	a := assets{
		dir:        dir,
		font:       filepath.Join(dir, "font.ttf"),
		background: filepath.Join(dir, "background.png"),
		icon:       filepath.Join(dir, "icon.png"),
	}
	if err := os.WriteFile(a.font, goregular.TTF, 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	writePNG(t, a.background, 800, 800, color.NRGBA{R: 255, A: 255})
	writePNG(t, a.icon, 64, 64, color.NRGBA{G: 255, A: 255})
	return a
}

func (a assets) config(t *testing.T) Config {
	t.Helper()
	cfg, err := NewConfig(a.font, a.background)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	return cfg
}

func statItem(t *testing.T, title, icon string, stats ...types.DateRangeStat) types.ReportItem {
	t.Helper()
	if len(stats) == 0 {
		stats = []types.DateRangeStat{{Today: 3, ThisWeek: 12, ThisMonth: 40, AllTime: 1234}}
	}
	it, err := types.NewStatItem(title, icon, stats...)
	if err != nil {
		t.Fatalf("NewStatItem: %v", err)
	}
	return it
}

func chartItem(t *testing.T, title string, dates []string, values []float64) types.ReportItem {
	t.Helper()
	it, err := types.NewChartItem(title, types.ChartSeries{
		Title: title, XLabel: "Date", YLabel: "Orders", Dates: dates, Values: values,
	})
	if err != nil {
		t.Fatalf("NewChartItem: %v", err)
	}
	return it
}
