package definition

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/iafilius/AnalyticsReport/src/report"
)

const sampleYAML = `
width: 640
height: 700
label: "@bot"
font: font.ttf
background: bg.png
row_height: fixed
language: ru
rows:
  - title: totals
    items:
      - title: Orders
        icon: icon.png
        stats:
          - {today: 3, week: 6, month: 9, all_time: 12}
      - title: Users
        stats:
          - {today: 1, week: 2, month: 3, all_time: 4}
  - title: trend
    items:
      - title: Orders per day
        chart:
          title: Orders per day
          x_label: Date
          y_label: Orders
          dates: ["01.03.2024", "02.03.2024", "03.03.2024"]
          values: [5, 9, 2.5]
`

func writeAssets(t *testing.T, dir string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "font.ttf"), goregular.TTF, 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	for _, name := range []string{"bg.png", "icon.png"} {
		img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
		draw.Draw(img, img.Bounds(), image.NewUniform(color.NRGBA{B: 200, A: 255}), image.Point{}, draw.Src)
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if err := png.Encode(f, img); err != nil {
			t.Fatalf("encode %s: %v", name, err)
		}
		f.Close()
	}
}

func writeDef(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write definition: %v", err)
	}
	return p
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	d, err := Load(writeDef(t, dir, "report.yaml", sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Width != 640 || d.Height != 700 || d.Label != "@bot" || d.Padding != report.DefaultPadding {
		t.Fatalf("unexpected header %+v", d)
	}
	if d.Font != filepath.Join(dir, "font.ttf") || d.Rows[0].Items[0].Icon != filepath.Join(dir, "icon.png") {
		t.Fatalf("paths not resolved: font=%s icon=%s", d.Font, d.Rows[0].Items[0].Icon)
	}
	if d.Rows[0].Items[1].Icon != "" {
		t.Fatalf("empty icon must stay empty, got %q", d.Rows[0].Items[1].Icon)
	}
	if len(d.Rows) != 2 || d.Rows[0].Items[0].Stats[0].AllTime != 12 {
		t.Fatalf("unexpected rows %+v", d.Rows)
	}
	ch := d.Rows[1].Items[0].Chart
	if ch == nil || len(ch.Dates) != 3 || ch.Values[2] != 2.5 || ch.YLabel != "Orders" {
		t.Fatalf("unexpected chart %+v", ch)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("REPORTGEN_LABEL", "@from_env")
	d, err := Load(writeDef(t, dir, "report.yaml", sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Label != "@from_env" {
		t.Fatalf("expected env override, got %q", d.Label)
	}
}

func TestLoadRejectsBadItems(t *testing.T) {
	dir := t.TempDir()
	both := `
rows:
  - title: r
    items:
      - title: both
        stats: [{today: 1}]
        chart: {dates: ["01.01.2024"], values: [1]}
`
	neither := `
rows:
  - title: r
    items:
      - title: none
`
	for name, body := range map[string]string{"both.yaml": both, "neither.yaml": neither} {
		if _, err := Load(writeDef(t, dir, name, body)); !errors.Is(err, ErrItemVariant) {
			t.Fatalf("%s: expected ErrItemVariant, got %v", name, err)
		}
	}
	if _, err := Load(writeDef(t, dir, "empty.yaml", "width: 100\n")); !errors.Is(err, ErrNoRows) {
		t.Fatalf("expected ErrNoRows, got %v", err)
	}
	if _, err := Load(writeDef(t, dir, "policy.yaml", "row_height: tall\n"+neither[1:])); err == nil {
		t.Fatalf("expected error for unknown row height policy")
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestBuildAndRender(t *testing.T) {
	dir := t.TempDir()
	writeAssets(t, dir)
	d, err := Load(writeDef(t, dir, "report.yaml", sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	r, err := d.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := r.RowTitles(); len(got) != 2 || got[0] != "totals" || got[1] != "trend" {
		t.Fatalf("unexpected row order %v", got)
	}
	img, err := r.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 640 || b.Dy() != 700 {
		t.Fatalf("unexpected size %v", b)
	}
}

func TestBuildMissingAssets(t *testing.T) {
	dir := t.TempDir()
	d, err := Load(writeDef(t, dir, "report.yaml", sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := d.Build(); !errors.Is(err, report.ErrMissingAsset) {
		t.Fatalf("expected ErrMissingAsset, got %v", err)
	}
}

func TestDemoBuilds(t *testing.T) {
	dir := t.TempDir()
	writeAssets(t, dir)
	d := Demo(filepath.Join(dir, "font.ttf"), filepath.Join(dir, "bg.png"), filepath.Join(dir, "icon.png"), "ru")
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	r, err := d.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, err := r.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
}
