// Command reportview renders a report definition and shows it in a preview window.
package main

import (
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/iafilius/AnalyticsReport/src/definition"
	"github.com/iafilius/AnalyticsReport/src/report"
)

func main() {
	var defPath, logLevel string
	flag.StringVar(&defPath, "definition", "report.yaml", "Path to the report definition")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()
	report.SetLogLevel(logLevel)

	d, err := definition.Load(defPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	r, err := d.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	img, err := r.Render()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	a := app.New()
	w := a.NewWindow("Report preview: " + defPath)
	view := canvas.NewImageFromImage(img)
	view.FillMode = canvas.ImageFillOriginal
	status := widget.NewLabel(fmt.Sprintf("%dx%d, rows: %v", d.Width, d.Height, r.RowTitles()))
	w.SetContent(container.NewBorder(nil, status, nil, nil, container.NewScroll(view)))
	w.Resize(fyne.NewSize(float32(d.Width)+20, float32(d.Height)+60))
	report.Infof("[reportview] showing %s", defPath)
	w.ShowAndRun()
}
