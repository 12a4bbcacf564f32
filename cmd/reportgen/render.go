package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/iafilius/AnalyticsReport/src/definition"
	"github.com/iafilius/AnalyticsReport/src/report"
)

// RunRenderMode renders the definition at defPath headlessly and writes a PNG to outPath.
func RunRenderMode(defPath, outPath string, opts ...report.Option) error {
	d, err := definition.Load(defPath)
	if err != nil {
		return err
	}
	return renderDefinition(d, outPath, opts...)
}

func renderDefinition(d *definition.Definition, outPath string, opts ...report.Option) error {
	r, err := d.Build(opts...)
	if err != nil {
		return err
	}
	img, err := r.Render()
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return writePNG(img, outPath)
}

func writePNG(img image.Image, outPath string) error {
	defer report.TimeTrack(time.Now(), "write "+outPath)
	if dir := filepath.Dir(outPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create out dir: %w", err)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png encode %s: %w", outPath, err)
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	report.Infof("[reportgen] wrote %s (%d bytes)", outPath, buf.Len())
	return nil
}
