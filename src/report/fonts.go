package report

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// fontSet holds the parsed report font and the faces created from it during one render.
type fontSet struct {
	font  *truetype.Font
	faces map[float64]font.Face
}

func loadFonts(path string) (*fontSet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, assetOpenError("font", path, err)
	}
	f, err := truetype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return &fontSet{font: f, faces: map[float64]font.Face{}}, nil
}

// face returns a pixel-sized face (72 DPI, so size is in pixels) cached per size.
func (fs *fontSet) face(size float64) font.Face {
	if f, ok := fs.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(fs.font, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
	fs.faces[size] = f
	return f
}

func (fs *fontSet) Close() error {
	var first error
	for size, f := range fs.faces {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
		delete(fs.faces, size)
	}
	return first
}

// ascent is the distance from a text line's top to its baseline.
func ascent(f font.Face) float64 {
	return float64(f.Metrics().Ascent) / 64
}

// textWidth is the advance width of s in pixels.
func textWidth(f font.Face, s string) float64 {
	return float64(font.MeasureString(f, s)) / 64
}
