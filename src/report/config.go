package report

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Config points at the assets every render needs.
type Config struct {
	FontPath       string
	BackgroundPath string
}

// NewConfig checks both assets exist and are readable regular files.
func NewConfig(fontPath, backgroundPath string) (Config, error) {
	if err := checkAsset("font", fontPath); err != nil {
		return Config{}, err
	}
	if err := checkAsset("background", backgroundPath); err != nil {
		return Config{}, err
	}
	return Config{FontPath: fontPath, BackgroundPath: backgroundPath}, nil
}

func checkAsset(kind, path string) error {
	if path == "" {
		return &MissingAssetError{Kind: kind, Path: path, Err: errors.New("empty path")}
	}
	st, err := os.Stat(path)
	if err != nil {
		return &MissingAssetError{Kind: kind, Path: path, Err: err}
	}
	if st.IsDir() {
		return &MissingAssetError{Kind: kind, Path: path, Err: errors.New("is a directory")}
	}
	f, err := os.Open(path)
	if err != nil {
		return &MissingAssetError{Kind: kind, Path: path, Err: err}
	}
	return f.Close()
}

// assetOpenError maps a failed open of an asset during rendering to MissingAsset when
// the file is gone, otherwise keeps the original error.
func assetOpenError(kind, path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &MissingAssetError{Kind: kind, Path: path, Err: err}
	}
	return fmt.Errorf("open %s %s: %w", kind, path, err)
}
