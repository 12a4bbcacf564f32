package report

import (
	"errors"
	"fmt"

	"github.com/iafilius/AnalyticsReport/src/chart"
	"github.com/iafilius/AnalyticsReport/src/layout"
	"github.com/iafilius/AnalyticsReport/src/types"
)

var (
	ErrMissingAsset      = errors.New("missing asset")
	ErrDuplicateRowTitle = errors.New("row title already exists")
	ErrReportRendered    = errors.New("report already rendered; rows can no longer be added")
	ErrInvalidCanvas     = errors.New("canvas dimensions must be positive")

	// Re-exported so callers only need this package for errors.Is checks.
	ErrEmptyColumn  = layout.ErrEmptyColumn
	ErrEmptyStats   = types.ErrEmptyStats
	ErrSeriesLength = types.ErrSeriesLength
	ErrEmptySeries  = chart.ErrEmptySeries
	ErrDateParse    = chart.ErrDateParse
)

// MissingAssetError names the asset kind ("font", "background", "icon") and its path.
type MissingAssetError struct {
	Kind string
	Path string
	Err  error
}

func (e *MissingAssetError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s not found: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Path)
}

func (e *MissingAssetError) Unwrap() error { return ErrMissingAsset }
