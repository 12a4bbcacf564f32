// Package definition loads a report definition file (YAML, JSON or TOML) and turns it
// into a ready-to-render report.Report.
//
// Example YAML:
//
//	width: 800
//	height: 800
//	label: "@analytics_bot"
//	font: fonts/arial.ttf
//	background: img/background.png
//	rows:
//	  - title: totals
//	    items:
//	      - title: Orders
//	        icon: img/orders.png
//	        stats:
//	          - {today: 3, week: 12, month: 40, all_time: 1234}
//	  - title: trend
//	    items:
//	      - title: Orders per day
//	        chart:
//	          title: Orders per day
//	          x_label: Date
//	          y_label: Orders
//	          dates: ["01.03.2024", "02.03.2024"]
//	          values: [5, 9]
//
// Relative asset paths are resolved against the directory of the definition file.
// Top-level keys can be overridden with REPORTGEN_<KEY> environment variables.
package definition

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/iafilius/AnalyticsReport/src/layout"
	"github.com/iafilius/AnalyticsReport/src/report"
	"github.com/iafilius/AnalyticsReport/src/types"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "REPORTGEN"

var (
	ErrNoRows      = errors.New("definition has no rows")
	ErrItemVariant = errors.New("item must have exactly one of stats or chart")
)

// Definition is the file form of a report.
type Definition struct {
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Label      string `mapstructure:"label"`
	Font       string `mapstructure:"font"`
	Background string `mapstructure:"background"`
	Padding    int    `mapstructure:"padding"`
	Language   string `mapstructure:"language"`
	RowHeight  string `mapstructure:"row_height"`
	Rows       []Row  `mapstructure:"rows"`
}

type Row struct {
	Title string `mapstructure:"title"`
	Items []Item `mapstructure:"items"`
}

// Item is a stat panel when Stats is set and a chart when Chart is set.
type Item struct {
	Title string                `mapstructure:"title"`
	Icon  string                `mapstructure:"icon"`
	Stats []types.DateRangeStat `mapstructure:"stats"`
	Chart *types.ChartSeries    `mapstructure:"chart"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("width", 800)
	v.SetDefault("height", 800)
	v.SetDefault("padding", report.DefaultPadding)
	v.SetDefault("language", "en")
	v.SetDefault("row_height", layout.RowHeightContent.String())
	v.SetDefault("label", "")
	v.SetDefault("font", "")
	v.SetDefault("background", "")
}

// Load reads and validates the definition at path.
func Load(path string) (*Definition, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read definition %s: %w", path, err)
	}
	var d Definition
	if err := v.Unmarshal(&d); err != nil {
		return nil, fmt.Errorf("decode definition %s: %w", path, err)
	}
	d.resolvePaths(filepath.Dir(path))
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("definition %s: %w", path, err)
	}
	return &d, nil
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

func (d *Definition) resolvePaths(base string) {
	d.Font = resolve(base, d.Font)
	d.Background = resolve(base, d.Background)
	for i := range d.Rows {
		for j := range d.Rows[i].Items {
			it := &d.Rows[i].Items[j]
			it.Icon = resolve(base, it.Icon)
		}
	}
}

// Validate checks the shape of the definition. Asset existence is checked by Build.
func (d *Definition) Validate() error {
	if len(d.Rows) == 0 {
		return ErrNoRows
	}
	if _, err := layout.ParseRowHeightPolicy(d.RowHeight); err != nil {
		return err
	}
	if _, err := report.ParseLanguage(d.Language); err != nil {
		return err
	}
	for _, r := range d.Rows {
		for _, it := range r.Items {
			if (len(it.Stats) > 0) == (it.Chart != nil) {
				return fmt.Errorf("row %q item %q: %w", r.Title, it.Title, ErrItemVariant)
			}
		}
	}
	return nil
}

func (it Item) build() (types.ReportItem, error) {
	if it.Chart != nil {
		return types.NewChartItem(it.Title, *it.Chart)
	}
	return types.NewStatItem(it.Title, it.Icon, it.Stats...)
}

// Build creates the report with every row added in file order. Extra options are
// applied after the ones derived from the definition.
func (d *Definition) Build(opts ...report.Option) (*report.Report, error) {
	cfg, err := report.NewConfig(d.Font, d.Background)
	if err != nil {
		return nil, err
	}
	policy, err := layout.ParseRowHeightPolicy(d.RowHeight)
	if err != nil {
		return nil, err
	}
	tag, err := report.ParseLanguage(d.Language)
	if err != nil {
		return nil, err
	}
	all := append([]report.Option{
		report.WithPadding(d.Padding),
		report.WithStyle(report.StyleFor(tag)),
		report.WithRowHeightPolicy(policy),
	}, opts...)
	r := report.New(d.Width, d.Height, d.Label, cfg, all...)
	for _, row := range d.Rows {
		items := make([]types.ReportItem, 0, len(row.Items))
		for _, it := range row.Items {
			ri, err := it.build()
			if err != nil {
				return nil, fmt.Errorf("row %q: %w", row.Title, err)
			}
			items = append(items, ri)
		}
		if err := r.AddRow(row.Title, types.NewRow(items...)); err != nil {
			return nil, err
		}
	}
	report.Debugf("[definition] built %dx%d report with %d rows", d.Width, d.Height, len(d.Rows))
	return r, nil
}
