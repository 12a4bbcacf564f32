package report

import (
	"fmt"
	"image/color"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/iafilius/AnalyticsReport/src/layout"
)

// Labels are the literal texts drawn next to stat values and in the footer.
type Labels struct {
	Stats     [4]string // today, this week, this month, all time
	Generated string    // footer prefix, %s receives the date
}

var (
	englishLabels = Labels{
		Stats:     [4]string{"Today: ", "This week: ", "This month: ", "All time: "},
		Generated: "Generated on %s |",
	}
	russianLabels = Labels{
		Stats:     [4]string{"Сегодня: ", "Эта неделя: ", "Этот месяц: ", "Все время: "},
		Generated: "Актуально %s |",
	}
	labelMatcher = language.NewMatcher([]language.Tag{language.English, language.Russian})
)

// Style is the immutable palette, font size table and geometry injected into a render.
type Style struct {
	PanelColor   color.NRGBA
	PanelOutline color.NRGBA
	TextColor    color.NRGBA
	AccentColor  color.NRGBA // stat values
	InfoColor    color.NRGBA // footer display label

	MainTextSize  float64
	TitleTextSize float64
	InfoTextSize  float64
	ChartTextSize float64

	CornerRadius float64
	PanelOpacity float64
	IconSize     int
	IconInset    int
	IconTextX    int // title x offset when an icon is drawn
	TextInset    int

	ChartWidth  int
	ChartHeight int
	ChartInset  int

	FooterTextX    int
	FooterTextY    int
	FooterLabelGap int
	DateLayout     string

	Geometry layout.Geometry
	Language language.Tag
	Labels   Labels
}

// DefaultStyle returns the English report style.
func DefaultStyle() Style {
	return StyleFor(language.English)
}

// StyleFor returns the default style with labels and number formatting for tag.
// Unsupported languages fall back to English.
func StyleFor(tag language.Tag) Style {
	s := Style{
		PanelColor:   color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		PanelOutline: color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		TextColor:    color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		AccentColor:  color.NRGBA{R: 0, G: 0, B: 255, A: 255},
		InfoColor:    color.NRGBA{R: 51, G: 51, B: 255, A: 255},

		MainTextSize:  12,
		TitleTextSize: 16,
		InfoTextSize:  17,
		ChartTextSize: 10,

		CornerRadius: 10,
		PanelOpacity: 0.5,
		IconSize:     24,
		IconInset:    5,
		IconTextX:    30,
		TextInset:    5,

		ChartWidth:  770,
		ChartHeight: 400,
		ChartInset:  15,

		FooterTextX:    35,
		FooterTextY:    30,
		FooterLabelGap: 200,
		DateLayout:     "02.01.2006",

		Geometry: layout.DefaultGeometry(),
	}
	_, idx, _ := labelMatcher.Match(tag)
	switch idx {
	case 1:
		s.Language, s.Labels = language.Russian, russianLabels
	default:
		s.Language, s.Labels = language.English, englishLabels
	}
	return s
}

// ParseLanguage maps a BCP 47 string ("en", "ru-RU") to a tag.
func ParseLanguage(s string) (language.Tag, error) {
	if s == "" {
		return language.English, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("parse locale %q: %w", s, err)
	}
	return tag, nil
}

// FormatValue renders a stat counter for the style's language: grouped digits,
// no decimals for whole numbers and at most two otherwise.
func (s Style) FormatValue(v float64) string {
	p := message.NewPrinter(s.Language)
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// FooterText is the footer prefix for the given formatted date.
func (s Style) FooterText(date string) string {
	return fmt.Sprintf(s.Labels.Generated, date)
}
