package definition

import (
	"fmt"

	"github.com/iafilius/AnalyticsReport/src/types"
)

// Demo returns the sample report: a row of four stat panels (the first with icon when
// given), a single centered panel and a ten-day chart.
func Demo(font, background, icon, lang string) *Definition {
	stat := []types.DateRangeStat{{Today: 3, ThisWeek: 6, ThisMonth: 9, AllTime: 12}}
	dates := make([]string, 10)
	values := make([]float64, 10)
	for i := range dates {
		dates[i] = fmt.Sprintf("%02d.01.2024", i+1)
		values[i] = float64(i + 1)
	}
	return &Definition{
		Width:      800,
		Height:     800,
		Label:      "@analytics_bot",
		Font:       font,
		Background: background,
		Padding:    10,
		Language:   lang,
		Rows: []Row{
			{Title: "totals", Items: []Item{
				{Title: "Orders", Icon: icon, Stats: stat},
				{Title: "Users", Stats: stat},
				{Title: "Sessions", Stats: stat},
				{Title: "Refunds", Stats: stat},
			}},
			{Title: "music", Items: []Item{
				{Title: "Music", Stats: stat},
			}},
			{Title: "trend", Items: []Item{
				{Title: "Trend", Chart: &types.ChartSeries{
					Title: "Orders", XLabel: "Date", YLabel: "Count", Dates: dates, Values: values,
				}},
			}},
		},
	}
}
