package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"roster-server/models"
)

// PlotWeekHours renders a bar chart of the hours worked per weekday for
// one week display, writing the chart HTML to w.
func PlotWeekHours(display *models.WeekDisplay, w io.Writer) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Week " + display.WeekKey,
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Hours for week " + display.WeekKey,
			Subtitle: fmt.Sprintf("Total: %.2f hours", display.TotalHours),
		}),
	)

	weekdays := make([]string, 0, len(display.Rows))
	hours := make([]opts.BarData, 0, len(display.Rows))
	for _, row := range display.Rows {
		weekdays = append(weekdays, row.Weekday)
		hours = append(hours, opts.BarData{Value: row.Hours})
	}

	bar.SetXAxis(weekdays).AddSeries("Hours", hours)

	return bar.Render(w)
}
