package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"rb-server/models"
)

// PlotWeekLoad renders a bar chart of events per week to an HTML file.
// weekKeysAsc fixes the X-axis order; displayMap supplies the axis labels.
func PlotWeekLoad(byWeek models.BookingsByWeek, weekKeysAsc []string, displayMap map[string]string, outputPath string) error {
	labels := make([]string, 0, len(weekKeysAsc))
	values := make([]opts.BarData, 0, len(weekKeysAsc))
	for _, key := range weekKeysAsc {
		label := displayMap[key]
		if label == "" {
			label = key
		}
		labels = append(labels, label)
		values = append(values, opts.BarData{Value: len(byWeek[key])})
	}

	// Create a new bar chart.
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Week Load",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Booking events per week",
		}),
	)
	bar.SetXAxis(labels).AddSeries("Events", values)

	// Create an HTML file to render the chart.
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create chart file %q: %w", outputPath, err)
	}
	defer f.Close()

	// Render the chart into the HTML file.
	if err := bar.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	log.Printf("[WeekChart] Week load chart generated: %s", outputPath)
	return nil
}
