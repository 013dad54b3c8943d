package chart

import (
	"bytes"
	"errors"
	"time"

	"github.com/wcharczuk/go-chart/v2"
)

// ErrNoData is returned when a chart is requested for an empty series.
// Handlers translate it to a service-unavailable response.
var ErrNoData = errors.New("no data points to render")

// MonthlyPoint is one month's revenue for the bar chart.
type MonthlyPoint struct {
	Month time.Time
	Value float64
}

// DailyPoint is one day's sales for the trend line.
type DailyPoint struct {
	Date  time.Time
	Value float64
}

// RenderMonthlyRevenue draws per-month revenue bars as a PNG.
func RenderMonthlyRevenue(points []MonthlyPoint) ([]byte, error) {
	if len(points) == 0 {
		return nil, ErrNoData
	}

	bars := make([]chart.Value, 0, len(points))
	for _, p := range points {
		bars = append(bars, chart.Value{
			Label: p.Month.Format("Jan 06"),
			Value: p.Value,
		})
	}

	graph := chart.BarChart{
		Title:    "Monthly Revenue",
		Width:    900,
		Height:   420,
		BarWidth: 40,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderDailySalesTrend draws the daily sales line as a PNG.
func RenderDailySalesTrend(points []DailyPoint) ([]byte, error) {
	if len(points) == 0 {
		return nil, ErrNoData
	}

	xs := make([]time.Time, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, p := range points {
		xs = append(xs, p.Date)
		ys = append(ys, p.Value)
	}

	graph := chart.Chart{
		Title:  "Daily Sales",
		Width:  900,
		Height: 420,
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Sales",
				XValues: xs,
				YValues: ys,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
