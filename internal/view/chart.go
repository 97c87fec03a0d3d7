package view

import (
	"coldchain-dashboard/internal/domain"
	"fmt"

	"github.com/samber/lo"
)

// Chart is a line-chart configuration in the shape Chart.js consumes.
type Chart struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

type ChartDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"borderColor"`
	BackgroundColor string    `json:"backgroundColor"`
}

// BuildChart plots temperature and humidity against ordinal labels time1..timeN.
// Reading timestamps do not drive the axis.
func BuildChart(readings []domain.SensorReading) Chart {
	return Chart{
		Labels: lo.Map(readings, func(_ domain.SensorReading, i int) string {
			return fmt.Sprintf("time%d", i+1)
		}),
		Datasets: []ChartDataset{
			{
				Label:           "Temperature",
				Data:            lo.Map(readings, func(r domain.SensorReading, _ int) float64 { return r.Temperature }),
				BorderColor:     "rgb(255, 99, 132)",
				BackgroundColor: "rgba(255, 99, 132, 0.2)",
			},
			{
				Label:           "Humidity",
				Data:            lo.Map(readings, func(r domain.SensorReading, _ int) float64 { return r.Humidity }),
				BorderColor:     "rgb(54, 162, 235)",
				BackgroundColor: "rgba(54, 162, 235, 0.2)",
			},
		},
	}
}
