package domain

import (
	"math"
	"math/big"
	"strconv"
	"time"

	"github.com/samber/lo"
)

// A single temperature/humidity sample recorded for a delivery.
type SensorReading struct {
	Temperature float64
	Humidity    float64
	RecordedAt  *time.Time
}

// SensorSummary is the inspection view of a delivery's sensor series.
type SensorSummary struct {
	Readings       []SensorReading
	AvgTemperature string
	AvgHumidity    string
}

// Summarize computes the arithmetic means of the series, formatted with two decimals.
// An empty series is not guarded: both averages come out as "NaN".
func Summarize(readings []SensorReading) SensorSummary {
	n := float64(len(readings))

	temp := lo.SumBy(readings, func(r SensorReading) float64 { return r.Temperature }) / n
	hum := lo.SumBy(readings, func(r SensorReading) float64 { return r.Humidity }) / n

	return SensorSummary{
		Readings:       readings,
		AvgTemperature: FormatAverage(temp),
		AvgHumidity:    FormatAverage(hum),
	}
}

// FormatAverage renders v with two decimals. A value exactly halfway between
// two hundredths rounds away from zero; everything else rounds to nearest.
func FormatAverage(v float64) string {
	if !math.IsNaN(v) && !math.IsInf(v, 0) && isHalfHundredth(v) {
		v = math.Nextafter(v, math.Copysign(math.Inf(1), v))
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func isHalfHundredth(v float64) bool {
	scaled := new(big.Rat).SetFloat64(v)
	scaled.Mul(scaled, big.NewRat(100, 1))

	whole := new(big.Int).Quo(scaled.Num(), scaled.Denom())
	frac := new(big.Rat).Sub(scaled, new(big.Rat).SetInt(whole))
	return frac.Abs(frac).Cmp(big.NewRat(1, 2)) == 0
}
