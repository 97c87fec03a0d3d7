package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"draft", "accepted", "rejected"} {
		st, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, st.String())
	}

	_, err := ParseStatus("in_transit")
	require.ErrorIs(t, err, ErrUnknownStatus)

	_, err = ParseStatus("")
	require.ErrorIs(t, err, ErrUnknownStatus)
}

func TestStatusInspectable(t *testing.T) {
	assert.True(t, StatusAccepted.Inspectable())
	assert.True(t, StatusRejected.Inspectable())
	assert.False(t, StatusDraft.Inspectable())
	assert.False(t, Status("").Inspectable())
}

func TestSummarize(t *testing.T) {
	summary := Summarize([]SensorReading{
		{Temperature: 20, Humidity: 50},
		{Temperature: 22, Humidity: 60},
	})

	assert.Equal(t, "21.00", summary.AvgTemperature)
	assert.Equal(t, "55.00", summary.AvgHumidity)
	assert.Len(t, summary.Readings, 2)
}

func TestSummarizeRoundsToTwoDecimals(t *testing.T) {
	summary := Summarize([]SensorReading{
		{Temperature: 2.1, Humidity: 40},
		{Temperature: 2.2, Humidity: 41},
		{Temperature: 2.4, Humidity: 43},
	})

	// (2.1+2.2+2.4)/3 = 2.2333...; (40+41+43)/3 = 41.333...
	assert.Equal(t, "2.23", summary.AvgTemperature)
	assert.Equal(t, "41.33", summary.AvgHumidity)

	// Exact halves round up: 20.125 and 0.125 are representable exactly.
	summary = Summarize([]SensorReading{
		{Temperature: 20.25, Humidity: 0.25},
		{Temperature: 20, Humidity: 0},
	})
	assert.Equal(t, "20.13", summary.AvgTemperature)
	assert.Equal(t, "0.13", summary.AvgHumidity)
}

func TestFormatAverageTies(t *testing.T) {
	assert.Equal(t, "0.13", FormatAverage(0.125))
	assert.Equal(t, "-0.13", FormatAverage(-0.125))
	assert.Equal(t, "2.38", FormatAverage(2.375))
	assert.Equal(t, "20.00", FormatAverage(20))
	// 1.005 is stored just below the half, so it rounds down.
	assert.Equal(t, "1.00", FormatAverage(1.005))
	assert.Equal(t, "+Inf", FormatAverage(math.Inf(1)))
}

func TestSummarizeEmptySeries(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, "NaN", summary.AvgTemperature)
	assert.Equal(t, "NaN", summary.AvgHumidity)
	assert.Equal(t, "NaN", FormatAverage(math.NaN()))
}

func TestDeliveryFormReset(t *testing.T) {
	form := DeliveryForm{MinTemp: "2", MaxTemp: "8", ProductPrice: "10.50"}
	assert.False(t, form.IsEmpty())

	form.Reset()
	assert.True(t, form.IsEmpty())
}
