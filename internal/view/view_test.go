package view

import (
	"coldchain-dashboard/internal/domain"
	"coldchain-dashboard/internal/services"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusClass(t *testing.T) {
	cases := map[domain.Status]string{
		domain.StatusRejected: "status-red",
		domain.StatusDraft:    "status-yellow",
		domain.StatusAccepted: "status-green",
	}
	for status, want := range cases {
		got, err := StatusClass(status)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := StatusClass("in_transit")
	require.ErrorIs(t, err, domain.ErrUnknownStatus)
}

func TestBuildChart(t *testing.T) {
	chart := BuildChart([]domain.SensorReading{
		{Temperature: 20, Humidity: 50},
		{Temperature: 22, Humidity: 60},
	})

	assert.Equal(t, []string{"time1", "time2"}, chart.Labels)
	require.Len(t, chart.Datasets, 2)
	assert.Equal(t, "Temperature", chart.Datasets[0].Label)
	assert.Equal(t, []float64{20, 22}, chart.Datasets[0].Data)
	assert.Equal(t, "rgb(255, 99, 132)", chart.Datasets[0].BorderColor)
	assert.Equal(t, "Humidity", chart.Datasets[1].Label)
	assert.Equal(t, []float64{50, 60}, chart.Datasets[1].Data)
	assert.Equal(t, "rgba(54, 162, 235, 0.2)", chart.Datasets[1].BackgroundColor)
}

func TestBuildChartEmpty(t *testing.T) {
	chart := BuildChart(nil)
	assert.Empty(t, chart.Labels)
	assert.Len(t, chart.Datasets, 2)
}

func TestTimeFormatter(t *testing.T) {
	tf, err := NewTimeFormatter("", "UTC")
	require.NoError(t, err)

	ts := time.Date(2026, 3, 4, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "3/4/2026, 3:04:05 PM", tf.Format(ts))
	assert.Equal(t, "3/4/2026, 3:04:05 PM", tf.FormatEpoch(ts.Unix()))
	assert.Equal(t, "", tf.FormatOptional(nil))
	assert.Equal(t, "3/4/2026, 3:04:05 PM", tf.FormatOptional(&ts))
}

func TestTimeFormatterLocalAndInvalidZone(t *testing.T) {
	tf, err := NewTimeFormatter("2006-01-02", "local")
	require.NoError(t, err)
	assert.Equal(t, time.Local, tf.Location)

	_, err = NewTimeFormatter("", "Not/AZone")
	require.Error(t, err)
}

func testFormatter(t *testing.T) TimeFormatter {
	t.Helper()
	tf, err := NewTimeFormatter("", "UTC")
	require.NoError(t, err)
	return tf
}

func TestNewPage(t *testing.T) {
	end := time.Date(2026, 1, 1, 9, 30, 0, 0, time.UTC)
	selected := domain.Delivery{ID: "d2", Status: domain.StatusAccepted, EndTime: &end}
	state := services.State{
		Form: domain.DeliveryForm{MinTemp: "2"},
		Deliveries: []domain.Delivery{
			{ID: "d1", Status: domain.StatusDraft},
			selected,
		},
		ActiveDeliveries: []domain.Delivery{{ID: "d1", Status: domain.StatusDraft}},
		Selected:         &selected,
		Inspection: &domain.SensorSummary{
			Readings:       []domain.SensorReading{{Temperature: 20, Humidity: 50}},
			AvgTemperature: "20.00",
			AvgHumidity:    "50.00",
		},
		ModalOpen: true,
	}

	page, err := NewPage(state, end, testFormatter(t))
	require.NoError(t, err)

	require.Len(t, page.Rows, 2)
	assert.Equal(t, "status-yellow", page.Rows[0].Class)
	assert.Equal(t, "", page.Rows[0].EndTime)
	assert.Equal(t, "/deliveries/d1", page.Rows[0].Href)
	assert.Equal(t, "status-green", page.Rows[1].Class)
	assert.Equal(t, "1/1/2026, 9:30:00 AM", page.Rows[1].EndTime)

	require.Len(t, page.Active, 1)
	assert.Equal(t, "/deliveries/d1/simulate", page.Active[0].SimulateURL)

	require.NotNil(t, page.Modal)
	assert.Equal(t, "d2", page.Modal.DeliveryID)
	assert.Equal(t, "20.00", page.Modal.AvgTemperature)
	require.NotNil(t, page.Modal.Chart)
	assert.Equal(t, []string{"time1"}, page.Modal.Chart.Labels)
	assert.Equal(t, "1/1/2026, 9:30:00 AM", page.CurrentTime)
}

func TestNewPageClosedModal(t *testing.T) {
	page, err := NewPage(services.State{}, time.Now(), testFormatter(t))
	require.NoError(t, err)
	assert.Nil(t, page.Modal)
	assert.Empty(t, page.Rows)
}

func TestNewPageUnknownStatus(t *testing.T) {
	state := services.State{Deliveries: []domain.Delivery{{ID: "x", Status: "lost"}}}

	_, err := NewPage(state, time.Now(), testFormatter(t))
	require.ErrorIs(t, err, domain.ErrUnknownStatus)
}

func TestRenderDashboard(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	selected := domain.Delivery{ID: "d2", Status: domain.StatusAccepted}
	page, err := NewPage(services.State{
		Deliveries: []domain.Delivery{selected},
		Selected:   &selected,
		Inspection: &domain.SensorSummary{
			Readings:       []domain.SensorReading{{Temperature: 20, Humidity: 50}},
			AvgTemperature: "20.00",
			AvgHumidity:    "50.00",
		},
		ModalOpen: true,
	}, time.Now(), testFormatter(t))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, r.Render(&sb, "dashboard.html", page))

	html := sb.String()
	assert.Contains(t, html, `class="status-green"`)
	assert.Contains(t, html, "Sensor Data for Delivery d2")
	assert.Contains(t, html, "Average Temperature: 20.00°C")
	assert.Contains(t, html, "Average Humidity: 50.00%")
	assert.Contains(t, html, `"labels":["time1"]`)
	assert.Contains(t, html, "<th>End Time</th>")
}

func TestRenderUnknownTemplate(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var sb strings.Builder
	require.Error(t, r.Render(&sb, "missing.html", nil))
	assert.Empty(t, sb.String())
}
