package console

import (
	"coldchain-dashboard/internal/domain"
	"coldchain-dashboard/internal/view"
	"fmt"
	"io"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

// colorStatus paints a status the way the web table tints its rows.
func colorStatus(s domain.Status) (string, error) {
	class, err := view.StatusClass(s)
	if err != nil {
		return "", err
	}
	switch class {
	case "status-red":
		return color.Red.Sprint(s.String()), nil
	case "status-yellow":
		return color.Yellow.Sprint(s.String()), nil
	default:
		return color.Green.Sprint(s.String()), nil
	}
}

// WriteDeliveries prints the all-deliveries table.
func WriteDeliveries(w io.Writer, deliveries []domain.Delivery, tf view.TimeFormatter) error {
	table := newTable(w, []string{
		"ID", "Status", "Product Price", "Delivery Price", "Min Temp", "Max Temp",
		"Min Humidity", "Max Humidity", "Avg Temp", "Avg Humidity", "End Time",
	})

	for _, d := range deliveries {
		status, err := colorStatus(d.Status)
		if err != nil {
			return fmt.Errorf("write deliveries: %w", err)
		}
		table.Append([]string{
			d.ID, status, d.ProductPrice, d.DeliveryPrice, d.MinTemp, d.MaxTemp,
			d.MinHumidity, d.MaxHumidity, d.AvgTemp, d.AvgHumidity, tf.FormatOptional(d.EndTime),
		})
	}

	table.Render()
	return nil
}

func WriteActive(w io.Writer, active []domain.Delivery) error {
	if len(active) == 0 {
		_, err := fmt.Fprintln(w, "No active deliveries")
		return err
	}

	table := newTable(w, []string{"ID", "Status"})
	for _, d := range active {
		status, err := colorStatus(d.Status)
		if err != nil {
			return fmt.Errorf("write active deliveries: %w", err)
		}
		table.Append([]string{d.ID, status})
	}

	table.Render()
	return nil
}

// WriteSummary prints a sensor series with its averages underneath.
func WriteSummary(w io.Writer, deliveryID string, summary domain.SensorSummary) error {
	if _, err := fmt.Fprintf(w, "Sensor Data for Delivery %s\n", deliveryID); err != nil {
		return err
	}

	table := newTable(w, []string{"#", "Temperature", "Humidity"})
	for i, r := range summary.Readings {
		table.Append([]string{
			"time" + strconv.Itoa(i+1),
			strconv.FormatFloat(r.Temperature, 'f', -1, 64),
			strconv.FormatFloat(r.Humidity, 'f', -1, 64),
		})
	}
	table.Render()

	_, err := fmt.Fprintf(w, "Average Temperature: %s°C\nAverage Humidity: %s%%\n",
		summary.AvgTemperature, summary.AvgHumidity)
	return err
}
