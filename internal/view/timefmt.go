package view

import (
	"fmt"
	"strings"
	"time"
)

const DefaultTimeLayout = "1/2/2006, 3:04:05 PM"

// TimeFormatter renders instants for display in a fixed zone and layout.
type TimeFormatter struct {
	Layout   string
	Location *time.Location
}

func NewTimeFormatter(layout, zone string) (TimeFormatter, error) {
	if strings.TrimSpace(layout) == "" {
		layout = DefaultTimeLayout
	}

	loc := time.Local
	if z := strings.TrimSpace(zone); z != "" && !strings.EqualFold(z, "local") {
		var err error
		loc, err = time.LoadLocation(z)
		if err != nil {
			return TimeFormatter{}, fmt.Errorf("load display timezone %q: %w", z, err)
		}
	}

	return TimeFormatter{Layout: layout, Location: loc}, nil
}

func (f TimeFormatter) Format(t time.Time) string {
	layout := f.Layout
	if layout == "" {
		layout = DefaultTimeLayout
	}
	if f.Location != nil {
		t = t.In(f.Location)
	}
	return t.Format(layout)
}

// FormatEpoch formats a Unix time given in seconds.
func (f TimeFormatter) FormatEpoch(seconds int64) string {
	return f.Format(time.Unix(seconds, 0))
}

// FormatOptional renders an unset time as the empty string.
func (f TimeFormatter) FormatOptional(t *time.Time) string {
	if t == nil {
		return ""
	}
	return f.Format(*t)
}
