package commands

import (
	"fmt"
	"time"
)

// koDate renders a date the way the dashboards show it (ko-KR short form).
func koDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%d. %d. %d.", t.Year(), int(t.Month()), t.Day())
}

// koDateTime renders a timestamp for the shipment detail views.
func koDateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%d. %02d. %02d. %02d:%02d", t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
}
