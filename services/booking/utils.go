package booking

import "time"

// combineDateAndTime merges a booking date with an optional "HH:MM" time of
// day. An absent time yields nil rather than a midnight timestamp.
func combineDateAndTime(date time.Time, timeOfDay string) *time.Time {
	if timeOfDay == "" {
		return nil
	}
	t, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return nil
	}
	combined := time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, time.UTC)
	return &combined
}

// formatDate renders a date the way the customer-facing messages expect,
// e.g. "July 1, 2024".
func formatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
