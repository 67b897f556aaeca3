package services

import "time"

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD value into midnight in the given
// location.
func ParseDate(value string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	parsed, err := time.ParseInLocation(dateLayout, value, location)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

// DayRange returns the [start, end) window covering the calendar day
// that contains the given moment.
func DayRange(day time.Time, location *time.Location) (time.Time, time.Time) {
	if location == nil {
		location = time.UTC
	}
	local := day.In(location)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, location)
	return start, start.AddDate(0, 0, 1)
}

func FormatDate(day time.Time) string {
	return day.Format(dateLayout)
}
