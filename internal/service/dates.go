package service

import (
	"time"

	"debateapp/internal/models"
)

// Accepted timestamp layouts, most specific first. RFC3339 is canonical;
// the shorter forms cover what browser datetime inputs submit.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseDate(value, field string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, models.NewValidationError(field + " must be an ISO-8601 timestamp")
}

// parseWindow parses and sanity-checks a debate time window.
func parseWindow(startDate, endDate string) (start, end time.Time, err error) {
	if startDate == "" || endDate == "" {
		return start, end, models.NewValidationError("startDate and endDate are required")
	}
	if start, err = parseDate(startDate, "startDate"); err != nil {
		return start, end, err
	}
	if end, err = parseDate(endDate, "endDate"); err != nil {
		return start, end, err
	}
	if end.Before(start) {
		return start, end, models.NewValidationError("endDate must not be before startDate")
	}
	return start, end, nil
}
