// Package daylog implements the chronological activity log: validation of
// incoming activities, merging an activity into a user's day sequence, and
// per-date lookup.
package daylog

import (
	"github.com/kamilprz/activitylog/internal/models"
)

// ValidateActivity checks the structural constraints on an activity before it
// may enter a log: type is a required non-empty string, duration is a required
// number with 1 <= duration < 24, label is optional. duration is a pointer so
// an absent field can be told apart from zero.
// Returns a *models.ValidationError describing the first offending field.
func ValidateActivity(typ, label string, duration *float64) (models.Activity, error) {
	if typ == "" {
		return models.Activity{}, &models.ValidationError{Field: "type", Reason: "is required"}
	}
	if duration == nil {
		return models.Activity{}, &models.ValidationError{Field: "duration", Reason: "is required"}
	}
	if *duration < 1 {
		return models.Activity{}, &models.ValidationError{Field: "duration", Reason: "must be larger than or equal to 1"}
	}
	if *duration >= 24 {
		return models.Activity{}, &models.ValidationError{Field: "duration", Reason: "must be less than 24"}
	}
	return models.Activity{Type: typ, Label: label, Duration: *duration}, nil
}

// Append merges a validated activity dated date into the day sequence and
// returns the updated sequence.
//
// Only the last day is ever examined: if the date matches it the activity is
// appended to that day, if the date is newer a fresh day is appended, and if
// the date is older the sequence is returned untouched with
// models.ErrPastDate. Dates compare lexically, so the sequence stays
// non-decreasing by date. Backfilling a missed day is unsupported.
func Append(days []models.Day, date string, act models.Activity) ([]models.Day, error) {
	if len(days) == 0 {
		return []models.Day{{Date: date, Activities: []models.Activity{act}}}, nil
	}

	last := &days[len(days)-1]
	switch {
	case date == last.Date:
		last.Activities = append(last.Activities, act)
		return days, nil
	case date > last.Date:
		return append(days, models.Day{Date: date, Activities: []models.Activity{act}}), nil
	default:
		return days, models.ErrPastDate
	}
}

// ActivitiesOn scans the day sequence for the given date and returns that
// day's activities. The second return is false when no day matches.
func ActivitiesOn(days []models.Day, date string) ([]models.Activity, bool) {
	for _, d := range days {
		if d.Date == date {
			return d.Activities, true
		}
	}
	return nil, false
}
