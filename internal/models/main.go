// Package models defines the core data structures for users and their activity logs.
package models

// User represents an application user with credentials and a day-bucketed
// activity log.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`
	// Username is the login name chosen by the user.
	Username string `json:"username"`
	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized in responses.
	PasswordHash string `json:"-"`
	// Days is the user's activity log, ordered non-decreasing by date.
	// New days may only be appended with a date greater than the last day's.
	Days []Day `json:"days"`
}

// Day is one date's bucket of activities.
type Day struct {
	// Date is the calendar date in a lexically comparable form, e.g. "2024-01-02".
	Date string `json:"date"`
	// Activities holds the activities logged for this date, in insertion order.
	Activities []Activity `json:"activities"`
}

// Activity is a single logged action.
type Activity struct {
	// Type describes the kind of activity. Required.
	Type string `json:"type"`
	// Label is an optional free-form note.
	Label string `json:"label,omitempty"`
	// Duration is the length of the activity in hours, 1 <= d < 24.
	Duration float64 `json:"duration"`
}
