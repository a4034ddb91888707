package model

import "time"

// TimestampLayout is the storage format for workout and log timestamps.
// Fixed-width UTC so that string comparison orders chronologically,
// matching the timestamps already present in existing databases.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// DayLayout is the storage format for nutrition calendar days.
const DayLayout = "2006-01-02"

// Workout is one gym session, created when the user opens a split day.
// completed_at stays NULL unless a caller explicitly finishes the workout;
// closing the app simply forgets the session.
type Workout struct {
	ID          int64   `db:"id"`
	SplitIndex  int     `db:"split_index"`
	PlannedName string  `db:"planned_name"`
	StartedAt   string  `db:"started_at"`
	CompletedAt *string `db:"completed_at"`
}

// Open reports whether the workout has not been finished.
func (w Workout) Open() bool {
	return w.CompletedAt == nil
}

// Timestamp formats t for storage in workout and log date columns.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Day formats t as a nutrition calendar day.
func Day(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// Now returns the current time in storage timestamp format.
func Now() string {
	return Timestamp(time.Now())
}

// Today returns the current nutrition calendar day.
func Today() string {
	return Day(time.Now())
}
