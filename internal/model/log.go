package model

import (
	"fmt"
	"strconv"
	"time"
)

// Set type constants. Every saved entry writes one row of each.
const (
	SetTypeTop     = "TOP_SET"
	SetTypeBackOff = "BACK_OFF"
)

// UnitKg is the only weight unit in use.
const UnitKg = "kg"

// Log is a single logged set belonging to a workout.
type Log struct {
	ID           int64   `db:"id"`
	WorkoutID    int64   `db:"workout_id"`
	ExerciseName string  `db:"exercise_name"`
	Date         string  `db:"date"`
	Weight       float64 `db:"weight"`
	Unit         string  `db:"unit"`
	Reps         int     `db:"reps"`
	SetType      string  `db:"set_type"`
}

// Entry is the derived top-set/back-off pair shown in the UI. It is never
// stored; it is produced by grouping logs on (exercise, date, weight).
// TopReps or BackReps is nil when the group has no row of that set type.
type Entry struct {
	Date     string  `db:"date"`
	Weight   float64 `db:"weight"`
	Unit     string  `db:"unit"`
	TopReps  *int    `db:"top_reps"`
	BackReps *int    `db:"back_reps"`
}

// HasReps reports whether at least one of the two sets is present.
func (e Entry) HasReps() bool {
	return e.TopReps != nil || e.BackReps != nil
}

// FormatLine renders an entry as "30kg × 10 / 11".
func (e Entry) FormatLine() string {
	return fmt.Sprintf("%skg × %s / %s",
		FormatWeight(e.Weight), formatReps(e.TopReps), formatReps(e.BackReps))
}

// FormatWeight renders a weight without trailing zeros (2.50 -> 2.5).
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// FormatDayMonthYear renders a stored timestamp as "15.01.26" for the
// history table. Unparseable values are shown as-is.
func FormatDayMonthYear(ts string) string {
	t, err := time.Parse(TimestampLayout, ts)
	if err != nil {
		return ts
	}
	return t.Format("02.01.06")
}

func formatReps(r *int) string {
	if r == nil {
		return "—"
	}
	return strconv.Itoa(*r)
}
