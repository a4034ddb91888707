package store

import (
	"context"
	"fmt"

	"github.com/nhle/gymlog/internal/model"
)

// EntriesForExercise groups raw logs into display entries, most recent
// date first. Logs sharing (date, weight, unit) collapse into one entry
// whose top/back reps are the MAX per set type; duplicate same-type rows
// in a group are therefore silently collapsed to their maximum rather
// than rejected — history written by older versions may contain them.
// Ordering relies on the fixed-width timestamp format sorting
// lexicographically.
func (s *SQLiteStore) EntriesForExercise(
	ctx context.Context,
	exerciseName string,
	limit int,
) ([]model.Entry, error) {
	var entries []model.Entry
	err := s.db.SelectContext(ctx, &entries, `
		SELECT
			date,
			weight,
			unit,
			MAX(CASE WHEN set_type = 'TOP_SET' THEN reps END) AS top_reps,
			MAX(CASE WHEN set_type = 'BACK_OFF' THEN reps END) AS back_reps
		FROM logs
		WHERE exercise_name = ?
		GROUP BY date, weight, unit
		ORDER BY date DESC
		LIMIT ?`,
		exerciseName, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying entries for %s: %w", exerciseName, err)
	}
	return entries, nil
}

// LastEntry returns the most recent entry for an exercise, or nil when
// the exercise has no logs.
func (s *SQLiteStore) LastEntry(
	ctx context.Context,
	exerciseName string,
) (*model.Entry, error) {
	entries, err := s.EntriesForExercise(ctx, exerciseName, 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

// DeleteEntry removes every log for the exercise at the given date — both
// set types, regardless of weight. Deletion is keyed on exercise+date
// only, so two entries sharing a date (different weights) go together.
func (s *SQLiteStore) DeleteEntry(
	ctx context.Context,
	exerciseName, date string,
) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM logs WHERE exercise_name = ? AND date = ?",
		exerciseName, date,
	)
	if err != nil {
		return fmt.Errorf("deleting entry %s @ %s: %w", exerciseName, date, err)
	}
	return nil
}
