package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nhle/gymlog/internal/model"
)

// StartWorkout inserts a new workout row and returns its id. It does not
// look for or close a previous unfinished workout; multiple open workouts
// may coexist.
func (s *SQLiteStore) StartWorkout(
	ctx context.Context,
	splitIndex int,
	plannedName, startedAt string,
) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO workouts (split_index, planned_name, started_at) VALUES (?, ?, ?)",
		splitIndex, plannedName, startedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("starting workout: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading new workout id: %w", err)
	}
	return id, nil
}

// FinishWorkout marks a workout as completed. COMPLETED is terminal.
func (s *SQLiteStore) FinishWorkout(
	ctx context.Context,
	workoutID int64,
	completedAt string,
) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE workouts SET completed_at = ? WHERE id = ?",
		completedAt, workoutID,
	)
	if err != nil {
		return fmt.Errorf("finishing workout %d: %w", workoutID, err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("workout %d not found", workoutID)
	}
	return nil
}

// ActiveWorkout returns the most recently started workout that has not
// been completed, or nil when none is open.
func (s *SQLiteStore) ActiveWorkout(ctx context.Context) (*model.Workout, error) {
	var w model.Workout
	err := s.db.GetContext(ctx, &w,
		"SELECT * FROM workouts WHERE completed_at IS NULL ORDER BY started_at DESC LIMIT 1",
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying active workout: %w", err)
	}
	return &w, nil
}

// LastCompletedWorkout returns the most recently completed workout, or
// nil when none has been completed.
func (s *SQLiteStore) LastCompletedWorkout(ctx context.Context) (*model.Workout, error) {
	var w model.Workout
	err := s.db.GetContext(ctx, &w,
		"SELECT * FROM workouts WHERE completed_at IS NOT NULL ORDER BY completed_at DESC LIMIT 1",
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying last completed workout: %w", err)
	}
	return &w, nil
}

// AddLog inserts a single logged set.
func (s *SQLiteStore) AddLog(ctx context.Context, log model.Log) error {
	unit := log.Unit
	if unit == "" {
		unit = model.UnitKg
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO logs (workout_id, exercise_name, date, weight, unit, reps, set_type)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		log.WorkoutID, log.ExerciseName, log.Date, log.Weight,
		unit, log.Reps, log.SetType,
	)
	if err != nil {
		return fmt.Errorf("adding log: %w", err)
	}
	return nil
}

// AddLogPair writes the TOP_SET and BACK_OFF rows of one entry in a
// single transaction. Either both rows land or neither does.
func (s *SQLiteStore) AddLogPair(ctx context.Context, pair LogPair) error {
	unit := pair.Unit
	if unit == "" {
		unit = model.UnitKg
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO logs (workout_id, exercise_name, date, weight, unit, reps, set_type)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	stmt, err := tx.PreparexContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing log insert: %w", err)
	}
	defer stmt.Close()

	for _, set := range []struct {
		setType string
		reps    int
	}{
		{model.SetTypeTop, pair.TopReps},
		{model.SetTypeBackOff, pair.BackOffReps},
	} {
		_, err = stmt.ExecContext(ctx,
			pair.WorkoutID, pair.ExerciseName, pair.Date, pair.Weight,
			unit, set.reps, set.setType,
		)
		if err != nil {
			return fmt.Errorf("inserting %s log: %w", set.setType, err)
		}
	}

	return tx.Commit()
}

// WorkoutLogs returns all sets logged for a workout, newest first.
func (s *SQLiteStore) WorkoutLogs(
	ctx context.Context,
	workoutID int64,
) ([]model.Log, error) {
	var logs []model.Log
	err := s.db.SelectContext(ctx, &logs,
		"SELECT * FROM logs WHERE workout_id = ? ORDER BY date DESC, id DESC",
		workoutID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying workout %d logs: %w", workoutID, err)
	}
	return logs, nil
}

// DistinctExercises lists every exercise name that has at least one log.
func (s *SQLiteStore) DistinctExercises(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.SelectContext(ctx, &names,
		"SELECT exercise_name FROM logs GROUP BY exercise_name ORDER BY exercise_name ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("querying distinct exercises: %w", err)
	}
	return names, nil
}
