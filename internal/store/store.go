package store

import (
	"context"

	"github.com/nhle/gymlog/internal/model"
)

// Store defines the persistence interface for workouts, logged sets,
// derived entries, and the nutrition tracker.
type Store interface {
	// === Workout sessions ===

	StartWorkout(ctx context.Context, splitIndex int, plannedName, startedAt string) (int64, error)
	FinishWorkout(ctx context.Context, workoutID int64, completedAt string) error
	ActiveWorkout(ctx context.Context) (*model.Workout, error)
	LastCompletedWorkout(ctx context.Context) (*model.Workout, error)

	// === Logged sets ===

	AddLog(ctx context.Context, log model.Log) error
	AddLogPair(ctx context.Context, pair LogPair) error
	WorkoutLogs(ctx context.Context, workoutID int64) ([]model.Log, error)
	DistinctExercises(ctx context.Context) ([]string, error)

	// === Derived entries ===

	EntriesForExercise(ctx context.Context, exerciseName string, limit int) ([]model.Entry, error)
	LastEntry(ctx context.Context, exerciseName string) (*model.Entry, error)
	DeleteEntry(ctx context.Context, exerciseName, date string) error

	// === Nutrition log ===

	AddNutritionLog(ctx context.Context, log model.NutritionLog) error
	NutritionLogsForDate(ctx context.Context, date string) ([]model.NutritionLog, error)
	DeleteNutritionLog(ctx context.Context, id int64) error
	UpdateNutritionLogFoodName(ctx context.Context, id int64, foodName string) error
	NutritionTotalsForDate(ctx context.Context, date string) (model.MacroSet, error)

	// === Quota ===

	Quota(ctx context.Context) (model.MacroSet, error)
	SetQuota(ctx context.Context, quota model.MacroSet) error

	// === Saved foods ===

	AddSavedFood(ctx context.Context, food model.SavedFood) error
	SavedFoods(ctx context.Context) ([]model.SavedFood, error)
	DeleteSavedFood(ctx context.Context, id int64) error
}

// LogPair describes one saved exercise entry: a top set and a back-off
// set sharing the same exercise, date, and weight. The two rows are
// written in a single transaction so a failure cannot leave half a pair.
type LogPair struct {
	WorkoutID    int64
	ExerciseName string
	Date         string
	Weight       float64
	Unit         string
	TopReps      int
	BackOffReps  int
}
