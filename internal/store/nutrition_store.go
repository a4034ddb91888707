package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/nhle/gymlog/internal/model"
)

// AddNutritionLog inserts one logged food/meal for a calendar day.
func (s *SQLiteStore) AddNutritionLog(ctx context.Context, log model.NutritionLog) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO nutrition_logs (date, calories, protein, carbs, fat, food_name)
		VALUES (?, ?, ?, ?, ?, ?)`,
		log.Date, log.Calories, log.Protein, log.Carbs, log.Fat,
		strings.TrimSpace(log.FoodName),
	)
	if err != nil {
		return fmt.Errorf("adding nutrition log: %w", err)
	}
	return nil
}

// NutritionLogsForDate returns all nutrition logs for a day, newest first.
func (s *SQLiteStore) NutritionLogsForDate(
	ctx context.Context,
	date string,
) ([]model.NutritionLog, error) {
	var logs []model.NutritionLog
	err := s.db.SelectContext(ctx, &logs, `
		SELECT id, date, calories, protein, carbs, fat, COALESCE(food_name, '') AS food_name
		FROM nutrition_logs WHERE date = ? ORDER BY id DESC`,
		date,
	)
	if err != nil {
		return nil, fmt.Errorf("querying nutrition logs for %s: %w", date, err)
	}
	return logs, nil
}

// DeleteNutritionLog removes a nutrition log by id.
func (s *SQLiteStore) DeleteNutritionLog(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM nutrition_logs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting nutrition log %d: %w", id, err)
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("nutrition log %d not found", id)
	}
	return nil
}

// UpdateNutritionLogFoodName changes the label of an existing log. The
// macro values themselves are immutable after creation.
func (s *SQLiteStore) UpdateNutritionLogFoodName(
	ctx context.Context,
	id int64,
	foodName string,
) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE nutrition_logs SET food_name = ? WHERE id = ?",
		strings.TrimSpace(foodName), id,
	)
	if err != nil {
		return fmt.Errorf("updating nutrition log %d food name: %w", id, err)
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("nutrition log %d not found", id)
	}
	return nil
}

// NutritionTotalsForDate sums all nutrition logs for a day. A day without
// logs yields zeros, not an error.
func (s *SQLiteStore) NutritionTotalsForDate(
	ctx context.Context,
	date string,
) (model.MacroSet, error) {
	var totals model.MacroSet
	err := s.db.GetContext(ctx, &totals, `
		SELECT
			COALESCE(SUM(calories), 0) AS calories,
			COALESCE(SUM(protein), 0) AS protein,
			COALESCE(SUM(carbs), 0) AS carbs,
			COALESCE(SUM(fat), 0) AS fat
		FROM nutrition_logs WHERE date = ?`,
		date,
	)
	if err != nil {
		return model.MacroSet{}, fmt.Errorf("querying nutrition totals for %s: %w", date, err)
	}
	return totals, nil
}

// Quota returns the daily macro targets. The singleton row is seeded at
// init, so this always finds one.
func (s *SQLiteStore) Quota(ctx context.Context) (model.MacroSet, error) {
	var quota model.MacroSet
	err := s.db.GetContext(ctx, &quota,
		"SELECT calories, protein, carbs, fat FROM nutrition_quota WHERE id = 1",
	)
	if err != nil {
		return model.MacroSet{}, fmt.Errorf("querying nutrition quota: %w", err)
	}
	return quota, nil
}

// SetQuota upserts the quota singleton. The fixed id keeps the table at
// exactly one row no matter how often targets change.
func (s *SQLiteStore) SetQuota(ctx context.Context, quota model.MacroSet) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO nutrition_quota (id, calories, protein, carbs, fat)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET calories = ?, protein = ?, carbs = ?, fat = ?`,
		quota.Calories, quota.Protein, quota.Carbs, quota.Fat,
		quota.Calories, quota.Protein, quota.Carbs, quota.Fat,
	)
	if err != nil {
		return fmt.Errorf("setting nutrition quota: %w", err)
	}
	return nil
}

// AddSavedFood inserts a reusable macro template into the catalog.
func (s *SQLiteStore) AddSavedFood(ctx context.Context, food model.SavedFood) error {
	name := strings.TrimSpace(food.Name)
	if name == "" {
		return fmt.Errorf("saved food name must not be empty")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO saved_foods (name, calories, protein, carbs, fat)
		VALUES (?, ?, ?, ?, ?)`,
		name, food.Calories, food.Protein, food.Carbs, food.Fat,
	)
	if err != nil {
		return fmt.Errorf("adding saved food: %w", err)
	}
	return nil
}

// SavedFoods returns the food catalog, newest first.
func (s *SQLiteStore) SavedFoods(ctx context.Context) ([]model.SavedFood, error) {
	var foods []model.SavedFood
	err := s.db.SelectContext(ctx, &foods,
		"SELECT id, name, calories, protein, carbs, fat FROM saved_foods ORDER BY id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("querying saved foods: %w", err)
	}
	return foods, nil
}

// DeleteSavedFood removes a saved food by id.
func (s *SQLiteStore) DeleteSavedFood(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM saved_foods WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting saved food %d: %w", id, err)
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("saved food %d not found", id)
	}
	return nil
}
