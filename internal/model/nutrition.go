package model

// MacroSet is a calories/protein/carbs/fat quadruple, used for daily
// totals and for the quota targets.
type MacroSet struct {
	Calories float64 `db:"calories"`
	Protein  float64 `db:"protein"`
	Carbs    float64 `db:"carbs"`
	Fat      float64 `db:"fat"`
}

// DefaultQuota matches the seed row created on first init.
var DefaultQuota = MacroSet{Calories: 2500, Protein: 150, Carbs: 300, Fat: 80}

// NutritionLog is one logged food/meal for a calendar day. Immutable after
// creation except for the food name label and deletion.
type NutritionLog struct {
	ID       int64   `db:"id"`
	Date     string  `db:"date"`
	Calories float64 `db:"calories"`
	Protein  float64 `db:"protein"`
	Carbs    float64 `db:"carbs"`
	Fat      float64 `db:"fat"`
	FoodName string  `db:"food_name"`
}

// SavedFood is a reusable macro template in the food catalog.
type SavedFood struct {
	ID       int64   `db:"id"`
	Name     string  `db:"name"`
	Calories float64 `db:"calories"`
	Protein  float64 `db:"protein"`
	Carbs    float64 `db:"carbs"`
	Fat      float64 `db:"fat"`
}
