package model

import (
	"regexp"
	"strings"
)

// SplitDay is one day of the fixed training split.
type SplitDay struct {
	Name      string
	Exercises []string
}

// Split is the fixed six-day training plan.
var Split = []SplitDay{
	{
		Name: "DAY 1. CHEST / TRICEPS / CORE",
		Exercises: []string{
			"Flat Barbell Bench Press",
			"High-To-Low Cable Fly",
			"Cable Bar Overhead Extension",
			"Cable Bar Pushdown",
			"Elbow Plank",
			"Hyperextension",
		},
	},
	{
		Name: "DAY 2. BACK / BICEPS / FOREARMS",
		Exercises: []string{
			"Overhand Grip Lat Pulldown",
			"Chest-Supported Machine Row",
			"EZ-Bar Curl",
			"Cable Bar Curl",
			"Unilateral Hammer Curl",
			"Behind-Back Wrist Curl",
		},
	},
	{
		Name: "DAY 3. SHOULDERS / LEGS / ABS",
		Exercises: []string{
			"Dumbbell Shoulder Press",
			"Unilateral Cable Lateral Raise",
			"Leg Extension",
			"Seated Leg Curl",
			"Ab Crunch",
			"Lateral Ab Crunch",
		},
	},
	{
		Name: "DAY 4. CHEST / TRICEPS / CORE",
		Exercises: []string{
			"Incline Dumbbell Bench Press",
			"Low-To-High Cable Fly",
			"Cable Bar Overhead Extension",
			"Cable Bar Pushdown",
			"Elbow Plank",
			"Hyperextension",
		},
	},
	{
		Name: "DAY 5. BACK / BICEPS / FOREARMS",
		Exercises: []string{
			"Neutral Grip Lat Pulldown",
			"Cable Row",
			"EZ-Bar Curl",
			"Machine Preacher Curl",
			"Unilateral Hammer Curl",
			"Behind-Back Wrist Curl",
		},
	},
	{
		Name: "DAY 6. SHOULDERS / LEGS / ABS",
		Exercises: []string{
			"Peck-Deck Rear Delt Fly",
			"Dumbbell Shrugs",
			"Leg Extension",
			"Seated Leg Curl",
			"Ab Crunch",
			"Lateral Ab Crunch",
		},
	},
}

var dayPrefixRe = regexp.MustCompile(`(?i)^DAY\s*\d+\s*\.?\s*`)

// Subtitle strips the "DAY N." prefix from a split day name.
func (d SplitDay) Subtitle() string {
	return strings.TrimSpace(dayPrefixRe.ReplaceAllString(d.Name, ""))
}
