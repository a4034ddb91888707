// Package scheme maps exercise names to their rep (or duration) range.
package scheme

import "strings"

// Scheme is the valid rep/duration range and step size for an exercise.
type Scheme struct {
	Min       int
	Max       int
	Step      int
	UnitLabel string
}

// defaultScheme is the hypertrophy range used by any exercise without an
// override.
var defaultScheme = Scheme{Min: 8, Max: 12, Step: 1, UnitLabel: "reps"}

// overrides is keyed by trimmed, lowercased exercise name.
var overrides = map[string]Scheme{
	// Primary compound lift trains in a low-rep strength range.
	"flat barbell bench press": {Min: 3, Max: 6, Step: 1, UnitLabel: "reps"},
	// Isometric hold measured in seconds.
	"elbow plank": {Min: 30, Max: 120, Step: 15, UnitLabel: "sec"},
}

// Resolve returns the scheme for an exercise name. It is total: unknown
// names fall back to the default scheme.
func Resolve(exerciseName string) Scheme {
	name := strings.ToLower(strings.TrimSpace(exerciseName))
	if s, ok := overrides[name]; ok {
		return s
	}
	return defaultScheme
}

// Clamp bounds a rep value into the scheme's range.
func (s Scheme) Clamp(reps int) int {
	if reps < s.Min {
		return s.Min
	}
	if reps > s.Max {
		return s.Max
	}
	return reps
}

// Values lists every selectable value from Min to Max by Step.
func (s Scheme) Values() []int {
	var vals []int
	for v := s.Min; v <= s.Max; v += s.Step {
		vals = append(vals, v)
	}
	return vals
}

// ReadyToUpgrade reports whether the most recent top and back-off reps
// both sit at the scheme's max, signalling the weight should go up next
// session. Missing reps never qualify.
func (s Scheme) ReadyToUpgrade(topReps, backReps *int) bool {
	return topReps != nil && backReps != nil &&
		*topReps == s.Max && *backReps == s.Max
}
