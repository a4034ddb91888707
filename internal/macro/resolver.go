// Package macro reconciles partially-specified nutrition input into a
// consistent calories/protein/carbs/fat record.
package macro

import (
	"math"
	"strconv"
	"strings"

	"github.com/nhle/gymlog/internal/model"
)

// Energy content per gram of macro nutrient, in kcal.
const (
	KcalPerGramProtein = 4
	KcalPerGramCarbs   = 4
	KcalPerGramFat     = 9
)

// Input carries the four raw field values as typed by the user. Empty or
// non-numeric fields count as absent; a comma decimal separator is
// accepted.
type Input struct {
	Calories string
	Protein  string
	Carbs    string
	Fat      string
}

// State classifies the outcome of a resolution.
type State int

const (
	// Insufficient means fewer than three fields were present; nothing
	// was derived and saving must stay disabled.
	Insufficient State = iota
	// Resolved means all four values were derived or confirmed. Check
	// Valid before saving.
	Resolved
)

// Resolution is the outcome of resolving an Input. When State is
// Resolved, Calories/Protein/Carbs/Fat hold the values to store; the raw
// entered calories value is never stored.
type Resolution struct {
	State    State
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	// CanSave is true once at least three fields are present. A save may
	// still be blocked by ShowError.
	CanSave bool
	// Valid is true when all resolved values are non-negative and, with
	// all four fields entered, the entered calories sit within tolerance
	// of the macro-derived energy.
	Valid bool
}

// ShowError reports whether the UI should show the error state: enough
// input to resolve, but the resolution is inconsistent.
func (r Resolution) ShowError() bool {
	return r.CanSave && !r.Valid
}

// Macros returns the resolved values as a MacroSet for storage.
func (r Resolution) Macros() model.MacroSet {
	return model.MacroSet{
		Calories: r.Calories,
		Protein:  r.Protein,
		Carbs:    r.Carbs,
		Fat:      r.Fat,
	}
}

// Energy computes the macro-derived energy in kcal (4/4/9 rule).
func Energy(protein, carbs, fat float64) float64 {
	return protein*KcalPerGramProtein + carbs*KcalPerGramCarbs + fat*KcalPerGramFat
}

// Tolerance is the allowed gap between entered calories and the
// macro-derived energy: 50 kcal absolute or 5% of the derived energy,
// whichever is larger.
func Tolerance(derived float64) float64 {
	return math.Max(50, 0.05*derived)
}

// Resolve parses the input and fills in the missing value, if any.
//
// With exactly one field absent the missing value is derived from the
// energy identity and rounded up (ceiling is the deliberate policy).
// With all four fields present the stored calories are overridden by the
// derived energy (rounded to nearest); the entered calories only feed the
// tolerance check. A derived value may come out negative; it is kept as
// is and flagged invalid rather than clamped.
func Resolve(in Input) Resolution {
	cal, hasCal := parseField(in.Calories)
	pro, hasPro := parseField(in.Protein)
	carb, hasCarb := parseField(in.Carbs)
	fat, hasFat := parseField(in.Fat)

	k := 0
	for _, present := range []bool{hasCal, hasPro, hasCarb, hasFat} {
		if present {
			k++
		}
	}
	if k < 3 {
		return Resolution{State: Insufficient}
	}

	res := Resolution{State: Resolved, CanSave: true}

	switch {
	case k == 4:
		derived := Energy(pro, carb, fat)
		res.Calories = math.Round(derived)
		res.Protein, res.Carbs, res.Fat = pro, carb, fat
		res.Valid = allNonNegative(res) &&
			math.Abs(cal-derived) <= Tolerance(derived)
		return res

	case !hasCal:
		res.Calories = math.Ceil(Energy(pro, carb, fat))
		res.Protein, res.Carbs, res.Fat = pro, carb, fat

	case !hasPro:
		res.Protein = math.Ceil((cal - carb*KcalPerGramCarbs - fat*KcalPerGramFat) / KcalPerGramProtein)
		res.Calories, res.Carbs, res.Fat = cal, carb, fat

	case !hasCarb:
		res.Carbs = math.Ceil((cal - pro*KcalPerGramProtein - fat*KcalPerGramFat) / KcalPerGramCarbs)
		res.Calories, res.Protein, res.Fat = cal, pro, fat

	default: // fat absent
		res.Fat = math.Ceil((cal - pro*KcalPerGramProtein - carb*KcalPerGramCarbs) / KcalPerGramFat)
		res.Calories, res.Protein, res.Carbs = cal, pro, carb
	}

	res.Valid = allNonNegative(res)
	return res
}

func allNonNegative(r Resolution) bool {
	return r.Calories >= 0 && r.Protein >= 0 && r.Carbs >= 0 && r.Fat >= 0
}

// parseField normalizes and parses one input field. The second return
// value is false when the field is absent (empty or not a number).
func parseField(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
