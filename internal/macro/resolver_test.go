package macro_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/gymlog/internal/macro"
)

func TestResolve_InsufficientInput(t *testing.T) {
	tests := []struct {
		name string
		in   macro.Input
	}{
		{"all empty", macro.Input{}},
		{"one field", macro.Input{Protein: "150"}},
		{"two fields", macro.Input{Protein: "150", Carbs: "200"}},
		{
			"garbage does not count as present",
			macro.Input{Calories: "abc", Protein: "150", Carbs: "x", Fat: "60"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := macro.Resolve(tt.in)
			assert.Equal(t, macro.Insufficient, res.State)
			assert.False(t, res.CanSave)
			assert.False(t, res.ShowError())
		})
	}
}

func TestResolve_MissingCalories(t *testing.T) {
	// protein=150, carbs=200, fat=60 -> 600+800+540 = 1940
	res := macro.Resolve(macro.Input{Protein: "150", Carbs: "200", Fat: "60"})

	require.Equal(t, macro.Resolved, res.State)
	assert.True(t, res.CanSave)
	assert.True(t, res.Valid)
	assert.False(t, res.ShowError())
	assert.Equal(t, 1940.0, res.Calories)
	assert.Equal(t, 150.0, res.Protein)
	assert.Equal(t, 200.0, res.Carbs)
	assert.Equal(t, 60.0, res.Fat)
}

func TestResolve_DerivedValuesRoundUp(t *testing.T) {
	tests := []struct {
		name string
		in   macro.Input
		get  func(macro.Resolution) float64
		want float64
	}{
		{
			// 10.5*4 + 20*4 + 10*9 = 42+80+90 = 212
			name: "calories ceil of fractional energy",
			in:   macro.Input{Protein: "10.5", Carbs: "20", Fat: "10"},
			get:  func(r macro.Resolution) float64 { return r.Calories },
			want: 212,
		},
		{
			// (2000 - 200*4 - 60*9) / 4 = 660/4 = 165
			name: "protein derived",
			in:   macro.Input{Calories: "2000", Carbs: "200", Fat: "60"},
			get:  func(r macro.Resolution) float64 { return r.Protein },
			want: 165,
		},
		{
			// (2001 - 150*4 - 60*9) / 4 = 861/4 = 215.25 -> 216
			name: "carbs ceil",
			in:   macro.Input{Calories: "2001", Protein: "150", Fat: "60"},
			get:  func(r macro.Resolution) float64 { return r.Carbs },
			want: 216,
		},
		{
			// (2000 - 150*4 - 200*4) / 9 = 600/9 = 66.66 -> 67
			name: "fat ceil",
			in:   macro.Input{Calories: "2000", Protein: "150", Carbs: "200"},
			get:  func(r macro.Resolution) float64 { return r.Fat },
			want: 67,
		},
		{
			name: "comma decimal separator accepted",
			in:   macro.Input{Protein: "10,5", Carbs: "20", Fat: "10"},
			get:  func(r macro.Resolution) float64 { return r.Calories },
			want: 212,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := macro.Resolve(tt.in)
			require.Equal(t, macro.Resolved, res.State)
			assert.True(t, res.Valid)
			assert.Equal(t, tt.want, tt.get(res))
		})
	}
}

func TestResolve_NegativeDerivedValueIsInvalid(t *testing.T) {
	// (100 - 150*4 - 60*9) / 4 is far below zero; must surface as
	// invalid, not clamp to zero.
	res := macro.Resolve(macro.Input{Calories: "100", Carbs: "150", Fat: "60"})

	require.Equal(t, macro.Resolved, res.State)
	assert.True(t, res.CanSave)
	assert.False(t, res.Valid)
	assert.True(t, res.ShowError())
	assert.Negative(t, res.Protein)
}

func TestResolve_AllFourWithinTolerance(t *testing.T) {
	// derived = 1940, |2000-1940| = 60 <= max(50, 97)
	res := macro.Resolve(macro.Input{
		Calories: "2000", Protein: "150", Carbs: "200", Fat: "60",
	})

	require.Equal(t, macro.Resolved, res.State)
	assert.True(t, res.Valid)
	assert.False(t, res.ShowError())
	// Stored calories are the derived energy, not the entered value.
	assert.Equal(t, 1940.0, res.Calories)
	assert.Equal(t, 150.0, res.Protein)
	assert.Equal(t, 200.0, res.Carbs)
	assert.Equal(t, 60.0, res.Fat)
}

func TestResolve_AllFourOutsideTolerance(t *testing.T) {
	// derived = 1940, |2500-1940| = 560 > 97
	res := macro.Resolve(macro.Input{
		Calories: "2500", Protein: "150", Carbs: "200", Fat: "60",
	})

	require.Equal(t, macro.Resolved, res.State)
	assert.True(t, res.CanSave)
	assert.False(t, res.Valid)
	assert.True(t, res.ShowError())
}

func TestResolve_AllFourCaloriesRoundedNotCeiled(t *testing.T) {
	// 10.1*4 + 0*4 + 0*9 = 40.4 -> round = 40 (ceiling would give 41)
	res := macro.Resolve(macro.Input{
		Calories: "40", Protein: "10.1", Carbs: "0", Fat: "0",
	})

	require.Equal(t, macro.Resolved, res.State)
	assert.True(t, res.Valid)
	assert.Equal(t, 40.0, res.Calories)
}

func TestResolve_AbsoluteToleranceFloor(t *testing.T) {
	// derived = 100; 5% would only allow 5 kcal, but the absolute floor
	// is 50 kcal, so an entered value of 140 still passes.
	res := macro.Resolve(macro.Input{
		Calories: "140", Protein: "25", Carbs: "0", Fat: "0",
	})
	require.Equal(t, macro.Resolved, res.State)
	assert.True(t, res.Valid)

	// 151 exceeds 100+50.
	res = macro.Resolve(macro.Input{
		Calories: "151", Protein: "25", Carbs: "0", Fat: "0",
	})
	assert.False(t, res.Valid)
}

func TestResolve_NegativeEnteredMacroIsInvalid(t *testing.T) {
	res := macro.Resolve(macro.Input{
		Calories: "100", Protein: "-10", Carbs: "20", Fat: "10",
	})
	require.Equal(t, macro.Resolved, res.State)
	assert.False(t, res.Valid)
}

func TestTolerance(t *testing.T) {
	assert.Equal(t, 50.0, macro.Tolerance(100))
	assert.Equal(t, 50.0, macro.Tolerance(1000))
	assert.Equal(t, 97.0, macro.Tolerance(1940))
}

func TestEnergy(t *testing.T) {
	assert.Equal(t, 1940.0, macro.Energy(150, 200, 60))
	assert.Equal(t, 0.0, macro.Energy(0, 0, 0))
}
