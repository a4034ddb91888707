package scheme_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/gymlog/internal/scheme"
)

func TestResolve_Overrides(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want scheme.Scheme
	}{
		{
			name: "bench press strength range",
			in:   "Flat Barbell Bench Press",
			want: scheme.Scheme{Min: 3, Max: 6, Step: 1, UnitLabel: "reps"},
		},
		{
			name: "bench press case insensitive and trimmed",
			in:   "  flat BARBELL bench press ",
			want: scheme.Scheme{Min: 3, Max: 6, Step: 1, UnitLabel: "reps"},
		},
		{
			name: "plank time based",
			in:   "Elbow Plank",
			want: scheme.Scheme{Min: 30, Max: 120, Step: 15, UnitLabel: "sec"},
		},
		{
			name: "unknown falls back to default",
			in:   "Cable Row",
			want: scheme.Scheme{Min: 8, Max: 12, Step: 1, UnitLabel: "reps"},
		},
		{
			name: "empty name falls back to default",
			in:   "",
			want: scheme.Scheme{Min: 8, Max: 12, Step: 1, UnitLabel: "reps"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scheme.Resolve(tt.in))
		})
	}
}

// Every resolvable scheme must have min <= max and max reachable by
// integer steps from min.
func TestResolve_Total(t *testing.T) {
	names := []string{
		"Flat Barbell Bench Press", "Elbow Plank", "Leg Extension",
		"anything at all", "", "ploP",
	}
	for _, name := range names {
		s := scheme.Resolve(name)
		require.LessOrEqual(t, s.Min, s.Max, "scheme for %q", name)
		require.Positive(t, s.Step, "scheme for %q", name)
		require.Zero(t, (s.Max-s.Min)%s.Step, "max unreachable for %q", name)

		vals := s.Values()
		require.NotEmpty(t, vals)
		assert.Equal(t, s.Min, vals[0])
		assert.Equal(t, s.Max, vals[len(vals)-1])
	}
}

func TestScheme_Clamp(t *testing.T) {
	s := scheme.Resolve("Elbow Plank")
	assert.Equal(t, 30, s.Clamp(5))
	assert.Equal(t, 120, s.Clamp(900))
	assert.Equal(t, 45, s.Clamp(45))
}

func TestScheme_ReadyToUpgrade(t *testing.T) {
	s := scheme.Resolve("Flat Barbell Bench Press")
	six := 6
	five := 5

	assert.True(t, s.ReadyToUpgrade(&six, &six))
	assert.False(t, s.ReadyToUpgrade(&six, &five))
	assert.False(t, s.ReadyToUpgrade(&five, &six))
	assert.False(t, s.ReadyToUpgrade(nil, &six))
	assert.False(t, s.ReadyToUpgrade(&six, nil))
	assert.False(t, s.ReadyToUpgrade(nil, nil))
}
