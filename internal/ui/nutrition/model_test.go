package nutrition

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/gymlog/internal/keys"
	"github.com/nhle/gymlog/internal/model"
	"github.com/nhle/gymlog/tests/testutil"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	return New(testutil.NewTestStore(t), keys.DefaultKeyMap(), 80, 24)
}

func TestSubmitQuotaForm_OverridesCaloriesWithDerivedEnergy(t *testing.T) {
	m := newTestModel(t)
	m.date = model.Today()
	*m.fb = formBindings{
		calories: "2000", protein: "150", carbs: "200", fat: "60",
	}

	m, cmd := m.submitQuotaForm()
	require.NotNil(t, cmd)
	assert.Empty(t, m.errMsg)

	msg, ok := cmd().(mutationDoneMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)

	// |2000-1940| = 60 is within max(50, 0.05*1940) = 97, so the save
	// goes through — but with the derived 1940, never the entered 2000.
	quota, err := m.store.Quota(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.MacroSet{
		Calories: 1940, Protein: 150, Carbs: 200, Fat: 60,
	}, quota)
}

func TestSubmitQuotaForm_BlocksOutOfToleranceCalories(t *testing.T) {
	m := newTestModel(t)
	*m.fb = formBindings{
		calories: "2500", protein: "150", carbs: "200", fat: "60",
	}

	m, _ = m.submitQuotaForm()
	assert.NotEmpty(t, m.errMsg)
	require.NotNil(t, m.form)

	// |2500-1940| = 560 exceeds the tolerance; nothing may be written.
	quota, err := m.store.Quota(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultQuota, quota)
}

func TestSubmitQuotaForm_DerivesMissingCalories(t *testing.T) {
	m := newTestModel(t)
	*m.fb = formBindings{protein: "150", carbs: "200", fat: "60"}

	m, cmd := m.submitQuotaForm()
	require.NotNil(t, cmd)
	require.Empty(t, m.errMsg)

	msg, ok := cmd().(mutationDoneMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)

	quota, err := m.store.Quota(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.MacroSet{
		Calories: 1940, Protein: 150, Carbs: 200, Fat: 60,
	}, quota)
}

func TestSubmitQuotaForm_RejectsInsufficientInput(t *testing.T) {
	m := newTestModel(t)
	*m.fb = formBindings{calories: "2000", protein: "150"}

	m, _ = m.submitQuotaForm()
	assert.NotEmpty(t, m.errMsg)

	quota, err := m.store.Quota(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultQuota, quota)
}
