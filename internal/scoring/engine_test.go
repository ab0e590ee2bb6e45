package scoring

import (
	"testing"

	"solidaria/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreEmergencySurgeryIsCritical(t *testing.T) {
	req := types.AidRequest{
		Title:           "Cirugía de emergencia para Pedrito",
		Description:     "Requiere operación de corazón en los próximos días",
		Category:        types.CategoryHealth,
		RequestedAmount: 15000,
	}

	scored := Score(req)

	assert.GreaterOrEqual(t, scored.Score, 0.9)
	assert.LessOrEqual(t, scored.Score, 1.0)
	assert.Equal(t, types.PriorityCritical, scored.Priority)
	assert.Contains(t, scored.Explanation, "Critical risk.")
	assert.Contains(t, scored.Explanation, "'emergencia'")
	assert.Contains(t, scored.Explanation, "'operación'")
	assert.Contains(t, scored.Explanation, "'corazón'")
	assert.Contains(t, scored.Explanation, "health")
	assert.Contains(t, scored.Explanation, "15.000")
}

func TestScoreHistoryBooksIsLow(t *testing.T) {
	req := types.AidRequest{
		Title:           "Libros de historia",
		Description:     "Material de lectura para la biblioteca",
		Category:        types.CategoryEducation,
		RequestedAmount: 500,
	}

	scored := Score(req)

	// Baseline minus the low-amount penalty, no boosts.
	assert.InDelta(t, 0.45, scored.Score, 1e-9)
	assert.Equal(t, types.PriorityLow, scored.Priority)
	assert.NotContains(t, scored.Explanation, "keywords")
}

func TestScoreNeutralRequestStaysAtBaseline(t *testing.T) {
	req := types.AidRequest{
		Title:           "Pintura para el mural",
		Description:     "Material de arte",
		Category:        "CULTURE",
		RequestedAmount: 5000,
	}

	scored := Score(req)

	assert.Equal(t, 0.5, scored.Score)
	assert.Equal(t, types.PriorityLow, scored.Priority)
	assert.NotContains(t, scored.Explanation, "keywords")
}

func TestScoreIsDeterministic(t *testing.T) {
	req := types.AidRequest{
		Title:           "Reparación urgente del techo de la escuela",
		Description:     "Las lluvias dañaron las aulas",
		Category:        types.CategoryInfrastructure,
		RequestedAmount: 12000,
	}

	first := Score(req)
	second := Score(req)

	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Priority, second.Priority)
	assert.Equal(t, first.Explanation, second.Explanation)
}

func TestScoreIsAlwaysWithinBounds(t *testing.T) {
	requests := []types.AidRequest{
		{},
		{Title: "emergencia urgencia urgente operación corazón", Category: types.CategoryHealth, RequestedAmount: 50000},
		{Title: "x", Description: "y", RequestedAmount: 1},
	}

	for _, req := range requests {
		scored := Score(req)
		assert.GreaterOrEqual(t, scored.Score, 0.0)
		assert.LessOrEqual(t, scored.Score, 1.0)
	}
}

func TestPriorityForThresholds(t *testing.T) {
	cases := []struct {
		score float64
		want  types.Priority
	}{
		{1.0, types.PriorityCritical},
		{0.9, types.PriorityCritical},
		{0.89, types.PriorityHigh},
		{0.75, types.PriorityHigh},
		{0.74, types.PriorityMedium},
		{0.6, types.PriorityMedium},
		{0.59, types.PriorityLow},
		{0, types.PriorityLow},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, PriorityFor(tc.score), "score %v", tc.score)
	}
}

func TestScoreAllPreservesOrder(t *testing.T) {
	reqs := []types.AidRequest{
		{ID: 1, Title: "Libros"},
		{ID: 2, Title: "Emergencia médica", Category: types.CategoryHealth},
		{ID: 3, Title: "Sillas"},
	}

	scored := ScoreAll(reqs)

	require.Len(t, scored, 3)
	for i, sr := range scored {
		assert.Equal(t, reqs[i].ID, sr.ID)
	}
}
