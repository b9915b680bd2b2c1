package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []Topic {
	return []Topic{
		{ID: 1, Name: "Ethical and Professional Standards"},
		{ID: 2, Name: "Quantitative Methods"},
		{ID: 3, Name: "Economics"},
	}
}

func TestEstimateWeakAreas_DerivesProficiencyAndPriority(t *testing.T) {
	progress := []ProgressRecord{
		{TopicID: 1, Attempted: 10, Correct: 2},
		{TopicID: 2, Attempted: 10, Correct: 5},
		{TopicID: 3, Attempted: 10, Correct: 9},
	}

	areas, err := EstimateWeakAreas(progress, testCatalog(), DefaultConfig())
	require.NoError(t, err)
	require.Len(t, areas, 3)

	assert.Equal(t, WeakArea{TopicID: 1, Proficiency: 20, Priority: 3}, areas[0])
	assert.Equal(t, WeakArea{TopicID: 2, Proficiency: 50, Priority: 2}, areas[1])
	assert.Equal(t, WeakArea{TopicID: 3, Proficiency: 90, Priority: 1}, areas[2])
}

func TestEstimateWeakAreas_UnattemptedTopicGetsDefaultEntry(t *testing.T) {
	progress := []ProgressRecord{{TopicID: 1, Attempted: 4, Correct: 4}}

	areas, err := EstimateWeakAreas(progress, testCatalog(), DefaultConfig())
	require.NoError(t, err)
	require.Len(t, areas, 3)

	// Topics 2 and 3 were never practiced: unknown, flagged for coverage.
	assert.Equal(t, WeakArea{TopicID: 2, Proficiency: 0, Priority: 3}, areas[1])
	assert.Equal(t, WeakArea{TopicID: 3, Proficiency: 0, Priority: 3}, areas[2])
}

func TestEstimateWeakAreas_ZeroAttemptsTreatedAsUnattempted(t *testing.T) {
	progress := []ProgressRecord{{TopicID: 1, Attempted: 0, Correct: 0}}

	areas, err := EstimateWeakAreas(progress, testCatalog(), DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, WeakArea{TopicID: 1, Proficiency: 0, Priority: 3}, areas[0])
}

func TestEstimateWeakAreas_MergesDuplicateRecords(t *testing.T) {
	progress := []ProgressRecord{
		{TopicID: 1, Attempted: 5, Correct: 1},
		{TopicID: 1, Attempted: 5, Correct: 3},
	}

	areas, err := EstimateWeakAreas(progress, testCatalog(), DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 40, areas[0].Proficiency)
	assert.Equal(t, 2, areas[0].Priority)
}

func TestEstimateWeakAreas_UnknownTopicFails(t *testing.T) {
	progress := []ProgressRecord{{TopicID: 99, Attempted: 5, Correct: 3}}

	_, err := EstimateWeakAreas(progress, testCatalog(), DefaultConfig())
	var invalid *InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestEstimateWeakAreas_InconsistentCountsFail(t *testing.T) {
	for _, rec := range []ProgressRecord{
		{TopicID: 1, Attempted: 5, Correct: 7},
		{TopicID: 1, Attempted: -1, Correct: 0},
		{TopicID: 1, Attempted: 5, Correct: -2},
	} {
		_, err := EstimateWeakAreas([]ProgressRecord{rec}, testCatalog(), DefaultConfig())
		var invalid *InvalidInputError
		assert.ErrorAs(t, err, &invalid)
	}
}

func TestPriorityThresholdBoundaries(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 3, cfg.priorityFor(0))
	assert.Equal(t, 3, cfg.priorityFor(39))
	assert.Equal(t, 2, cfg.priorityFor(40))
	assert.Equal(t, 2, cfg.priorityFor(70))
	assert.Equal(t, 1, cfg.priorityFor(71))
	assert.Equal(t, 1, cfg.priorityFor(100))
}
