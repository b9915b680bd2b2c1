package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePlan_WeakTopicGetsTripleTime(t *testing.T) {
	catalog := []Topic{{ID: 1, Name: "Quantitative Methods"}, {ID: 2, Name: "Economics"}}
	progress := []ProgressRecord{
		{TopicID: 1, Attempted: 10, Correct: 2},
		{TopicID: 2, Attempted: 10, Correct: 9},
	}
	opts := Options{
		StartDate:                day(2026, 3, 2),
		EndDate:                  day(2026, 3, 6),
		DailyStudyTime:           60,
		GenerateFromUserProgress: true,
	}

	plan, err := GeneratePlan(opts, progress, catalog)
	require.NoError(t, err)

	totals := map[uint]int{}
	for _, s := range plan.Sessions {
		totals[s.TopicID] += s.DurationMinutes
	}
	// Proficiency 20 (priority 3) vs 90 (priority 1): a 3x share.
	assert.Equal(t, 3*totals[2], totals[1])
	assert.Nil(t, plan.Truncation)

	require.Len(t, plan.FocusAreas, 2)
	assert.Equal(t, "Quantitative Methods", plan.FocusAreas[0].TopicName)
	assert.Equal(t, 3, plan.FocusAreas[0].Priority)
}

func TestGeneratePlan_Idempotent(t *testing.T) {
	catalog := testCatalog()
	progress := []ProgressRecord{
		{TopicID: 1, Attempted: 20, Correct: 5},
		{TopicID: 2, Attempted: 8, Correct: 6},
	}
	opts := Options{
		Name:                     "March review",
		StartDate:                day(2026, 3, 2),
		EndDate:                  day(2026, 3, 15),
		DailyStudyTime:           90,
		GenerateFromUserProgress: true,
	}

	first, err := GeneratePlan(opts, progress, catalog)
	require.NoError(t, err)
	second, err := GeneratePlan(opts, progress, catalog)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGeneratePlan_SingleDaySingleTopicBoundary(t *testing.T) {
	catalog := []Topic{{ID: 1, Name: "Ethics"}}
	opts := Options{
		StartDate:      day(2026, 3, 2),
		EndDate:        day(2026, 3, 2),
		DailyStudyTime: 60,
		FocusAreas:     []WeakArea{{TopicID: 1, Proficiency: 30, Priority: 3}},
	}

	plan, err := GeneratePlan(opts, nil, catalog)
	require.NoError(t, err)

	require.Len(t, plan.Sessions, 1)
	assert.LessOrEqual(t, plan.Sessions[0].DurationMinutes, 60)
	assert.Equal(t, day(2026, 3, 2), plan.Sessions[0].Day)
	assert.Equal(t, plan.StartDate, plan.EndDate)
}

func TestGeneratePlan_TruncatedPlanFillsAvailableTime(t *testing.T) {
	catalog := testCatalog()
	opts := Options{
		StartDate:      day(2026, 3, 2),
		EndDate:        day(2026, 3, 6),
		DailyStudyTime: 60,
		FocusAreas: []WeakArea{
			{TopicID: 1, Proficiency: 10, Priority: 3},
			{TopicID: 2, Proficiency: 20, Priority: 3},
			{TopicID: 3, Proficiency: 30, Priority: 3},
		},
	}

	plan, err := GeneratePlan(opts, nil, catalog)
	require.NoError(t, err)

	assert.Equal(t, 300, plan.TotalMinutes())
	require.NotNil(t, plan.Truncation)
	assert.Equal(t, 540, plan.Truncation.RequestedMinutes)
	assert.Equal(t, 300, plan.Truncation.AvailableMinutes)
}

func TestGeneratePlan_SessionTotalsMatchAllocations(t *testing.T) {
	catalog := testCatalog()
	progress := []ProgressRecord{
		{TopicID: 1, Attempted: 10, Correct: 1},
		{TopicID: 2, Attempted: 10, Correct: 6},
		{TopicID: 3, Attempted: 10, Correct: 10},
	}
	opts := Options{
		StartDate:                day(2026, 3, 2),
		EndDate:                  day(2026, 3, 11),
		DailyStudyTime:           45,
		GenerateFromUserProgress: true,
	}

	plan, err := GeneratePlan(opts, progress, catalog)
	require.NoError(t, err)

	budget, err := AllocateBudget(plan.FocusAreas, opts, DefaultConfig())
	require.NoError(t, err)

	totals := map[uint]int{}
	for _, s := range plan.Sessions {
		totals[s.TopicID] += s.DurationMinutes
	}
	for _, a := range budget.Allocations {
		assert.Equal(t, a.Minutes, totals[a.TopicID], "topic %d", a.TopicID)
	}
}

func TestGeneratePlan_NoDayExceedsDailyStudyTime(t *testing.T) {
	catalog := testCatalog()
	progress := []ProgressRecord{
		{TopicID: 1, Attempted: 12, Correct: 3},
		{TopicID: 2, Attempted: 9, Correct: 4},
		{TopicID: 3, Attempted: 15, Correct: 14},
	}
	opts := Options{
		StartDate:                day(2026, 3, 2),
		EndDate:                  day(2026, 3, 8),
		DailyStudyTime:           50,
		GenerateFromUserProgress: true,
	}

	plan, err := GeneratePlan(opts, progress, catalog)
	require.NoError(t, err)

	perDay := map[time.Time]int{}
	for _, s := range plan.Sessions {
		perDay[s.Day] += s.DurationMinutes
	}
	for d, total := range perDay {
		assert.LessOrEqual(t, total, 50, "day %s", d.Format("2006-01-02"))
	}
}

func TestGeneratePlan_ExplicitFocusAreaUnknownTopicFails(t *testing.T) {
	opts := Options{
		StartDate:  day(2026, 3, 2),
		EndDate:    day(2026, 3, 6),
		FocusAreas: []WeakArea{{TopicID: 99, Proficiency: 50, Priority: 2}},
	}

	_, err := GeneratePlan(opts, nil, testCatalog())
	var invalid *InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestGeneratePlan_RequiresFocusAreasOrDerivation(t *testing.T) {
	opts := Options{StartDate: day(2026, 3, 2), EndDate: day(2026, 3, 6)}

	_, err := GeneratePlan(opts, nil, testCatalog())
	var invalid *InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestGeneratePlan_MissingDatesFail(t *testing.T) {
	opts := Options{GenerateFromUserProgress: true}

	_, err := GeneratePlan(opts, nil, testCatalog())
	var invalid *InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestGeneratePlan_EmptyCatalogFails(t *testing.T) {
	opts := Options{
		StartDate:                day(2026, 3, 2),
		EndDate:                  day(2026, 3, 6),
		GenerateFromUserProgress: true,
	}

	_, err := GeneratePlan(opts, nil, nil)
	var invalid *InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestGeneratePlan_ExplicitAreasOverrideDerivation(t *testing.T) {
	catalog := testCatalog()
	// Progress says topic 1 is the weakest, but the explicit override
	// names only topic 3.
	progress := []ProgressRecord{{TopicID: 1, Attempted: 10, Correct: 0}}
	opts := Options{
		StartDate:                day(2026, 3, 2),
		EndDate:                  day(2026, 3, 6),
		GenerateFromUserProgress: true,
		FocusAreas:               []WeakArea{{TopicID: 3, Proficiency: 60, Priority: 2}},
	}

	plan, err := GeneratePlan(opts, progress, catalog)
	require.NoError(t, err)

	require.Len(t, plan.FocusAreas, 1)
	assert.Equal(t, uint(3), plan.FocusAreas[0].TopicID)
}
