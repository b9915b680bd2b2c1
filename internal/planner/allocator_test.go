package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func focusList(priorities ...int) []FocusArea {
	focus := make([]FocusArea, len(priorities))
	for i, p := range priorities {
		focus[i] = FocusArea{WeakArea: WeakArea{TopicID: uint(i + 1), Priority: p}, TopicName: "T"}
	}
	return focus
}

func TestAllocateBudget_ProportionalToPriorityWeight(t *testing.T) {
	opts := Options{StartDate: day(2026, 3, 2), EndDate: day(2026, 3, 6), DailyStudyTime: 60}

	budget, err := AllocateBudget(focusList(3, 1), opts, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, budget.Allocations, 2)

	assert.Equal(t, 180, budget.Allocations[0].Minutes)
	assert.Equal(t, 60, budget.Allocations[1].Minutes)
	assert.Nil(t, budget.Truncation)
	assert.Len(t, budget.Days, 5)
}

func TestAllocateBudget_DefaultDailyMinutes(t *testing.T) {
	opts := Options{StartDate: day(2026, 3, 2), EndDate: day(2026, 3, 2)}

	budget, err := AllocateBudget(focusList(1), opts, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, DefaultDailyMinutes, budget.DailyMinutes)
}

func TestAllocateBudget_TruncationScalesToAvailable(t *testing.T) {
	// Three high-priority areas request 540 minutes; 5 days x 60 = 300.
	opts := Options{StartDate: day(2026, 3, 2), EndDate: day(2026, 3, 6), DailyStudyTime: 60}

	budget, err := AllocateBudget(focusList(3, 3, 3), opts, DefaultConfig())
	require.NoError(t, err)

	total := 0
	for _, a := range budget.Allocations {
		assert.Greater(t, a.Minutes, 0)
		total += a.Minutes
	}
	assert.Equal(t, 300, total)

	require.NotNil(t, budget.Truncation)
	assert.Equal(t, 540, budget.Truncation.RequestedMinutes)
	assert.Equal(t, 300, budget.Truncation.AvailableMinutes)
}

func TestAllocateBudget_TargetExamDateClampsHorizon(t *testing.T) {
	exam := day(2026, 3, 4)
	opts := Options{
		StartDate:      day(2026, 3, 2),
		EndDate:        day(2026, 3, 10),
		DailyStudyTime: 60,
		TargetExamDate: &exam,
	}

	budget, err := AllocateBudget(focusList(1), opts, DefaultConfig())
	require.NoError(t, err)
	assert.Len(t, budget.Days, 3)
	assert.Equal(t, exam, budget.Days[len(budget.Days)-1])
}

func TestAllocateBudget_EndBeforeStartFails(t *testing.T) {
	opts := Options{StartDate: day(2026, 3, 6), EndDate: day(2026, 3, 2)}

	_, err := AllocateBudget(focusList(1), opts, DefaultConfig())
	var rangeErr *InvalidRangeError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestAllocateBudget_ExamBeforeStartFails(t *testing.T) {
	exam := day(2026, 3, 1)
	opts := Options{StartDate: day(2026, 3, 2), EndDate: day(2026, 3, 6), TargetExamDate: &exam}

	_, err := AllocateBudget(focusList(1), opts, DefaultConfig())
	var rangeErr *InvalidRangeError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestAllocateBudget_NegativeDailyTimeFails(t *testing.T) {
	opts := Options{StartDate: day(2026, 3, 2), EndDate: day(2026, 3, 6), DailyStudyTime: -30}

	_, err := AllocateBudget(focusList(1), opts, DefaultConfig())
	var rangeErr *InvalidRangeError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestAllocateBudget_EmptyFocusListFails(t *testing.T) {
	opts := Options{StartDate: day(2026, 3, 2), EndDate: day(2026, 3, 6)}

	_, err := AllocateBudget(nil, opts, DefaultConfig())
	var empty *EmptySelectionError
	assert.ErrorAs(t, err, &empty)
}

func TestScaleDown_ExactSumAndFloor(t *testing.T) {
	scaled := scaleDown([]int{180, 180, 180}, 540, 300)
	sum := 0
	for _, m := range scaled {
		assert.GreaterOrEqual(t, m, 1)
		sum += m
	}
	assert.Equal(t, 300, sum)

	// A tiny budget still keeps every topic on the plan.
	scaled = scaleDown([]int{180, 60, 60}, 300, 4)
	sum = 0
	for _, m := range scaled {
		assert.GreaterOrEqual(t, m, 1)
		sum += m
	}
	assert.Equal(t, 4, sum)
}
