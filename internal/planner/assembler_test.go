package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func daysFrom(start time.Time, n int) []time.Time {
	days := make([]time.Time, n)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

func TestAssembleSessions_PreservesPerTopicBudgets(t *testing.T) {
	allocations := []Allocation{{TopicID: 1, Minutes: 180}, {TopicID: 2, Minutes: 60}}
	days := daysFrom(day(2026, 3, 2), 5)

	sessions := AssembleSessions(allocations, days, 60)

	totals := map[uint]int{}
	for _, s := range sessions {
		totals[s.TopicID] += s.DurationMinutes
	}
	assert.Equal(t, 180, totals[1])
	assert.Equal(t, 60, totals[2])
}

func TestAssembleSessions_NeverExceedsDailyCeiling(t *testing.T) {
	allocations := []Allocation{
		{TopicID: 1, Minutes: 95},
		{TopicID: 2, Minutes: 70},
		{TopicID: 3, Minutes: 45},
	}
	days := daysFrom(day(2026, 3, 2), 4)

	sessions := AssembleSessions(allocations, days, 60)

	perDay := map[time.Time]int{}
	for _, s := range sessions {
		perDay[s.Day] += s.DurationMinutes
	}
	for d, total := range perDay {
		assert.LessOrEqual(t, total, 60, "day %s over the ceiling", d.Format("2006-01-02"))
	}
}

func TestAssembleSessions_RoundRobinsWithinADay(t *testing.T) {
	allocations := []Allocation{{TopicID: 1, Minutes: 60}, {TopicID: 2, Minutes: 60}}
	days := daysFrom(day(2026, 3, 2), 2)

	sessions := AssembleSessions(allocations, days, 60)

	// Both topics share each day instead of taking a marathon day each.
	require.Len(t, sessions, 4)
	assert.Equal(t, uint(1), sessions[0].TopicID)
	assert.Equal(t, uint(2), sessions[1].TopicID)
	assert.Equal(t, sessions[0].Day, sessions[1].Day)
	assert.Equal(t, 30, sessions[0].DurationMinutes)
	assert.Equal(t, 30, sessions[1].DurationMinutes)
}

func TestAssembleSessions_StopsWhenBudgetsExhausted(t *testing.T) {
	allocations := []Allocation{{TopicID: 1, Minutes: 30}}
	days := daysFrom(day(2026, 3, 2), 10)

	sessions := AssembleSessions(allocations, days, 60)

	require.Len(t, sessions, 1)
	assert.Equal(t, 30, sessions[0].DurationMinutes)
	assert.Equal(t, days[0], sessions[0].Day)
}

func TestAssembleSessions_OrderedByDayThenRank(t *testing.T) {
	allocations := []Allocation{{TopicID: 5, Minutes: 40}, {TopicID: 3, Minutes: 40}}
	days := daysFrom(day(2026, 3, 2), 2)

	sessions := AssembleSessions(allocations, days, 60)

	for i := 1; i < len(sessions); i++ {
		prev, cur := sessions[i-1], sessions[i]
		assert.False(t, cur.Day.Before(prev.Day))
	}
	// Rank order within the first day follows the allocation order.
	assert.Equal(t, uint(5), sessions[0].TopicID)
	assert.Equal(t, uint(3), sessions[1].TopicID)
}

func TestAssembleSessions_Deterministic(t *testing.T) {
	allocations := []Allocation{
		{TopicID: 1, Minutes: 75},
		{TopicID: 2, Minutes: 50},
		{TopicID: 3, Minutes: 25},
	}
	days := daysFrom(day(2026, 3, 2), 3)

	first := AssembleSessions(allocations, days, 60)
	second := AssembleSessions(allocations, days, 60)
	assert.Equal(t, first, second)
}
