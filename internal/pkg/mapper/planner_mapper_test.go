package mapper

import (
	"testing"
	"time"

	"github.com/pradiptha/cfaprep-be/internal/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToStudyPlanEntity(t *testing.T) {
	plan := &planner.Plan{
		Name:      "Exam prep",
		StartDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		FocusAreas: []planner.FocusArea{
			{WeakArea: planner.WeakArea{TopicID: 2, Proficiency: 30, Priority: 3}, TopicName: "Quantitative Methods"},
		},
		Truncation: &planner.TruncationWarning{RequestedMinutes: 540, AvailableMinutes: 420},
	}

	row, err := ToStudyPlanEntity(7, 60, plan)
	require.NoError(t, err)

	assert.Equal(t, uint(7), row.UserID)
	assert.Equal(t, 60, row.DailyMinutes)
	assert.True(t, row.Truncated)
	assert.Equal(t, 540, row.RequestedMinutes)
	assert.Equal(t, 420, row.AvailableMinutes)

	decoded, err := FocusAreasFromJSON(row.FocusAreas)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, uint(2), decoded[0].TopicID)
	assert.Equal(t, "Quantitative Methods", decoded[0].TopicName)
	assert.Equal(t, 3, decoded[0].Priority)
}

func TestToStudySessionEntitiesPreservesOrder(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	sessions := []planner.Session{
		{Day: day, TopicID: 2, DurationMinutes: 40},
		{Day: day, TopicID: 5, DurationMinutes: 20},
		{Day: day.AddDate(0, 0, 1), TopicID: 2, DurationMinutes: 60},
	}

	rows := ToStudySessionEntities(11, sessions)

	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, uint(11), row.PlanID)
		assert.Equal(t, i, row.Position)
	}
	assert.Equal(t, uint(5), rows[1].TopicID)
}
