package usecase

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/entity"
	"github.com/pradiptha/cfaprep-be/internal/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPlannerOptions(t *testing.T) {
	t.Run("parses dates and focus areas", func(t *testing.T) {
		req := entity.GeneratePlanRequest{
			Name:           "Final sprint",
			StartDate:      "2026-09-01",
			EndDate:        "2026-09-14",
			DailyStudyTime: 90,
			TargetExamDate: "2026-11-18",
			ExcludedTopics: []uint{3},
			FocusAreas: []entity.FocusAreaInput{
				{TopicID: 2, Proficiency: 35, Priority: 3},
			},
		}

		opts, err := toPlannerOptions(req)
		require.NoError(t, err)

		assert.Equal(t, "Final sprint", opts.Name)
		assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), opts.StartDate)
		assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), opts.EndDate)
		assert.Equal(t, 90, opts.DailyStudyTime)
		require.NotNil(t, opts.TargetExamDate)
		assert.Equal(t, time.Date(2026, 11, 18, 0, 0, 0, 0, time.UTC), *opts.TargetExamDate)
		require.Len(t, opts.FocusAreas, 1)
		assert.Equal(t, uint(2), opts.FocusAreas[0].TopicID)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		_, err := toPlannerOptions(entity.GeneratePlanRequest{
			StartDate: "01-09-2026",
			EndDate:   "2026-09-14",
		})
		require.Error(t, err)

		fiberErr, ok := err.(*fiber.Error)
		require.True(t, ok)
		assert.Equal(t, fiber.StatusBadRequest, fiberErr.Code)
	})
}

func TestPlannerError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "empty selection maps to 422", err: &planner.EmptySelectionError{Reason: "all topics excluded"}, expected: fiber.StatusUnprocessableEntity},
		{name: "invalid input maps to 400", err: &planner.InvalidInputError{Reason: "unknown topic"}, expected: fiber.StatusBadRequest},
		{name: "invalid range maps to 400", err: &planner.InvalidRangeError{Reason: "end before start"}, expected: fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := plannerError(tt.err)
			fiberErr, ok := err.(*fiber.Error)
			require.True(t, ok)
			assert.Equal(t, tt.expected, fiberErr.Code)
		})
	}
}
