package usecase

import (
	"testing"
	"time"

	"github.com/pradiptha/cfaprep-be/internal/delivery/http/entity"
	internalEntity "github.com/pradiptha/cfaprep-be/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinProgressWithTopics(t *testing.T) {
	topics := []internalEntity.Topic{
		{ID: 1, Name: "Ethics"},
		{ID: 2, Name: "Fixed Income"},
	}
	practiced := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	progress := []internalEntity.TopicProgress{
		{TopicID: 1, Attempted: 10, Correct: 7, Accuracy: 70, LastPracticedAt: &practiced},
		{TopicID: 9, Attempted: 4, Correct: 2, Accuracy: 50}, // topic removed
	}

	rows := joinProgressWithTopics(progress, topics)

	require.Len(t, rows, 1)
	assert.Equal(t, "Ethics", rows[0].TopicName)
	assert.Equal(t, 70, rows[0].Accuracy)
	assert.Equal(t, "2026-02-01T10:00:00Z", rows[0].LastPracticedAt)
}

func TestRankTopicProgress(t *testing.T) {
	rows := []entity.TopicProgressResponse{
		{TopicID: 1, TopicName: "Ethics", Attempted: 10, Accuracy: 90},
		{TopicID: 2, TopicName: "Quant", Attempted: 10, Accuracy: 40},
		{TopicID: 3, TopicName: "Economics", Attempted: 0, Accuracy: 0}, // never practiced
		{TopicID: 4, TopicName: "Fixed Income", Attempted: 10, Accuracy: 40},
		{TopicID: 5, TopicName: "Equity", Attempted: 10, Accuracy: 60},
	}

	t.Run("weakest first with stable ties", func(t *testing.T) {
		weakest := rankTopicProgress(rows, 3, true)

		require.Len(t, weakest, 3)
		assert.Equal(t, uint(2), weakest[0].TopicID)
		assert.Equal(t, uint(4), weakest[1].TopicID)
		assert.Equal(t, uint(5), weakest[2].TopicID)
	})

	t.Run("strongest first", func(t *testing.T) {
		strongest := rankTopicProgress(rows, 2, false)

		require.Len(t, strongest, 2)
		assert.Equal(t, uint(1), strongest[0].TopicID)
		assert.Equal(t, uint(5), strongest[1].TopicID)
	})

	t.Run("unpracticed topics are excluded", func(t *testing.T) {
		all := rankTopicProgress(rows, 10, true)
		for _, r := range all {
			assert.NotEqual(t, uint(3), r.TopicID)
		}
	})
}

func TestFallbackAdvice(t *testing.T) {
	t.Run("no progress yet", func(t *testing.T) {
		advice := fallbackAdvice(nil)
		assert.Contains(t, advice, "practice session")
	})

	t.Run("names the weak topics", func(t *testing.T) {
		advice := fallbackAdvice([]entity.TopicProgressResponse{
			{TopicName: "Quant"},
			{TopicName: "Derivatives"},
		})
		assert.Contains(t, advice, "Quant, Derivatives")
	})
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 5, 1, 23, 30, 0, 0, time.UTC)
	b := time.Date(2026, 5, 1, 0, 15, 0, 0, time.UTC)
	c := time.Date(2026, 5, 2, 0, 15, 0, 0, time.UTC)

	assert.True(t, sameDay(a, b))
	assert.False(t, sameDay(a, c))
}
