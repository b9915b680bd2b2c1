package usecase

import (
	"testing"
	"time"

	internalEntity "github.com/pradiptha/cfaprep-be/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestScorePercent(t *testing.T) {
	tests := []struct {
		name     string
		correct  int
		total    int
		expected int
	}{
		{name: "perfect", correct: 10, total: 10, expected: 100},
		{name: "zero total", correct: 0, total: 0, expected: 0},
		{name: "none correct", correct: 0, total: 10, expected: 0},
		{name: "rounds half up", correct: 1, total: 8, expected: 13},
		{name: "rounds down", correct: 1, total: 3, expected: 33},
		{name: "two of three", correct: 2, total: 3, expected: 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scorePercent(tt.correct, tt.total))
		})
	}
}

func TestApplyProgress(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	p := &internalEntity.TopicProgress{Attempted: 10, Correct: 4, Accuracy: 40}

	applyProgress(p, 5, 4, now)

	assert.Equal(t, 15, p.Attempted)
	assert.Equal(t, 8, p.Correct)
	assert.Equal(t, 53, p.Accuracy)
	assert.Equal(t, now, *p.LastPracticedAt)
}

func TestAdvanceStreak(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("first practice starts at one", func(t *testing.T) {
		s := &internalEntity.StudyStreak{}
		advanceStreak(s, day(10).Add(9*time.Hour))

		assert.Equal(t, 1, s.CurrentDays)
		assert.Equal(t, 1, s.BestDays)
		assert.Equal(t, day(10), *s.LastPractice)
	})

	t.Run("same day keeps the streak", func(t *testing.T) {
		last := day(10)
		s := &internalEntity.StudyStreak{CurrentDays: 3, BestDays: 5, LastPractice: &last}
		advanceStreak(s, day(10).Add(20*time.Hour))

		assert.Equal(t, 3, s.CurrentDays)
		assert.Equal(t, 5, s.BestDays)
	})

	t.Run("next day extends the streak", func(t *testing.T) {
		last := day(10)
		s := &internalEntity.StudyStreak{CurrentDays: 5, BestDays: 5, LastPractice: &last}
		advanceStreak(s, day(11).Add(8*time.Hour))

		assert.Equal(t, 6, s.CurrentDays)
		assert.Equal(t, 6, s.BestDays)
	})

	t.Run("gap resets to one", func(t *testing.T) {
		last := day(10)
		s := &internalEntity.StudyStreak{CurrentDays: 7, BestDays: 7, LastPractice: &last}
		advanceStreak(s, day(13))

		assert.Equal(t, 1, s.CurrentDays)
		assert.Equal(t, 7, s.BestDays)
	})
}
