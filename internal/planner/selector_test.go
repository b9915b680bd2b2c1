package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectFocusAreas_RanksByPriorityThenProficiency(t *testing.T) {
	areas := []WeakArea{
		{TopicID: 1, Proficiency: 90, Priority: 1},
		{TopicID: 2, Proficiency: 30, Priority: 3},
		{TopicID: 3, Proficiency: 10, Priority: 3},
		{TopicID: 4, Proficiency: 55, Priority: 2},
	}
	catalog := []Topic{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}, {ID: 4, Name: "D"}}

	focus, err := SelectFocusAreas(areas, catalog, Options{}, DefaultConfig())
	require.NoError(t, err)

	got := make([]uint, 0, len(focus))
	for _, f := range focus {
		got = append(got, f.TopicID)
	}
	// Priority desc, weaker proficiency first within a band.
	assert.Equal(t, []uint{3, 2, 4, 1}, got)
	assert.Equal(t, "C", focus[0].TopicName)
}

func TestSelectFocusAreas_TopicIDBreaksFullTies(t *testing.T) {
	areas := []WeakArea{
		{TopicID: 7, Proficiency: 20, Priority: 3},
		{TopicID: 2, Proficiency: 20, Priority: 3},
	}
	catalog := []Topic{{ID: 2, Name: "B"}, {ID: 7, Name: "G"}}

	focus, err := SelectFocusAreas(areas, catalog, Options{}, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, uint(2), focus[0].TopicID)
	assert.Equal(t, uint(7), focus[1].TopicID)
}

func TestSelectFocusAreas_ExcludeDropsTopics(t *testing.T) {
	areas := []WeakArea{
		{TopicID: 1, Proficiency: 10, Priority: 3},
		{TopicID: 2, Proficiency: 20, Priority: 3},
	}
	catalog := []Topic{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}

	focus, err := SelectFocusAreas(areas, catalog, Options{ExcludedTopics: []uint{1}}, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, focus, 1)
	assert.Equal(t, uint(2), focus[0].TopicID)
}

func TestSelectFocusAreas_IncludeRestrictsToIntersection(t *testing.T) {
	areas := []WeakArea{
		{TopicID: 1, Proficiency: 10, Priority: 3},
		{TopicID: 2, Proficiency: 20, Priority: 3},
		{TopicID: 3, Proficiency: 30, Priority: 3},
	}
	catalog := []Topic{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}}

	focus, err := SelectFocusAreas(areas, catalog, Options{IncludedTopics: []uint{2, 3}}, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, focus, 2)
	assert.Equal(t, uint(2), focus[0].TopicID)
	assert.Equal(t, uint(3), focus[1].TopicID)
}

func TestSelectFocusAreas_IncludeAndExcludeOverlapFails(t *testing.T) {
	areas := []WeakArea{{TopicID: 1, Proficiency: 10, Priority: 3}}
	catalog := []Topic{{ID: 1, Name: "A"}}
	opts := Options{IncludedTopics: []uint{1}, ExcludedTopics: []uint{1}}

	_, err := SelectFocusAreas(areas, catalog, opts, DefaultConfig())
	var invalid *InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestSelectFocusAreas_EmptyIntersectionFails(t *testing.T) {
	areas := []WeakArea{{TopicID: 1, Proficiency: 10, Priority: 3}}
	catalog := []Topic{{ID: 1, Name: "A"}}

	_, err := SelectFocusAreas(areas, catalog, Options{IncludedTopics: []uint{42}}, DefaultConfig())
	var empty *EmptySelectionError
	assert.ErrorAs(t, err, &empty)
}

func TestSelectFocusAreas_CapsAtMaxFocusAreas(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxFocusAreas = 2

	areas := []WeakArea{
		{TopicID: 1, Proficiency: 10, Priority: 3},
		{TopicID: 2, Proficiency: 20, Priority: 3},
		{TopicID: 3, Proficiency: 30, Priority: 3},
	}
	catalog := []Topic{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}}

	focus, err := SelectFocusAreas(areas, catalog, Options{}, cfg)
	require.NoError(t, err)
	require.Len(t, focus, 2)
	// The weakest two survive the cut.
	assert.Equal(t, uint(1), focus[0].TopicID)
	assert.Equal(t, uint(2), focus[1].TopicID)
}

func TestValidateFocusAreas(t *testing.T) {
	catalog := []Topic{{ID: 1, Name: "A"}}

	cases := []struct {
		name  string
		areas []WeakArea
		ok    bool
	}{
		{"valid", []WeakArea{{TopicID: 1, Proficiency: 50, Priority: 2}}, true},
		{"unknown topic", []WeakArea{{TopicID: 9, Proficiency: 50, Priority: 2}}, false},
		{"priority too high", []WeakArea{{TopicID: 1, Proficiency: 50, Priority: 4}}, false},
		{"priority too low", []WeakArea{{TopicID: 1, Proficiency: 50, Priority: 0}}, false},
		{"proficiency negative", []WeakArea{{TopicID: 1, Proficiency: -1, Priority: 2}}, false},
		{"proficiency over 100", []WeakArea{{TopicID: 1, Proficiency: 101, Priority: 2}}, false},
		{"duplicate topic", []WeakArea{{TopicID: 1, Priority: 2}, {TopicID: 1, Priority: 3}}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateFocusAreas(tc.areas, catalog)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				var invalid *InvalidInputError
				assert.ErrorAs(t, err, &invalid)
			}
		})
	}
}
