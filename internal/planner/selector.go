package planner

import (
	"fmt"
	"sort"
)

// SelectFocusAreas filters, ranks and bounds the weak-area list.
//
// Filtering: topics in ExcludedTopics are dropped; a non-empty
// IncludedTopics restricts the candidates to exactly that set. A topic
// present in both lists is an InvalidInputError; an empty result after
// filtering is an EmptySelectionError.
//
// Ranking: priority descending, then proficiency ascending (weaker
// first), then topic id for a stable order. The result is capped at
// cfg.MaxFocusAreas and enriched with topic names.
func SelectFocusAreas(areas []WeakArea, catalog []Topic, opts Options, cfg Config) ([]FocusArea, error) {
	excluded := make(map[uint]bool, len(opts.ExcludedTopics))
	for _, id := range opts.ExcludedTopics {
		excluded[id] = true
	}
	for _, id := range opts.IncludedTopics {
		if excluded[id] {
			return nil, &InvalidInputError{Reason: fmt.Sprintf("topic %d is both included and excluded", id)}
		}
	}

	included := make(map[uint]bool, len(opts.IncludedTopics))
	for _, id := range opts.IncludedTopics {
		included[id] = true
	}

	names := make(map[uint]string, len(catalog))
	for _, t := range catalog {
		names[t.ID] = t.Name
	}

	kept := make([]WeakArea, 0, len(areas))
	for _, a := range areas {
		if excluded[a.TopicID] {
			continue
		}
		if len(included) > 0 && !included[a.TopicID] {
			continue
		}
		kept = append(kept, a)
	}
	if len(kept) == 0 {
		return nil, &EmptySelectionError{Reason: "no topics left after applying include/exclude filters"}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Priority != kept[j].Priority {
			return kept[i].Priority > kept[j].Priority
		}
		if kept[i].Proficiency != kept[j].Proficiency {
			return kept[i].Proficiency < kept[j].Proficiency
		}
		return kept[i].TopicID < kept[j].TopicID
	})

	if len(kept) > cfg.MaxFocusAreas {
		kept = kept[:cfg.MaxFocusAreas]
	}

	focus := make([]FocusArea, 0, len(kept))
	for _, a := range kept {
		focus = append(focus, FocusArea{WeakArea: a, TopicName: names[a.TopicID]})
	}
	return focus, nil
}

// validateFocusAreas checks an explicit focus-area override: every topic
// must exist in the catalog and appear once, priority must be 1-3 and
// proficiency 0-100.
func validateFocusAreas(areas []WeakArea, catalog []Topic) error {
	known := make(map[uint]bool, len(catalog))
	for _, t := range catalog {
		known[t.ID] = true
	}

	seen := make(map[uint]bool, len(areas))
	for _, a := range areas {
		if !known[a.TopicID] {
			return &InvalidInputError{Reason: fmt.Sprintf("focus area references unknown topic %d", a.TopicID)}
		}
		if seen[a.TopicID] {
			return &InvalidInputError{Reason: fmt.Sprintf("focus area for topic %d appears more than once", a.TopicID)}
		}
		seen[a.TopicID] = true
		if a.Priority < 1 || a.Priority > 3 {
			return &InvalidInputError{Reason: fmt.Sprintf("focus area for topic %d has priority %d, want 1-3", a.TopicID, a.Priority)}
		}
		if a.Proficiency < 0 || a.Proficiency > 100 {
			return &InvalidInputError{Reason: fmt.Sprintf("focus area for topic %d has proficiency %d, want 0-100", a.TopicID, a.Proficiency)}
		}
	}
	return nil
}
