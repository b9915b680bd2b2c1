package planner

import (
	"fmt"
	"sort"
)

// EstimateWeakAreas derives a WeakArea for every topic in the catalog.
// Attempted topics get proficiency = round(100 * correct / attempted) and
// a priority from the configured thresholds. Unattempted topics get a
// default entry (proficiency 0, priority 3): never-practiced material is
// prioritized for coverage, not penalized as if answered wrong.
//
// The result is ordered by topic id. Pure function of its inputs.
func EstimateWeakAreas(progress []ProgressRecord, catalog []Topic, cfg Config) ([]WeakArea, error) {
	known := make(map[uint]bool, len(catalog))
	for _, t := range catalog {
		known[t.ID] = true
	}

	// Duplicate records for the same topic are merged before scoring.
	attempted := make(map[uint]int, len(progress))
	correct := make(map[uint]int, len(progress))
	for _, rec := range progress {
		if !known[rec.TopicID] {
			return nil, &InvalidInputError{Reason: fmt.Sprintf("progress record references unknown topic %d", rec.TopicID)}
		}
		if rec.Attempted < 0 || rec.Correct < 0 || rec.Correct > rec.Attempted {
			return nil, &InvalidInputError{Reason: fmt.Sprintf("progress record for topic %d has inconsistent counts", rec.TopicID)}
		}
		attempted[rec.TopicID] += rec.Attempted
		correct[rec.TopicID] += rec.Correct
	}

	areas := make([]WeakArea, 0, len(catalog))
	for _, t := range catalog {
		area := WeakArea{TopicID: t.ID, Proficiency: 0, Priority: 3}
		if n := attempted[t.ID]; n > 0 {
			area.Proficiency = (correct[t.ID]*100 + n/2) / n
			area.Priority = cfg.priorityFor(area.Proficiency)
		}
		areas = append(areas, area)
	}

	sort.Slice(areas, func(i, j int) bool { return areas[i].TopicID < areas[j].TopicID })
	return areas, nil
}
