// Package planner generates weak-area-driven study plans. It is a pure,
// in-process library: callers fetch the user's progress records and the
// topic catalog, and GeneratePlan turns them into a date-bounded sequence
// of study sessions. The planner keeps no state between invocations.
package planner

import (
	"time"
)

// Topic is a study area from the content catalog.
type Topic struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ProgressRecord is a user's answer history for one topic.
type ProgressRecord struct {
	TopicID   uint `json:"topic_id"`
	Attempted int  `json:"attempted"`
	Correct   int  `json:"correct"`
}

// WeakArea is a topic flagged for study attention.
// Proficiency is 0-100, Priority is 1-3 (low, medium, high).
type WeakArea struct {
	TopicID     uint `json:"topic_id"`
	Proficiency int  `json:"proficiency"`
	Priority    int  `json:"priority"`
}

// FocusArea is a WeakArea enriched with the topic name for presentation.
type FocusArea struct {
	WeakArea
	TopicName string `json:"topic_name"`
}

// Options is the plan generation request.
type Options struct {
	Name                     string
	StartDate                time.Time
	EndDate                  time.Time
	DailyStudyTime           int // minutes per day, 0 means use the default
	TargetExamDate           *time.Time
	IncludedTopics           []uint
	ExcludedTopics           []uint
	FocusAreas               []WeakArea // explicit override, bypasses estimation
	GenerateFromUserProgress bool
}

// Session is a single scheduled block of time for one topic.
type Session struct {
	Day             time.Time `json:"day"`
	TopicID         uint      `json:"topic_id"`
	DurationMinutes int       `json:"duration_minutes"`
}

// Plan is the complete generator output. Sessions are ordered by day,
// then by focus-area rank, and are never mutated after assembly;
// re-planning regenerates the whole plan.
type Plan struct {
	Name       string      `json:"name"`
	StartDate  time.Time   `json:"start_date"`
	EndDate    time.Time   `json:"end_date"`
	FocusAreas []FocusArea `json:"focus_areas"`
	Sessions   []Session   `json:"sessions"`

	// Truncation is set when the requested study volume exceeded the
	// available time and every allocation was scaled down. The plan is
	// still valid.
	Truncation *TruncationWarning `json:"truncation,omitempty"`
}

// TotalMinutes sums the duration of every session in the plan.
func (p *Plan) TotalMinutes() int {
	total := 0
	for _, s := range p.Sessions {
		total += s.DurationMinutes
	}
	return total
}

// GeneratePlan is the single entry point: it estimates (or accepts) weak
// areas, selects and ranks focus areas, allocates the time budget and
// assembles the session schedule, using the default configuration.
// Output is deterministic: identical inputs yield identical plans.
func GeneratePlan(opts Options, progress []ProgressRecord, catalog []Topic) (*Plan, error) {
	return GeneratePlanWithConfig(opts, progress, catalog, DefaultConfig())
}

// GeneratePlanWithConfig is GeneratePlan with tunable thresholds and weights.
func GeneratePlanWithConfig(opts Options, progress []ProgressRecord, catalog []Topic, cfg Config) (*Plan, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(catalog) == 0 {
		return nil, &InvalidInputError{Reason: "topic catalog is empty"}
	}
	if opts.StartDate.IsZero() || opts.EndDate.IsZero() {
		return nil, &InvalidInputError{Reason: "start date and end date are required"}
	}

	var (
		areas []WeakArea
		err   error
	)
	switch {
	case len(opts.FocusAreas) > 0:
		// Explicit focus areas always override automatic derivation.
		if err = validateFocusAreas(opts.FocusAreas, catalog); err != nil {
			return nil, err
		}
		areas = opts.FocusAreas
	case opts.GenerateFromUserProgress:
		areas, err = EstimateWeakAreas(progress, catalog, cfg)
		if err != nil {
			return nil, err
		}
	default:
		return nil, &InvalidInputError{Reason: "focus areas are required when not generating from user progress"}
	}

	focus, err := SelectFocusAreas(areas, catalog, opts, cfg)
	if err != nil {
		return nil, err
	}

	budget, err := AllocateBudget(focus, opts, cfg)
	if err != nil {
		return nil, err
	}

	sessions := AssembleSessions(budget.Allocations, budget.Days, budget.DailyMinutes)

	return &Plan{
		Name:       opts.Name,
		StartDate:  budget.Days[0],
		EndDate:    budget.Days[len(budget.Days)-1],
		FocusAreas: focus,
		Sessions:   sessions,
		Truncation: budget.Truncation,
	}, nil
}
