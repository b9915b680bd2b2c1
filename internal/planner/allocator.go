package planner

import "time"

// Allocation is a topic's total minute budget over the whole plan.
type Allocation struct {
	TopicID uint
	Minutes int
}

// Budget is the allocator output: the planning horizon, the resolved
// daily ceiling, and per-topic minute budgets in focus rank order.
type Budget struct {
	Days         []time.Time
	DailyMinutes int
	Allocations  []Allocation
	Truncation   *TruncationWarning
}

// AllocateBudget distributes the available study minutes across the
// ranked focus areas. Each area requests weight(priority) *
// BaseMinutesPerWeight minutes; when the combined demand exceeds the
// horizon (days * daily minutes), every allocation is scaled down
// proportionally - no topic is ever dropped - and the Budget carries a
// TruncationWarning. A target exam date earlier than the end date clamps
// the horizon.
func AllocateBudget(focus []FocusArea, opts Options, cfg Config) (*Budget, error) {
	if len(focus) == 0 {
		return nil, &EmptySelectionError{Reason: "no focus areas to allocate time for"}
	}

	daily := opts.DailyStudyTime
	if daily == 0 {
		daily = cfg.DailyMinutes
	}
	if daily < 0 {
		return nil, &InvalidRangeError{Reason: "daily study time must be positive"}
	}

	start := dateOnly(opts.StartDate)
	end := dateOnly(opts.EndDate)
	if end.Before(start) {
		return nil, &InvalidRangeError{Reason: "end date is before start date"}
	}
	if opts.TargetExamDate != nil {
		if exam := dateOnly(*opts.TargetExamDate); exam.Before(end) {
			end = exam
		}
	}
	if end.Before(start) {
		return nil, &InvalidRangeError{Reason: "target exam date leaves no available study days"}
	}

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	available := len(days) * daily
	if available < len(focus) {
		return nil, &InvalidRangeError{Reason: "planning horizon too small to cover every focus area"}
	}

	demands := make([]int, len(focus))
	total := 0
	for i, f := range focus {
		demands[i] = cfg.weightFor(f.Priority) * cfg.BaseMinutesPerWeight
		total += demands[i]
	}

	var warning *TruncationWarning
	if total > available {
		warning = &TruncationWarning{RequestedMinutes: total, AvailableMinutes: available}
		demands = scaleDown(demands, total, available)
	}

	allocations := make([]Allocation, len(focus))
	for i, f := range focus {
		allocations[i] = Allocation{TopicID: f.TopicID, Minutes: demands[i]}
	}

	return &Budget{
		Days:         days,
		DailyMinutes: daily,
		Allocations:  allocations,
		Truncation:   warning,
	}, nil
}

// scaleDown shrinks demands proportionally so they sum to exactly
// available, keeping at least one minute per topic. Rounding leftovers
// go to the highest-ranked topics; overshoot from the one-minute floor
// is clawed back from the lowest-ranked ones.
func scaleDown(demands []int, total, available int) []int {
	scaled := make([]int, len(demands))
	sum := 0
	for i, d := range demands {
		m := d * available / total
		if m < 1 {
			m = 1
		}
		scaled[i] = m
		sum += m
	}

	for i := 0; sum < available; i = (i + 1) % len(scaled) {
		scaled[i]++
		sum++
	}
	for sum > available {
		for i := len(scaled) - 1; i >= 0 && sum > available; i-- {
			if scaled[i] > 1 {
				scaled[i]--
				sum--
			}
		}
	}
	return scaled
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
