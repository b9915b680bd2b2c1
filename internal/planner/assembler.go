package planner

import "time"

// AssembleSessions spreads the per-topic budgets across the planning
// days. Each day is filled round-robin over the topics in rank order so
// no day turns into a single-topic marathon, and the daily ceiling is a
// hard limit. At most one session per topic per day is emitted; sessions
// come out ordered by day, then by rank. The algorithm is deterministic.
func AssembleSessions(allocations []Allocation, days []time.Time, dailyMinutes int) []Session {
	remaining := make([]int, len(allocations))
	for i, a := range allocations {
		remaining[i] = a.Minutes
	}

	var sessions []Session
	for _, day := range days {
		active := 0
		for _, r := range remaining {
			if r > 0 {
				active++
			}
		}
		if active == 0 {
			break
		}

		budget := dailyMinutes
		share := budget / active
		if share == 0 {
			share = 1
		}

		today := make([]int, len(allocations))

		// First pass: an even share per active topic.
		for i := range allocations {
			if remaining[i] == 0 || budget == 0 {
				continue
			}
			give := min(share, remaining[i], budget)
			today[i] = give
			remaining[i] -= give
			budget -= give
		}
		// Second pass: hand leftover capacity to the strongest-ranked
		// topics that still have budget.
		for i := range allocations {
			if remaining[i] == 0 || budget == 0 {
				continue
			}
			give := min(remaining[i], budget)
			today[i] += give
			remaining[i] -= give
			budget -= give
		}

		for i, minutes := range today {
			if minutes == 0 {
				continue
			}
			sessions = append(sessions, Session{
				Day:             day,
				TopicID:         allocations[i].TopicID,
				DurationMinutes: minutes,
			})
		}
	}
	return sessions
}
