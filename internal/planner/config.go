package planner

const (
	// DefaultDailyMinutes is used when the request does not set a daily
	// study time.
	DefaultDailyMinutes = 60

	// DefaultBaseMinutesPerWeight is the study demand, in minutes, per
	// priority weight unit. A priority-3 topic requests three times this
	// amount over the whole plan.
	DefaultBaseMinutesPerWeight = 60

	// DefaultMaxFocusAreas bounds the selector output.
	DefaultMaxFocusAreas = 8

	// DefaultLowProficiencyMax and DefaultMediumProficiencyMax split the
	// 0-100 proficiency scale into the three priority bands:
	// below 40 is high priority, 40-70 medium, above 70 low.
	DefaultLowProficiencyMax    = 40
	DefaultMediumProficiencyMax = 70
)

// Config holds the tunable parameters of the generator. The thresholds
// and weights are sensible defaults, not fixed contracts; callers may
// override any of them.
type Config struct {
	// LowProficiencyMax: proficiency strictly below this maps to priority 3.
	LowProficiencyMax int
	// MediumProficiencyMax: proficiency up to and including this maps to
	// priority 2; above it maps to priority 1.
	MediumProficiencyMax int
	// PriorityWeights maps priority (1-3) to its share weight in the time
	// budget.
	PriorityWeights map[int]int
	// BaseMinutesPerWeight converts weight units into requested minutes.
	BaseMinutesPerWeight int
	// DailyMinutes is the fallback daily study time.
	DailyMinutes int
	// MaxFocusAreas caps how many topics a plan covers.
	MaxFocusAreas int
}

// DefaultConfig returns the generator defaults.
func DefaultConfig() Config {
	return Config{
		LowProficiencyMax:    DefaultLowProficiencyMax,
		MediumProficiencyMax: DefaultMediumProficiencyMax,
		PriorityWeights:      map[int]int{1: 1, 2: 2, 3: 3},
		BaseMinutesPerWeight: DefaultBaseMinutesPerWeight,
		DailyMinutes:         DefaultDailyMinutes,
		MaxFocusAreas:        DefaultMaxFocusAreas,
	}
}

func (c Config) validate() error {
	if c.LowProficiencyMax < 0 || c.MediumProficiencyMax > 100 || c.LowProficiencyMax > c.MediumProficiencyMax {
		return &InvalidInputError{Reason: "proficiency thresholds must satisfy 0 <= low <= medium <= 100"}
	}
	if c.BaseMinutesPerWeight <= 0 || c.DailyMinutes <= 0 || c.MaxFocusAreas <= 0 {
		return &InvalidInputError{Reason: "config minutes and focus area bounds must be positive"}
	}
	for p := 1; p <= 3; p++ {
		if c.PriorityWeights[p] <= 0 {
			return &InvalidInputError{Reason: "priority weights must be positive for priorities 1-3"}
		}
	}
	return nil
}

func (c Config) weightFor(priority int) int {
	return c.PriorityWeights[priority]
}

// priorityFor maps a proficiency score to a priority band.
func (c Config) priorityFor(proficiency int) int {
	switch {
	case proficiency < c.LowProficiencyMax:
		return 3
	case proficiency <= c.MediumProficiencyMax:
		return 2
	default:
		return 1
	}
}
