package entity

// FocusAreaInput mirrors the planner's weak-area shape for explicit
// overrides in a generation request.
type FocusAreaInput struct {
	TopicID     uint `json:"topic_id" validate:"required"`
	Proficiency int  `json:"proficiency" validate:"gte=0,lte=100"`
	Priority    int  `json:"priority" validate:"required,gte=1,lte=3"`
}

type GeneratePlanRequest struct {
	Name                 string           `json:"name" validate:"required,min=2,max=150"`
	StartDate            string           `json:"start_date" validate:"required"` // YYYY-MM-DD
	EndDate              string           `json:"end_date" validate:"required"`   // YYYY-MM-DD
	DailyStudyTime       int              `json:"daily_study_time" validate:"omitempty,gte=1,lte=1440"`
	TargetExamDate       string           `json:"target_exam_date"`
	IncludedTopics       []uint           `json:"included_topics"`
	ExcludedTopics       []uint           `json:"excluded_topics"`
	FocusAreas           []FocusAreaInput `json:"focus_areas"`
	GenerateFromProgress bool             `json:"generate_from_progress"`
}

type FocusAreaResponse struct {
	TopicID     uint   `json:"topic_id"`
	TopicName   string `json:"topic_name"`
	Proficiency int    `json:"proficiency"`
	Priority    int    `json:"priority"`
}

type StudySessionResponse struct {
	Day             string `json:"day"` // YYYY-MM-DD
	TopicID         uint   `json:"topic_id"`
	DurationMinutes int    `json:"duration_minutes"`
}

type TruncationResponse struct {
	RequestedMinutes int `json:"requested_minutes"`
	AvailableMinutes int `json:"available_minutes"`
}

type StudyPlanResponse struct {
	ID           uint                   `json:"id"`
	Name         string                 `json:"name"`
	StartDate    string                 `json:"start_date"`
	EndDate      string                 `json:"end_date"`
	DailyMinutes int                    `json:"daily_minutes"`
	FocusAreas   []FocusAreaResponse    `json:"focus_areas"`
	Sessions     []StudySessionResponse `json:"sessions,omitempty"`
	TotalMinutes int                    `json:"total_minutes"`
	Truncation   *TruncationResponse    `json:"truncation,omitempty"`
	CreatedAt    string                 `json:"created_at"`
}
