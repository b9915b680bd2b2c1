package entity

type TopicProgressResponse struct {
	TopicID         uint   `json:"topic_id"`
	TopicName       string `json:"topic_name"`
	Attempted       int    `json:"attempted"`
	Correct         int    `json:"correct"`
	Accuracy        int    `json:"accuracy"` // 0-100
	LastPracticedAt string `json:"last_practiced_at,omitempty"`
}

type ProgressOverviewResponse struct {
	TotalAttempted    int                     `json:"total_attempted"`
	TotalCorrect      int                     `json:"total_correct"`
	OverallAccuracy   int                     `json:"overall_accuracy"`
	SessionsCompleted int64                   `json:"sessions_completed"`
	StreakDays        int                     `json:"streak_days"`
	BestStreakDays    int                     `json:"best_streak_days"`
	WeakestTopics     []TopicProgressResponse `json:"weakest_topics"`
	StrongestTopics   []TopicProgressResponse `json:"strongest_topics"`
}

type RecommendationResponse struct {
	Content     string `json:"content"`
	GeneratedBy string `json:"generated_by"` // ai, fallback
	UpdatedAt   string `json:"updated_at"`
}
