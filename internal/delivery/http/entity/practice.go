package entity

type StartSessionRequest struct {
	TopicID       uint   `json:"topic_id" validate:"required"`
	ChapterID     uint   `json:"chapter_id"`
	Difficulty    string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	QuestionCount int    `json:"question_count" validate:"omitempty,gte=1,lte=50"`
}

type StartSessionResponse struct {
	SessionID string             `json:"session_id"`
	TopicID   uint               `json:"topic_id"`
	Questions []QuestionResponse `json:"questions"` // answers withheld
}

type SubmitAnswerRequest struct {
	SessionID  string `json:"session_id" validate:"required"`
	QuestionID uint   `json:"question_id" validate:"required"`
	Choice     *int   `json:"choice" validate:"required,gte=0"`
}

type SubmitAnswerResponse struct {
	QuestionID    uint   `json:"question_id"`
	IsCorrect     bool   `json:"is_correct"`
	CorrectChoice int    `json:"correct_choice"`
	Explanation   string `json:"explanation,omitempty"`
}

type CompleteSessionResponse struct {
	SessionID     string `json:"session_id"`
	QuestionCount int    `json:"question_count"`
	Answered      int    `json:"answered"`
	CorrectCount  int    `json:"correct_count"`
	Score         int    `json:"score"` // 0-100
	StreakDays    int    `json:"streak_days"`
}

type AnswerLogEntry struct {
	QuestionID    uint   `json:"question_id"`
	Prompt        string `json:"prompt"`
	Choice        int    `json:"choice"`
	CorrectChoice int    `json:"correct_choice"`
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation,omitempty"`
	AnsweredAt    string `json:"answered_at"`
}

type SessionReviewResponse struct {
	SessionID    string           `json:"session_id"`
	TopicID      uint             `json:"topic_id"`
	Status       string           `json:"status"`
	Score        int              `json:"score"`
	CorrectCount int              `json:"correct_count"`
	Answers      []AnswerLogEntry `json:"answers"`
}
