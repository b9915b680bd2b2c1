package entity

type CreateTopicRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=150"`
	Description string `json:"description" validate:"max=2000"`
	ExamWeight  int    `json:"exam_weight" validate:"gte=0,lte=100"`
}

type UpdateTopicRequest struct {
	Name        string `json:"name" validate:"omitempty,min=2,max=150"`
	Description string `json:"description" validate:"max=2000"`
	ExamWeight  *int   `json:"exam_weight" validate:"omitempty,gte=0,lte=100"`
}

type TopicResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	ExamWeight   int    `json:"exam_weight"`
	ChapterCount int64  `json:"chapter_count"`
}

type CreateChapterRequest struct {
	TopicID uint   `json:"topic_id" validate:"required"`
	Title   string `json:"title" validate:"required,min=2,max=200"`
	Ordinal int    `json:"ordinal" validate:"gte=0"`
}

type UpdateChapterRequest struct {
	Title   string `json:"title" validate:"omitempty,min=2,max=200"`
	Ordinal *int   `json:"ordinal" validate:"omitempty,gte=0"`
}

type ChapterResponse struct {
	ID      uint   `json:"id"`
	TopicID uint   `json:"topic_id"`
	Title   string `json:"title"`
	Ordinal int    `json:"ordinal"`
}

type CreateQuestionRequest struct {
	TopicID       uint     `json:"topic_id" validate:"required"`
	ChapterID     uint     `json:"chapter_id" validate:"required"`
	Prompt        string   `json:"prompt" validate:"required,min=10"`
	Options       []string `json:"options" validate:"required,min=2,max=6,dive,required"`
	CorrectChoice int      `json:"correct_choice" validate:"gte=0"`
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty" validate:"required,oneof=easy medium hard"`
}

type UpdateQuestionRequest struct {
	Prompt        string   `json:"prompt" validate:"omitempty,min=10"`
	Options       []string `json:"options" validate:"omitempty,min=2,max=6,dive,required"`
	CorrectChoice *int     `json:"correct_choice" validate:"omitempty,gte=0"`
	Explanation   *string  `json:"explanation"`
	Difficulty    string   `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

type QuestionResponse struct {
	ID            uint     `json:"id"`
	TopicID       uint     `json:"topic_id"`
	ChapterID     uint     `json:"chapter_id"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectChoice *int     `json:"correct_choice,omitempty"` // admin listings only
	Explanation   string   `json:"explanation,omitempty"`
	Difficulty    string   `json:"difficulty"`
}
