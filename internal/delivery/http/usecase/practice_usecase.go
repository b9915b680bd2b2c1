package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/entity"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/repository"
	internalEntity "github.com/pradiptha/cfaprep-be/internal/entity"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

const defaultQuestionCount = 10

type PracticeUsecase interface {
	StartSession(ctx context.Context, userID uint, req entity.StartSessionRequest) (*entity.StartSessionResponse, error)
	SubmitAnswer(ctx context.Context, userID uint, req entity.SubmitAnswerRequest) (*entity.SubmitAnswerResponse, error)
	CompleteSession(ctx context.Context, userID uint, sessionID string) (*entity.CompleteSessionResponse, error)
	GetSessionReview(ctx context.Context, userID uint, sessionID string) (*entity.SessionReviewResponse, error)
}

type PracticeConfig struct {
	DB         *gorm.DB
	Repository repository.PracticeRepository
	Content    repository.ContentRepository
	Users      repository.UserRepository
	Config     *viper.Viper
}

type practiceUsecase struct {
	cfg PracticeConfig
}

func NewPracticeUsecase(cfg PracticeConfig) PracticeUsecase {
	return &practiceUsecase{cfg: cfg}
}

func (u *practiceUsecase) StartSession(ctx context.Context, userID uint, req entity.StartSessionRequest) (*entity.StartSessionResponse, error) {
	if _, err := u.cfg.Content.FindTopicByID(nil, req.TopicID); err != nil {
		return nil, notFoundOr(err, "topic not found")
	}
	if req.ChapterID > 0 {
		chapter, err := u.cfg.Content.FindChapterByID(nil, req.ChapterID)
		if err != nil {
			return nil, notFoundOr(err, "chapter not found")
		}
		if chapter.TopicID != req.TopicID {
			return nil, fiber.NewError(fiber.StatusBadRequest, "chapter does not belong to the given topic")
		}
	}

	count := req.QuestionCount
	if count <= 0 {
		count = defaultQuestionCount
	}

	questions, err := u.cfg.Content.FindRandomQuestions(nil, req.TopicID, req.ChapterID, req.Difficulty, count)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "no questions available for the requested filters")
	}

	session := &internalEntity.PracticeSession{
		SessionID:     uuid.NewString(),
		UserID:        userID,
		TopicID:       req.TopicID,
		ChapterID:     req.ChapterID,
		Difficulty:    req.Difficulty,
		Status:        "active",
		QuestionCount: len(questions),
	}
	if err := u.cfg.Repository.CreateSession(nil, session); err != nil {
		return nil, err
	}

	resp := &entity.StartSessionResponse{
		SessionID: session.SessionID,
		TopicID:   session.TopicID,
		Questions: make([]entity.QuestionResponse, 0, len(questions)),
	}
	for i := range questions {
		q, err := toQuestionResponse(&questions[i], false)
		if err != nil {
			return nil, err
		}
		resp.Questions = append(resp.Questions, q)
	}
	return resp, nil
}

func (u *practiceUsecase) SubmitAnswer(ctx context.Context, userID uint, req entity.SubmitAnswerRequest) (*entity.SubmitAnswerResponse, error) {
	session, err := u.cfg.Repository.FindSessionBySessionID(nil, req.SessionID)
	if err != nil {
		return nil, notFoundOr(err, "session not found")
	}
	if session.UserID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "session belongs to another user")
	}
	if session.Status != "active" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "session is already completed")
	}

	if err := u.checkDailyQuota(ctx, userID); err != nil {
		return nil, err
	}

	question, err := u.cfg.Content.FindQuestionByID(nil, req.QuestionID)
	if err != nil {
		return nil, notFoundOr(err, "question not found")
	}

	if _, err := u.cfg.Repository.FindExistingAnswer(nil, req.SessionID, req.QuestionID); err == nil {
		return nil, fiber.NewError(fiber.StatusConflict, "question already answered in this session")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	isCorrect := *req.Choice == question.CorrectChoice
	answer := &internalEntity.PracticeAnswer{
		SessionID:  req.SessionID,
		UserID:     userID,
		QuestionID: req.QuestionID,
		Choice:     *req.Choice,
		IsCorrect:  isCorrect,
	}
	if err := u.cfg.Repository.CreateAnswer(nil, answer); err != nil {
		return nil, err
	}

	return &entity.SubmitAnswerResponse{
		QuestionID:    req.QuestionID,
		IsCorrect:     isCorrect,
		CorrectChoice: question.CorrectChoice,
		Explanation:   question.Explanation,
	}, nil
}

func (u *practiceUsecase) CompleteSession(ctx context.Context, userID uint, sessionID string) (*entity.CompleteSessionResponse, error) {
	session, err := u.cfg.Repository.FindSessionBySessionID(nil, sessionID)
	if err != nil {
		return nil, notFoundOr(err, "session not found")
	}
	if session.UserID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "session belongs to another user")
	}
	if session.Status != "active" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "session is already completed")
	}

	answers, err := u.cfg.Repository.FindAnswersBySessionID(nil, sessionID)
	if err != nil {
		return nil, err
	}

	correct := 0
	for _, a := range answers {
		if a.IsCorrect {
			correct++
		}
	}

	now := time.Now().UTC()
	score := scorePercent(correct, session.QuestionCount)

	var streakDays int
	err = u.cfg.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session.Status = "completed"
		session.CorrectCount = correct
		session.Score = score
		session.CompletedAt = &now
		if err := u.cfg.Repository.UpdateSession(tx, session); err != nil {
			return err
		}

		progress, err := u.cfg.Repository.FindProgressByUserAndTopic(tx, userID, session.TopicID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			progress = &internalEntity.TopicProgress{UserID: userID, TopicID: session.TopicID}
		} else if err != nil {
			return err
		}
		applyProgress(progress, len(answers), correct, now)
		if err := u.cfg.Repository.UpsertProgress(tx, progress); err != nil {
			return err
		}

		streak, err := u.cfg.Repository.FindStreakByUserID(tx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			streak = &internalEntity.StudyStreak{UserID: userID}
		} else if err != nil {
			return err
		}
		advanceStreak(streak, now)
		streakDays = streak.CurrentDays
		return u.cfg.Repository.UpsertStreak(tx, streak)
	})
	if err != nil {
		return nil, err
	}

	return &entity.CompleteSessionResponse{
		SessionID:     sessionID,
		QuestionCount: session.QuestionCount,
		Answered:      len(answers),
		CorrectCount:  correct,
		Score:         score,
		StreakDays:    streakDays,
	}, nil
}

func (u *practiceUsecase) GetSessionReview(ctx context.Context, userID uint, sessionID string) (*entity.SessionReviewResponse, error) {
	session, err := u.cfg.Repository.FindSessionBySessionID(nil, sessionID)
	if err != nil {
		return nil, notFoundOr(err, "session not found")
	}
	if session.UserID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "session belongs to another user")
	}

	answers, err := u.cfg.Repository.FindAnswersBySessionID(nil, sessionID)
	if err != nil {
		return nil, err
	}

	entries := make([]entity.AnswerLogEntry, 0, len(answers))
	for _, a := range answers {
		question, err := u.cfg.Content.FindQuestionByID(nil, a.QuestionID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entity.AnswerLogEntry{
			QuestionID:    a.QuestionID,
			Prompt:        question.Prompt,
			Choice:        a.Choice,
			CorrectChoice: question.CorrectChoice,
			IsCorrect:     a.IsCorrect,
			Explanation:   question.Explanation,
			AnsweredAt:    a.AnsweredAt.Format(time.RFC3339),
		})
	}

	return &entity.SessionReviewResponse{
		SessionID:    session.SessionID,
		TopicID:      session.TopicID,
		Status:       session.Status,
		Score:        session.Score,
		CorrectCount: session.CorrectCount,
		Answers:      entries,
	}, nil
}

// checkDailyQuota enforces the free-tier answer limit. Premium
// subscribers are unlimited.
func (u *practiceUsecase) checkDailyQuota(ctx context.Context, userID uint) error {
	now := time.Now().UTC()
	sub, err := u.cfg.Users.FindSubscriptionByUserID(nil, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if sub.IsActive(now) {
		return nil
	}

	limit := u.cfg.Config.GetInt("subscription.free_daily_questions")
	if limit <= 0 {
		limit = 10
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	answered, err := u.cfg.Repository.CountAnswersByUserSince(nil, userID, startOfDay)
	if err != nil {
		return err
	}
	if answered >= int64(limit) {
		return fiber.NewError(fiber.StatusPaymentRequired, "daily question limit reached, upgrade to premium for unlimited practice")
	}
	return nil
}

// scorePercent rounds correct/total to a 0-100 score; zero total scores
// zero.
func scorePercent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return (correct*100 + total/2) / total
}

// applyProgress folds a finished session into the per-topic aggregates.
func applyProgress(p *internalEntity.TopicProgress, answered, correct int, now time.Time) {
	p.Attempted += answered
	p.Correct += correct
	p.Accuracy = scorePercent(p.Correct, p.Attempted)
	p.LastPracticedAt = &now
}

// advanceStreak updates consecutive-day counters for a practice on
// `now`. Same-day repeats keep the streak, a one-day gap extends it, and
// anything longer resets to one.
func advanceStreak(s *internalEntity.StudyStreak, now time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch {
	case s.LastPractice == nil:
		s.CurrentDays = 1
	case s.LastPractice.Equal(today):
		// already counted today
	case s.LastPractice.Equal(today.AddDate(0, 0, -1)):
		s.CurrentDays++
	default:
		s.CurrentDays = 1
	}
	if s.CurrentDays > s.BestDays {
		s.BestDays = s.CurrentDays
	}
	s.LastPractice = &today
}
