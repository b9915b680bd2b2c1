package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pradiptha/cfaprep-be/internal/delivery/http/entity"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/repository"
	internalEntity "github.com/pradiptha/cfaprep-be/internal/entity"
	"github.com/pradiptha/cfaprep-be/internal/pkg/llm"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type ProgressUsecase interface {
	ListTopicProgress(ctx context.Context, userID uint) ([]entity.TopicProgressResponse, error)
	GetOverview(ctx context.Context, userID uint) (*entity.ProgressOverviewResponse, error)
	GetRecommendations(ctx context.Context, userID uint) (*entity.RecommendationResponse, error)
}

type ProgressConfig struct {
	DB         *gorm.DB
	Repository repository.PracticeRepository
	Content    repository.ContentRepository
	LLM        *llm.Client
	Config     *viper.Viper
}

type progressUsecase struct {
	cfg ProgressConfig
}

func NewProgressUsecase(cfg ProgressConfig) ProgressUsecase {
	return &progressUsecase{cfg: cfg}
}

func (u *progressUsecase) ListTopicProgress(ctx context.Context, userID uint) ([]entity.TopicProgressResponse, error) {
	progress, err := u.cfg.Repository.FindProgressByUserID(nil, userID)
	if err != nil {
		return nil, err
	}
	topics, err := u.cfg.Content.FindAllTopics(nil)
	if err != nil {
		return nil, err
	}
	return joinProgressWithTopics(progress, topics), nil
}

func (u *progressUsecase) GetOverview(ctx context.Context, userID uint) (*entity.ProgressOverviewResponse, error) {
	rows, err := u.ListTopicProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	overview := &entity.ProgressOverviewResponse{}
	for _, p := range rows {
		overview.TotalAttempted += p.Attempted
		overview.TotalCorrect += p.Correct
	}
	overview.OverallAccuracy = scorePercent(overview.TotalCorrect, overview.TotalAttempted)

	overview.SessionsCompleted, err = u.cfg.Repository.CountCompletedSessionsByUser(nil, userID)
	if err != nil {
		return nil, err
	}

	streak, err := u.cfg.Repository.FindStreakByUserID(nil, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if streak != nil {
		overview.StreakDays = streak.CurrentDays
		overview.BestStreakDays = streak.BestDays
	}

	overview.WeakestTopics = rankTopicProgress(rows, 3, true)
	overview.StrongestTopics = rankTopicProgress(rows, 3, false)
	return overview, nil
}

func (u *progressUsecase) GetRecommendations(ctx context.Context, userID uint) (*entity.RecommendationResponse, error) {
	// Serve today's cached advice when we have it.
	cached, err := u.cfg.Repository.FindRecommendationByUserID(nil, userID)
	if err == nil && sameDay(cached.UpdatedAt, time.Now().UTC()) {
		return &entity.RecommendationResponse{
			Content:     cached.Content,
			GeneratedBy: cached.GeneratedBy,
			UpdatedAt:   cached.UpdatedAt.Format(time.RFC3339),
		}, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rows, err := u.ListTopicProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	weakest := rankTopicProgress(rows, 3, true)

	content, generatedBy := u.generateAdvice(ctx, weakest)

	rec := &internalEntity.StudyRecommendation{
		UserID:      userID,
		Content:     content,
		GeneratedBy: generatedBy,
	}
	if err := u.cfg.Repository.UpsertRecommendation(nil, rec); err != nil {
		return nil, err
	}

	return &entity.RecommendationResponse{
		Content:     content,
		GeneratedBy: generatedBy,
		UpdatedAt:   rec.UpdatedAt.Format(time.RFC3339),
	}, nil
}

// generateAdvice asks the model for tailored advice and falls back to a
// deterministic message when the call fails or no client is configured.
func (u *progressUsecase) generateAdvice(ctx context.Context, weakest []entity.TopicProgressResponse) (string, string) {
	if u.cfg.LLM != nil && u.cfg.Config.GetString("llm.api_key") != "" {
		text, err := u.cfg.LLM.GenerateText(ctx, buildAdvicePrompt(weakest))
		if err == nil {
			return text, "ai"
		}
	}
	return fallbackAdvice(weakest), "fallback"
}

func buildAdvicePrompt(weakest []entity.TopicProgressResponse) string {
	var b strings.Builder
	b.WriteString("You are a CFA Level I tutor. Based on the student's weakest topics below, ")
	b.WriteString("write 3 short, concrete study recommendations in plain text.\n\n")
	for _, t := range weakest {
		fmt.Fprintf(&b, "- %s: %d%% accuracy over %d questions\n", t.TopicName, t.Accuracy, t.Attempted)
	}
	return b.String()
}

func fallbackAdvice(weakest []entity.TopicProgressResponse) string {
	if len(weakest) == 0 {
		return "Start with a practice session to build your progress profile, then come back for tailored recommendations."
	}
	names := make([]string, 0, len(weakest))
	for _, t := range weakest {
		names = append(names, t.TopicName)
	}
	return fmt.Sprintf("Focus your next sessions on %s. Short daily sessions beat cramming: aim for one topic per day and review every wrong answer's explanation.", strings.Join(names, ", "))
}

// joinProgressWithTopics enriches progress rows with topic names,
// dropping rows whose topic no longer exists.
func joinProgressWithTopics(progress []internalEntity.TopicProgress, topics []internalEntity.Topic) []entity.TopicProgressResponse {
	names := make(map[uint]string, len(topics))
	for _, t := range topics {
		names[t.ID] = t.Name
	}

	rows := make([]entity.TopicProgressResponse, 0, len(progress))
	for _, p := range progress {
		name, ok := names[p.TopicID]
		if !ok {
			continue
		}
		row := entity.TopicProgressResponse{
			TopicID:   p.TopicID,
			TopicName: name,
			Attempted: p.Attempted,
			Correct:   p.Correct,
			Accuracy:  p.Accuracy,
		}
		if p.LastPracticedAt != nil {
			row.LastPracticedAt = p.LastPracticedAt.Format(time.RFC3339)
		}
		rows = append(rows, row)
	}
	return rows
}

// rankTopicProgress returns the n weakest (or strongest) practiced
// topics, ties broken by topic id for a stable order.
func rankTopicProgress(rows []entity.TopicProgressResponse, n int, weakestFirst bool) []entity.TopicProgressResponse {
	practiced := make([]entity.TopicProgressResponse, 0, len(rows))
	for _, r := range rows {
		if r.Attempted > 0 {
			practiced = append(practiced, r)
		}
	}

	sort.SliceStable(practiced, func(i, j int) bool {
		if practiced[i].Accuracy != practiced[j].Accuracy {
			if weakestFirst {
				return practiced[i].Accuracy < practiced[j].Accuracy
			}
			return practiced[i].Accuracy > practiced[j].Accuracy
		}
		return practiced[i].TopicID < practiced[j].TopicID
	})

	if len(practiced) > n {
		practiced = practiced[:n]
	}
	return practiced
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
