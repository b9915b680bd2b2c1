package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/entity"
	"github.com/pradiptha/cfaprep-be/internal/delivery/http/repository"
	internalEntity "github.com/pradiptha/cfaprep-be/internal/entity"
	"github.com/pradiptha/cfaprep-be/internal/pkg/mapper"
	"github.com/pradiptha/cfaprep-be/internal/planner"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type StudyPlanUsecase interface {
	Generate(ctx context.Context, userID uint, req entity.GeneratePlanRequest) (*entity.StudyPlanResponse, error)
	List(ctx context.Context, userID uint) ([]entity.StudyPlanResponse, error)
	Get(ctx context.Context, userID, planID uint) (*entity.StudyPlanResponse, error)
	Delete(ctx context.Context, userID, planID uint) error
}

type StudyPlanConfig struct {
	DB         *gorm.DB
	Repository repository.StudyPlanRepository
	Practice   repository.PracticeRepository
	Content    repository.ContentRepository
}

type studyPlanUsecase struct {
	cfg StudyPlanConfig
}

func NewStudyPlanUsecase(cfg StudyPlanConfig) StudyPlanUsecase {
	return &studyPlanUsecase{cfg: cfg}
}

// Generate runs the planner over the caller's progress and replaces
// their previous plan in one transaction. Concurrent regenerations for
// the same user serialize on that transaction; the last writer wins.
func (u *studyPlanUsecase) Generate(ctx context.Context, userID uint, req entity.GeneratePlanRequest) (*entity.StudyPlanResponse, error) {
	opts, err := toPlannerOptions(req)
	if err != nil {
		return nil, err
	}

	topics, err := u.cfg.Content.FindAllTopics(nil)
	if err != nil {
		return nil, err
	}
	progress, err := u.cfg.Practice.FindProgressByUserID(nil, userID)
	if err != nil {
		return nil, err
	}

	plan, err := planner.GeneratePlan(*opts, mapper.ToPlannerProgress(progress), mapper.ToPlannerCatalog(topics))
	if err != nil {
		return nil, plannerError(err)
	}

	dailyMinutes := req.DailyStudyTime
	if dailyMinutes == 0 {
		dailyMinutes = planner.DefaultDailyMinutes
	}

	row, err := mapper.ToStudyPlanEntity(userID, dailyMinutes, plan)
	if err != nil {
		return nil, err
	}

	err = u.cfg.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.cfg.Repository.DeletePlansByUserID(tx, userID); err != nil {
			return err
		}
		if err := u.cfg.Repository.CreatePlan(tx, row); err != nil {
			return err
		}
		return u.cfg.Repository.CreateSessions(tx, mapper.ToStudySessionEntities(row.ID, plan.Sessions))
	})
	if err != nil {
		return nil, err
	}

	sessions, err := u.cfg.Repository.FindSessionsByPlanID(nil, row.ID)
	if err != nil {
		return nil, err
	}
	return toPlanResponse(row, sessions)
}

func (u *studyPlanUsecase) List(ctx context.Context, userID uint) ([]entity.StudyPlanResponse, error) {
	plans, err := u.cfg.Repository.FindPlansByUserID(nil, userID)
	if err != nil {
		return nil, err
	}

	result := make([]entity.StudyPlanResponse, 0, len(plans))
	for i := range plans {
		resp, err := toPlanResponse(&plans[i], nil)
		if err != nil {
			return nil, err
		}
		result = append(result, *resp)
	}
	return result, nil
}

func (u *studyPlanUsecase) Get(ctx context.Context, userID, planID uint) (*entity.StudyPlanResponse, error) {
	plan, err := u.cfg.Repository.FindPlanByID(nil, userID, planID)
	if err != nil {
		return nil, notFoundOr(err, "study plan not found")
	}
	sessions, err := u.cfg.Repository.FindSessionsByPlanID(nil, plan.ID)
	if err != nil {
		return nil, err
	}
	return toPlanResponse(plan, sessions)
}

func (u *studyPlanUsecase) Delete(ctx context.Context, userID, planID uint) error {
	err := u.cfg.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return u.cfg.Repository.DeletePlan(tx, userID, planID)
	})
	return notFoundOr(err, "study plan not found")
}

// toPlannerOptions parses the request's dates and converts the explicit
// focus areas into planner inputs.
func toPlannerOptions(req entity.GeneratePlanRequest) (*planner.Options, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "start_date must be YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "end_date must be YYYY-MM-DD")
	}

	opts := &planner.Options{
		Name:                     req.Name,
		StartDate:                start,
		EndDate:                  end,
		DailyStudyTime:           req.DailyStudyTime,
		IncludedTopics:           req.IncludedTopics,
		ExcludedTopics:           req.ExcludedTopics,
		GenerateFromUserProgress: req.GenerateFromProgress,
	}

	if req.TargetExamDate != "" {
		exam, err := time.Parse(dateLayout, req.TargetExamDate)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "target_exam_date must be YYYY-MM-DD")
		}
		opts.TargetExamDate = &exam
	}

	for _, f := range req.FocusAreas {
		opts.FocusAreas = append(opts.FocusAreas, planner.WeakArea{
			TopicID:     f.TopicID,
			Proficiency: f.Proficiency,
			Priority:    f.Priority,
		})
	}
	return opts, nil
}

// plannerError maps the generator's error taxonomy onto HTTP statuses.
func plannerError(err error) error {
	var empty *planner.EmptySelectionError
	if errors.As(err, &empty) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	var invalid *planner.InvalidInputError
	var rng *planner.InvalidRangeError
	if errors.As(err, &invalid) || errors.As(err, &rng) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return err
}

func toPlanResponse(plan *internalEntity.StudyPlan, sessions []internalEntity.StudySession) (*entity.StudyPlanResponse, error) {
	focus, err := mapper.FocusAreasFromJSON(plan.FocusAreas)
	if err != nil {
		return nil, err
	}

	resp := &entity.StudyPlanResponse{
		ID:           plan.ID,
		Name:         plan.Name,
		StartDate:    plan.StartDate.Format(dateLayout),
		EndDate:      plan.EndDate.Format(dateLayout),
		DailyMinutes: plan.DailyMinutes,
		CreatedAt:    plan.CreatedAt.Format(time.RFC3339),
	}
	for _, f := range focus {
		resp.FocusAreas = append(resp.FocusAreas, entity.FocusAreaResponse{
			TopicID:     f.TopicID,
			TopicName:   f.TopicName,
			Proficiency: f.Proficiency,
			Priority:    f.Priority,
		})
	}
	for _, s := range sessions {
		resp.TotalMinutes += s.DurationMinutes
		resp.Sessions = append(resp.Sessions, entity.StudySessionResponse{
			Day:             s.Day.Format(dateLayout),
			TopicID:         s.TopicID,
			DurationMinutes: s.DurationMinutes,
		})
	}
	if plan.Truncated {
		resp.Truncation = &entity.TruncationResponse{
			RequestedMinutes: plan.RequestedMinutes,
			AvailableMinutes: plan.AvailableMinutes,
		}
	}
	return resp, nil
}
