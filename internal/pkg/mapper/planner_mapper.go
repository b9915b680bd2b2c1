package mapper

import (
	"encoding/json"

	"github.com/pradiptha/cfaprep-be/internal/entity"
	"github.com/pradiptha/cfaprep-be/internal/planner"
)

// ToPlannerCatalog converts topic rows into the planner's catalog shape.
func ToPlannerCatalog(topics []entity.Topic) []planner.Topic {
	catalog := make([]planner.Topic, 0, len(topics))
	for _, t := range topics {
		catalog = append(catalog, planner.Topic{ID: t.ID, Name: t.Name})
	}
	return catalog
}

// ToPlannerProgress converts per-topic aggregates into planner progress
// records.
func ToPlannerProgress(progress []entity.TopicProgress) []planner.ProgressRecord {
	records := make([]planner.ProgressRecord, 0, len(progress))
	for _, p := range progress {
		records = append(records, planner.ProgressRecord{
			TopicID:   p.TopicID,
			Attempted: p.Attempted,
			Correct:   p.Correct,
		})
	}
	return records
}

// ToStudyPlanEntity flattens a generated plan into the study_plans row.
func ToStudyPlanEntity(userID uint, dailyMinutes int, plan *planner.Plan) (*entity.StudyPlan, error) {
	focusJSON, err := json.Marshal(plan.FocusAreas)
	if err != nil {
		return nil, err
	}

	row := &entity.StudyPlan{
		UserID:       userID,
		Name:         plan.Name,
		StartDate:    plan.StartDate,
		EndDate:      plan.EndDate,
		DailyMinutes: dailyMinutes,
		FocusAreas:   string(focusJSON),
	}
	if plan.Truncation != nil {
		row.Truncated = true
		row.RequestedMinutes = plan.Truncation.RequestedMinutes
		row.AvailableMinutes = plan.Truncation.AvailableMinutes
	}
	return row, nil
}

// ToStudySessionEntities turns the planner's session sequence into rows,
// preserving the emission order in Position.
func ToStudySessionEntities(planID uint, sessions []planner.Session) []entity.StudySession {
	rows := make([]entity.StudySession, 0, len(sessions))
	for i, s := range sessions {
		rows = append(rows, entity.StudySession{
			PlanID:          planID,
			Day:             s.Day,
			TopicID:         s.TopicID,
			DurationMinutes: s.DurationMinutes,
			Position:        i,
		})
	}
	return rows
}

// FocusAreasFromJSON decodes the focus_areas column back into planner
// focus areas.
func FocusAreasFromJSON(raw string) ([]planner.FocusArea, error) {
	var areas []planner.FocusArea
	if err := json.Unmarshal([]byte(raw), &areas); err != nil {
		return nil, err
	}
	return areas, nil
}
