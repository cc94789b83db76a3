package usecases

import (
	"context"
	"fmt"
	"time"

	"soapbox/internal/domain/workflow"
	"soapbox/internal/shared/logger"
)

type StatusSummary struct {
	StatusID uint
	Name     string
	Slug     string
	Color    string
	CSSClass string
	Position int
}

type StatusSetSummary struct {
	StatusSetID uint
	Name        string
	IsDefault   bool
	Statuses    []StatusSummary
	CreatedAt   time.Time
}

type ListStatusSetsUseCase struct {
	workflowRepo workflow.Repository
	logger       logger.Interface
}

func NewListStatusSetsUseCase(workflowRepo workflow.Repository, logger logger.Interface) *ListStatusSetsUseCase {
	return &ListStatusSetsUseCase{workflowRepo: workflowRepo, logger: logger}
}

func (uc *ListStatusSetsUseCase) Execute(ctx context.Context) ([]StatusSetSummary, error) {
	sets, err := uc.workflowRepo.ListSets(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list status sets", "error", err)
		return nil, fmt.Errorf("failed to list status sets: %w", err)
	}

	summaries := make([]StatusSetSummary, 0, len(sets))
	for _, set := range sets {
		statuses := make([]StatusSummary, 0, len(set.Statuses()))
		for _, s := range set.Statuses() {
			statuses = append(statuses, StatusSummary{
				StatusID: s.ID(),
				Name:     s.Name(),
				Slug:     s.Slug(),
				Color:    string(s.Color()),
				CSSClass: s.Color().CSSClass(),
				Position: s.Position(),
			})
		}
		summaries = append(summaries, StatusSetSummary{
			StatusSetID: set.ID(),
			Name:        set.Name(),
			IsDefault:   set.IsDefault(),
			Statuses:    statuses,
			CreatedAt:   set.CreatedAt(),
		})
	}
	return summaries, nil
}
