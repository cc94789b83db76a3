package mappers

import (
	"soapbox/internal/domain/workflow"
	"soapbox/internal/infrastructure/persistence/models"
	"soapbox/internal/shared/biztime"
)

// WorkflowMapper handles the conversion between workflow domain entities and
// persistence models.
type WorkflowMapper interface {
	SetToModel(set *workflow.StatusSet) *models.StatusSetModel
	SetToDomain(model *models.StatusSetModel, statuses []*workflow.Status) (*workflow.StatusSet, error)
	StatusToModel(s *workflow.Status) *models.StatusModel
	StatusToDomain(model *models.StatusModel) (*workflow.Status, error)
}

type WorkflowMapperImpl struct{}

func NewWorkflowMapper() WorkflowMapper {
	return &WorkflowMapperImpl{}
}

func (m *WorkflowMapperImpl) SetToModel(set *workflow.StatusSet) *models.StatusSetModel {
	return &models.StatusSetModel{
		ID:        set.ID(),
		Name:      set.Name(),
		IsDefault: set.IsDefault(),
		CreatedAt: set.CreatedAt().UnixMilli(),
		UpdatedAt: set.UpdatedAt().UnixMilli(),
	}
}

func (m *WorkflowMapperImpl) SetToDomain(model *models.StatusSetModel, statuses []*workflow.Status) (*workflow.StatusSet, error) {
	return workflow.ReconstructStatusSet(
		model.ID,
		model.Name,
		model.IsDefault,
		statuses,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

func (m *WorkflowMapperImpl) StatusToModel(s *workflow.Status) *models.StatusModel {
	return &models.StatusModel{
		ID:          s.ID(),
		StatusSetID: s.StatusSetID(),
		Name:        s.Name(),
		Slug:        s.Slug(),
		Color:       s.Color().String(),
		Position:    s.Position(),
		CreatedAt:   s.CreatedAt().UnixMilli(),
		UpdatedAt:   s.UpdatedAt().UnixMilli(),
	}
}

func (m *WorkflowMapperImpl) StatusToDomain(model *models.StatusModel) (*workflow.Status, error) {
	return workflow.ReconstructStatus(
		model.ID,
		model.StatusSetID,
		model.Name,
		model.Slug,
		workflow.Color(model.Color),
		model.Position,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}
