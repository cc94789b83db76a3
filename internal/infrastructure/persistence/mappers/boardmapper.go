package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"soapbox/internal/domain/board"
	"soapbox/internal/infrastructure/persistence/models"
	"soapbox/internal/shared/biztime"
)

// BoardMapper handles the conversion between Board domain entities and
// persistence models.
type BoardMapper interface {
	ToModel(b *board.Board) *models.BoardModel
	ToDomain(model *models.BoardModel) (*board.Board, error)
}

type BoardMapperImpl struct{}

func NewBoardMapper() BoardMapper {
	return &BoardMapperImpl{}
}

func (m *BoardMapperImpl) ToModel(b *board.Board) *models.BoardModel {
	model := &models.BoardModel{
		ID:          b.ID(),
		Name:        b.Name(),
		Slug:        b.Slug(),
		Description: b.Description(),
		StatusSetID: b.StatusSetID(),
		AdminOnly:   b.AdminOnly(),
		ItemLabel:   b.ItemLabel(),
		CreatedAt:   b.CreatedAt().UnixMilli(),
		UpdatedAt:   b.UpdatedAt().UnixMilli(),
	}

	if v := b.SingleView(); v != nil {
		s := string(*v)
		model.SingleView = &s
	}

	if meta := b.Metadata(); len(meta) > 0 {
		metaJSON, _ := json.Marshal(meta)
		model.Metadata = datatypes.JSON(metaJSON)
	}

	return model
}

func (m *BoardMapperImpl) ToDomain(model *models.BoardModel) (*board.Board, error) {
	var singleView *board.ViewType
	if model.SingleView != nil {
		v, ok := board.ParseViewType(*model.SingleView)
		if !ok {
			return nil, fmt.Errorf("invalid stored view type %q (board id=%d)", *model.SingleView, model.ID)
		}
		singleView = &v
	}

	var metadata map[string]interface{}
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal board metadata (id=%d): %w", model.ID, err)
		}
	}

	return board.ReconstructBoard(
		model.ID,
		model.Name,
		model.Slug,
		model.Description,
		model.StatusSetID,
		singleView,
		model.AdminOnly,
		model.ItemLabel,
		metadata,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}
