package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"soapbox/internal/domain/board"
	"soapbox/internal/infrastructure/persistence/mappers"
	"soapbox/internal/infrastructure/persistence/models"
	"soapbox/internal/shared/db"
	apperrors "soapbox/internal/shared/errors"
)

type BoardRepository struct {
	db     *gorm.DB
	mapper mappers.BoardMapper
}

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{
		db:     db,
		mapper: mappers.NewBoardMapper(),
	}
}

func (r *BoardRepository) Save(ctx context.Context, b *board.Board) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	return b.SetID(model.ID)
}

func (r *BoardRepository) Update(ctx context.Context, b *board.Board) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select forces writes of zero-valued and nullable columns.
	result := tx.
		Model(&models.BoardModel{}).
		Where("id = ?", model.ID).
		Select("Name", "Slug", "Description", "StatusSetID", "SingleView", "AdminOnly", "ItemLabel", "Metadata", "UpdatedAt").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update board: %w", result.Error)
	}

	return nil
}

func (r *BoardRepository) Delete(ctx context.Context, boardID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.BoardModel{}, boardID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete board: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("board not found")
	}
	return nil
}

func (r *BoardRepository) GetByID(ctx context.Context, boardID uint) (*board.Board, error) {
	var model models.BoardModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, boardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("board not found")
		}
		return nil, fmt.Errorf("failed to find board: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *BoardRepository) GetBySlug(ctx context.Context, slugValue string) (*board.Board, error) {
	var model models.BoardModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("slug = ?", slugValue).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("board not found")
		}
		return nil, fmt.Errorf("failed to find board: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *BoardRepository) List(ctx context.Context, filter board.Filter) ([]*board.Board, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.BoardModel{})

	if !filter.IncludeAdminOnly {
		query = query.Where("admin_only = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count boards: %w", err)
	}

	query = query.Order("name ASC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var boardModels []models.BoardModel
	if err := query.Find(&boardModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list boards: %w", err)
	}

	boards := make([]*board.Board, len(boardModels))
	for i, model := range boardModels {
		b, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		boards[i] = b
	}

	return boards, total, nil
}

func (r *BoardRepository) SlugInUse(ctx context.Context, slugValue string, excludeID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	query := tx.Model(&models.BoardModel{}).Where("slug = ?", slugValue)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check board slug: %w", err)
	}
	return count > 0, nil
}

func (r *BoardRepository) TicketCount(ctx context.Context, boardID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.TicketModel{}).Where("board_id = ?", boardID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count board tickets: %w", err)
	}
	return count, nil
}

func (r *BoardRepository) CountByStatusSet(ctx context.Context, statusSetID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.BoardModel{}).Where("status_set_id = ?", statusSetID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count boards by status set: %w", err)
	}
	return count, nil
}
