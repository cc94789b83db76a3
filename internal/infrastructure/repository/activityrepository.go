package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"soapbox/internal/domain/activity"
	"soapbox/internal/shared/biztime"
	"soapbox/internal/shared/db"
)

const activityExcerptLength = 120

// ActivityRepository implements activity.Reader with pre-joined queries so
// timeline rendering never does a lookup per event.
type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

type activityTicketRow struct {
	TicketID    uint
	TicketTitle string
	TicketSlug  string
	BoardID     uint
	BoardName   string
	BoardSlug   string
	UserID      uint
	UserType    string
	CreatedAt   int64
}

type activityCommentRow struct {
	CommentID   uint
	Content     string
	TicketID    uint
	TicketTitle string
	TicketSlug  string
	BoardID     uint
	BoardName   string
	BoardSlug   string
	UserID      uint
	UserType    string
	CreatedAt   int64
}

func (r *ActivityRepository) RecentTickets(ctx context.Context, boardID uint, limit int) ([]activity.TicketRecord, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Table("tickets").
		Select(`tickets.id AS ticket_id, tickets.title AS ticket_title, tickets.slug AS ticket_slug,
			boards.id AS board_id, boards.name AS board_name, boards.slug AS board_slug,
			tickets.user_id, tickets.user_type, tickets.created_at`).
		Joins("JOIN boards ON boards.id = tickets.board_id").
		Where("tickets.archived = ?", false)
	query = scopeActivityBoard(query, boardID)

	var rows []activityTicketRow
	if err := query.Order("tickets.created_at DESC").Limit(limit).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load recent tickets: %w", err)
	}

	records := make([]activity.TicketRecord, len(rows))
	for i, row := range rows {
		records[i] = activity.TicketRecord{
			TicketID:    row.TicketID,
			TicketTitle: row.TicketTitle,
			TicketSlug:  row.TicketSlug,
			BoardID:     row.BoardID,
			BoardName:   row.BoardName,
			BoardSlug:   row.BoardSlug,
			UserID:      row.UserID,
			UserType:    row.UserType,
			CreatedAt:   biztime.FromMillis(row.CreatedAt),
		}
	}
	return records, nil
}

func (r *ActivityRepository) RecentComments(ctx context.Context, boardID uint, limit int) ([]activity.CommentRecord, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Table("comments").
		Select(`comments.id AS comment_id, comments.content,
			tickets.id AS ticket_id, tickets.title AS ticket_title, tickets.slug AS ticket_slug,
			boards.id AS board_id, boards.name AS board_name, boards.slug AS board_slug,
			comments.user_id, comments.user_type, comments.created_at`).
		Joins("JOIN tickets ON tickets.id = comments.ticket_id").
		Joins("JOIN boards ON boards.id = tickets.board_id").
		Where("tickets.archived = ?", false)
	query = scopeActivityBoard(query, boardID)

	var rows []activityCommentRow
	if err := query.Order("comments.created_at DESC").Limit(limit).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load recent comments: %w", err)
	}

	records := make([]activity.CommentRecord, len(rows))
	for i, row := range rows {
		records[i] = activity.CommentRecord{
			CommentID:   row.CommentID,
			Excerpt:     truncateExcerpt(row.Content),
			TicketID:    row.TicketID,
			TicketTitle: row.TicketTitle,
			TicketSlug:  row.TicketSlug,
			BoardID:     row.BoardID,
			BoardName:   row.BoardName,
			BoardSlug:   row.BoardSlug,
			UserID:      row.UserID,
			UserType:    row.UserType,
			CreatedAt:   biztime.FromMillis(row.CreatedAt),
		}
	}
	return records, nil
}

func (r *ActivityRepository) RecentUpvotes(ctx context.Context, boardID uint, limit int) ([]activity.UpvoteRecord, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	// Only ticket upvotes appear on timelines; comment upvotes are noise there.
	query := tx.Table("upvotes").
		Select(`tickets.id AS ticket_id, tickets.title AS ticket_title, tickets.slug AS ticket_slug,
			boards.id AS board_id, boards.name AS board_name, boards.slug AS board_slug,
			upvotes.user_id, upvotes.user_type, upvotes.created_at`).
		Joins("JOIN tickets ON tickets.id = upvotes.upvotable_id").
		Joins("JOIN boards ON boards.id = tickets.board_id").
		Where("upvotes.upvotable_kind = ?", "ticket").
		Where("tickets.archived = ?", false)
	query = scopeActivityBoard(query, boardID)

	var rows []activityTicketRow
	if err := query.Order("upvotes.created_at DESC").Limit(limit).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load recent upvotes: %w", err)
	}

	records := make([]activity.UpvoteRecord, len(rows))
	for i, row := range rows {
		records[i] = activity.UpvoteRecord{
			TicketID:    row.TicketID,
			TicketTitle: row.TicketTitle,
			TicketSlug:  row.TicketSlug,
			BoardID:     row.BoardID,
			BoardName:   row.BoardName,
			BoardSlug:   row.BoardSlug,
			UserID:      row.UserID,
			UserType:    row.UserType,
			CreatedAt:   biztime.FromMillis(row.CreatedAt),
		}
	}
	return records, nil
}

// scopeActivityBoard narrows a timeline query to one board, or to every
// non-admin board when boardID is zero.
func scopeActivityBoard(query *gorm.DB, boardID uint) *gorm.DB {
	if boardID != 0 {
		return query.Where("boards.id = ?", boardID)
	}
	return query.Where("boards.admin_only = ?", false)
}

func truncateExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= activityExcerptLength {
		return content
	}
	return string(runes[:activityExcerptLength]) + "…"
}
