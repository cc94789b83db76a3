package mappers

import (
	"soapbox/internal/domain/ticket"
	"soapbox/internal/infrastructure/persistence/models"
	"soapbox/internal/shared/biztime"
)

// TicketMapper handles the conversion between ticket/comment domain entities
// and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		BoardID:     t.BoardID(),
		Title:       t.Title(),
		Slug:        t.Slug(),
		Description: t.Description(),
		StatusSlug:  t.StatusSlug(),
		Locked:      t.Locked(),
		Archived:    t.Archived(),
		UserID:      t.UserID(),
		UserType:    t.UserType(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Slug,
		model.Description,
		model.StatusSlug,
		model.Locked,
		model.Archived,
		model.BoardID,
		model.UserID,
		model.UserType,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		UserID:    c.UserID(),
		UserType:  c.UserType(),
		ParentID:  c.ParentID(),
		Content:   c.Content(),
		Depth:     c.Depth(),
		CreatedAt: c.CreatedAt().UnixMilli(),
		UpdatedAt: c.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.UserID,
		model.UserType,
		model.ParentID,
		model.Content,
		model.Depth,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}
