package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"soapbox/internal/application/ticket/usecases"
	"soapbox/internal/domain/identity"
	"soapbox/internal/shared/utils"
)

type CreateTicketRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description string  `json:"description" binding:"required,max=10000"`
	StatusSlug  *string `json:"status_slug,omitempty"`
}

func (r *CreateTicketRequest) ToCommand(boardID uint, actor identity.Actor) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		BoardID:     boardID,
		Title:       r.Title,
		Description: r.Description,
		StatusSlug:  r.StatusSlug,
		Actor:       actor,
	}
}

type UpdateTicketRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,max=200"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=10000"`
}

type ChangeStatusRequest struct {
	// StatusSlug moves the ticket to that status; null clears it.
	StatusSlug *string `json:"status_slug"`
}

type LockTicketRequest struct {
	Locked bool `json:"locked"`
}

type ArchiveTicketRequest struct {
	Archived bool `json:"archived"`
}

type ListTicketsRequest struct {
	Page            int
	PageSize        int
	StatusSlug      *string
	IncludeArchived bool
	Search          string
}

func (r *ListTicketsRequest) ToCommand(boardID uint, actor identity.Actor) usecases.ListTicketsCommand {
	return usecases.ListTicketsCommand{
		BoardID:         boardID,
		StatusSlug:      r.StatusSlug,
		IncludeArchived: r.IncludeArchived,
		Search:          r.Search,
		Page:            r.Page,
		PageSize:        r.PageSize,
		Actor:           actor,
	}
}

func parseListTicketsRequest(c *gin.Context) *ListTicketsRequest {
	pagination := utils.ParsePagination(c)

	req := &ListTicketsRequest{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
		Search:   c.Query("search"),
	}

	if status := c.Query("status"); status != "" {
		req.StatusSlug = &status
	}

	if archived, err := strconv.ParseBool(c.Query("include_archived")); err == nil {
		req.IncludeArchived = archived
	}

	return req
}
