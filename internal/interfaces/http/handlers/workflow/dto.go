package workflow

import (
	"time"

	"soapbox/internal/application/workflow/usecases"
)

type StatusInputRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Color    string `json:"color" binding:"omitempty,statuscolor"`
	Position int    `json:"position" binding:"min=0"`
}

type CreateStatusSetRequest struct {
	Name      string               `json:"name" binding:"required,max=100"`
	IsDefault bool                 `json:"is_default"`
	Statuses  []StatusInputRequest `json:"statuses" binding:"dive"`
}

func (r *CreateStatusSetRequest) ToCommand() usecases.CreateStatusSetCommand {
	statuses := make([]usecases.StatusInput, 0, len(r.Statuses))
	for _, s := range r.Statuses {
		statuses = append(statuses, usecases.StatusInput{
			Name:     s.Name,
			Color:    s.Color,
			Position: s.Position,
		})
	}
	return usecases.CreateStatusSetCommand{
		Name:      r.Name,
		IsDefault: r.IsDefault,
		Statuses:  statuses,
	}
}

type AddStatusRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Color    string `json:"color" binding:"omitempty,statuscolor"`
	Position int    `json:"position" binding:"min=0"`
}

func (r *AddStatusRequest) ToCommand(statusSetID uint) usecases.AddStatusCommand {
	return usecases.AddStatusCommand{
		StatusSetID: statusSetID,
		Name:        r.Name,
		Color:       r.Color,
		Position:    r.Position,
	}
}

type UpdateStatusRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Color    *string `json:"color,omitempty" binding:"omitempty,statuscolor"`
	Position *int    `json:"position,omitempty" binding:"omitempty,min=0"`
}

func (r *UpdateStatusRequest) ToCommand(statusID uint) usecases.UpdateStatusCommand {
	return usecases.UpdateStatusCommand{
		StatusID: statusID,
		Name:     r.Name,
		Color:    r.Color,
		Position: r.Position,
	}
}

type StatusResponse struct {
	StatusID uint   `json:"status_id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Color    string `json:"color"`
	CSSClass string `json:"css_class"`
	Position int    `json:"position"`
}

type StatusSetResponse struct {
	StatusSetID uint             `json:"status_set_id"`
	Name        string           `json:"name"`
	IsDefault   bool             `json:"is_default"`
	Statuses    []StatusResponse `json:"statuses"`
	CreatedAt   time.Time        `json:"created_at"`
}

func toStatusSetResponse(s usecases.StatusSetSummary) StatusSetResponse {
	statuses := make([]StatusResponse, 0, len(s.Statuses))
	for _, st := range s.Statuses {
		statuses = append(statuses, StatusResponse{
			StatusID: st.StatusID,
			Name:     st.Name,
			Slug:     st.Slug,
			Color:    st.Color,
			CSSClass: st.CSSClass,
			Position: st.Position,
		})
	}
	return StatusSetResponse{
		StatusSetID: s.StatusSetID,
		Name:        s.Name,
		IsDefault:   s.IsDefault,
		Statuses:    statuses,
		CreatedAt:   s.CreatedAt,
	}
}
