package board

import (
	"soapbox/internal/application/board/usecases"
)

type CreateBoardRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description" binding:"max=2000"`
	StatusSetID *uint   `json:"status_set_id,omitempty"`
	AdminOnly   bool    `json:"admin_only"`
	ItemLabel   string  `json:"item_label" binding:"max=50"`
	SingleView  *string `json:"single_view,omitempty" binding:"omitempty,oneof=list card"`
}

func (r *CreateBoardRequest) ToCommand() usecases.CreateBoardCommand {
	return usecases.CreateBoardCommand{
		Name:        r.Name,
		Description: r.Description,
		StatusSetID: r.StatusSetID,
		AdminOnly:   r.AdminOnly,
		ItemLabel:   r.ItemLabel,
		SingleView:  r.SingleView,
	}
}

type UpdateBoardRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
	AdminOnly   *bool   `json:"admin_only,omitempty"`
	ItemLabel   *string `json:"item_label,omitempty" binding:"omitempty,max=50"`

	SingleView      *string `json:"single_view,omitempty" binding:"omitempty,oneof=list card"`
	ClearSingleView bool    `json:"clear_single_view"`

	StatusSetID    *uint `json:"status_set_id,omitempty"`
	ClearStatusSet bool  `json:"clear_status_set"`
}

func (r *UpdateBoardRequest) ToCommand(boardID uint) usecases.UpdateBoardCommand {
	return usecases.UpdateBoardCommand{
		BoardID:         boardID,
		Name:            r.Name,
		Description:     r.Description,
		AdminOnly:       r.AdminOnly,
		ItemLabel:       r.ItemLabel,
		SingleView:      r.SingleView,
		ClearSingleView: r.ClearSingleView,
		StatusSetID:     r.StatusSetID,
		ClearStatusSet:  r.ClearStatusSet,
	}
}

// BoardResponse is the public shape of one board, including the view the
// current visitor should see it in.
type BoardResponse struct {
	BoardID     uint                   `json:"board_id"`
	Name        string                 `json:"name"`
	Slug        string                 `json:"slug"`
	Description string                 `json:"description"`
	AdminOnly   bool                   `json:"admin_only"`
	ItemLabel   string                 `json:"item_label"`
	StatusSetID *uint                  `json:"status_set_id,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	ViewType    string                 `json:"view_type"`
	ShowToggle  bool                   `json:"show_toggle"`
}
