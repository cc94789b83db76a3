// Package permission defines the capability port the host application
// implements. One method per capability; implementations are injected into
// use cases, never looked up through globals.
package permission

import (
	"context"

	"soapbox/internal/domain/identity"
)

// Service answers capability questions about an actor. The default
// implementation is casbin-backed; hosts may supply their own.
type Service interface {
	CanVote(ctx context.Context, actor identity.Actor) (bool, error)
	CanComment(ctx context.Context, actor identity.Actor) (bool, error)
	CanEditTickets(ctx context.Context, actor identity.Actor) (bool, error)
	CanManageBoards(ctx context.Context, actor identity.Actor) (bool, error)
	CanViewAdminBoards(ctx context.Context, actor identity.Actor) (bool, error)
}
