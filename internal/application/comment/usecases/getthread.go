package usecases

import (
	"context"
	"fmt"
	"time"

	"soapbox/internal/domain/ticket"
	apperrors "soapbox/internal/shared/errors"
	"soapbox/internal/shared/logger"
)

type GetThreadCommand struct {
	TicketID  uint
	CommentID uint
}

// ThreadNode is one rendered comment in a nested thread. Depth mirrors the
// stored column so the host view indents without recounting.
type ThreadNode struct {
	CommentID   uint
	AuthorID    uint
	Content     string
	ContentHTML string
	Depth       int
	CreatedAt   time.Time
	Replies     []ThreadNode
}

type GetThreadResult struct {
	Root       ThreadNode
	ReplyCount int
}

type GetThreadUseCase struct {
	commentRepo ticket.CommentRepository
	markdown    MarkdownRenderer
	logger      logger.Interface
}

func NewGetThreadUseCase(
	commentRepo ticket.CommentRepository,
	markdown MarkdownRenderer,
	logger logger.Interface,
) *GetThreadUseCase {
	return &GetThreadUseCase{
		commentRepo: commentRepo,
		markdown:    markdown,
		logger:      logger,
	}
}

// Execute loads the full thread containing the given comment. The comment
// need not be the root; the walk finds the root first.
func (uc *GetThreadUseCase) Execute(ctx context.Context, cmd GetThreadCommand) (*GetThreadResult, error) {
	c, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		uc.logger.Warnw("comment not found", "comment_id", cmd.CommentID, "error", err)
		return nil, err
	}
	if c.TicketID() != cmd.TicketID {
		return nil, apperrors.NewNotFoundError("comment not found")
	}

	all, err := uc.commentRepo.GetByTicketID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load comments", "ticket_id", cmd.TicketID, "error", err)
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	root, err := ticket.ThreadRoot(c, ticket.CommentsByID(all))
	if err != nil {
		uc.logger.Errorw("comment thread integrity violation", "comment_id", c.ID(), "error", err)
		return nil, err
	}
	thread, err := ticket.BuildThread(root, all)
	if err != nil {
		uc.logger.Errorw("comment thread integrity violation", "comment_id", root.ID(), "error", err)
		return nil, err
	}

	node, err := uc.toNode(thread)
	if err != nil {
		return nil, err
	}
	return &GetThreadResult{Root: *node, ReplyCount: thread.ReplyCount()}, nil
}

func (uc *GetThreadUseCase) toNode(t *ticket.Thread) (*ThreadNode, error) {
	html, err := uc.markdown.Render(t.Comment.Content())
	if err != nil {
		uc.logger.Warnw("failed to render comment markdown", "comment_id", t.Comment.ID(), "error", err)
		html = ""
	}

	node := &ThreadNode{
		CommentID:   t.Comment.ID(),
		AuthorID:    t.Comment.UserID(),
		Content:     t.Comment.Content(),
		ContentHTML: html,
		Depth:       t.Comment.Depth(),
		CreatedAt:   t.Comment.CreatedAt(),
		Replies:     []ThreadNode{},
	}
	for _, reply := range t.Replies {
		child, err := uc.toNode(reply)
		if err != nil {
			return nil, err
		}
		node.Replies = append(node.Replies, *child)
	}
	return node, nil
}
