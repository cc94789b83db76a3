package usecases

import (
	"context"
	"fmt"
	"time"

	"soapbox/internal/domain/board"
	"soapbox/internal/domain/engagement"
	"soapbox/internal/domain/identity"
	"soapbox/internal/domain/ticket"
	"soapbox/internal/domain/workflow"
	"soapbox/internal/shared/logger"
)

type GetTicketCommand struct {
	TicketID uint
	Actor    identity.Actor
}

// ThreadSummary is one top-level comment with its aggregate reply count.
// Full reply trees are loaded separately by the thread view.
type ThreadSummary struct {
	CommentID  uint
	AuthorID   uint
	Content    string
	ReplyCount int
	Upvotes    int64
	UpvotedBy  bool
	CreatedAt  time.Time
}

type StatusInfo struct {
	Slug     string
	Name     string
	CSSClass string
}

type GetTicketResult struct {
	TicketID        uint
	Title           string
	Slug            string
	Description     string
	DescriptionHTML string
	Status          *StatusInfo
	Locked          bool
	Archived        bool
	AcceptsComments bool
	AcceptsVotes    bool
	BoardID         uint
	AuthorID        uint
	Upvotes         int64
	UpvotedBy       bool
	Threads         []ThreadSummary
	CreatedAt       time.Time
}

type GetTicketUseCase struct {
	ticketRepo   ticket.Repository
	boardRepo    board.Repository
	workflowRepo workflow.Repository
	commentRepo  ticket.CommentRepository
	upvoteRepo   engagement.UpvoteRepository
	markdown     MarkdownRenderer
	logger       logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	boardRepo board.Repository,
	workflowRepo workflow.Repository,
	commentRepo ticket.CommentRepository,
	upvoteRepo engagement.UpvoteRepository,
	markdown MarkdownRenderer,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:   ticketRepo,
		boardRepo:    boardRepo,
		workflowRepo: workflowRepo,
		commentRepo:  commentRepo,
		upvoteRepo:   upvoteRepo,
		markdown:     markdown,
		logger:       logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, cmd GetTicketCommand) (*GetTicketResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Warnw("ticket not found", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	status, err := uc.statusInfo(ctx, t)
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load comments", "ticket_id", t.ID(), "error", err)
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	threads, err := uc.threadSummaries(ctx, comments, cmd.Actor)
	if err != nil {
		return nil, err
	}

	ticketRef, err := engagement.TicketRef(t.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to build upvote reference: %w", err)
	}
	upvotes, err := uc.upvoteRepo.Count(ctx, ticketRef)
	if err != nil {
		uc.logger.Errorw("failed to count upvotes", "ticket_id", t.ID(), "error", err)
		return nil, fmt.Errorf("failed to count upvotes: %w", err)
	}
	upvotedBy := false
	if !cmd.Actor.IsAnonymous() {
		existing, err := uc.upvoteRepo.Find(ctx, ticketRef, cmd.Actor.ID)
		if err != nil {
			uc.logger.Errorw("failed to load viewer upvote", "ticket_id", t.ID(), "error", err)
			return nil, fmt.Errorf("failed to load viewer upvote: %w", err)
		}
		upvotedBy = existing != nil
	}

	descriptionHTML, err := uc.markdown.Render(t.Description())
	if err != nil {
		uc.logger.Warnw("failed to render description markdown", "ticket_id", t.ID(), "error", err)
		descriptionHTML = ""
	}

	return &GetTicketResult{
		TicketID:        t.ID(),
		Title:           t.Title(),
		Slug:            t.Slug(),
		Description:     t.Description(),
		DescriptionHTML: descriptionHTML,
		Status:          status,
		Locked:          t.Locked(),
		Archived:        t.Archived(),
		AcceptsComments: t.AcceptsComments(),
		AcceptsVotes:    t.AcceptsVotes(),
		BoardID:         t.BoardID(),
		AuthorID:        t.UserID(),
		Upvotes:         upvotes,
		UpvotedBy:       upvotedBy,
		Threads:         threads,
		CreatedAt:       t.CreatedAt(),
	}, nil
}

func (uc *GetTicketUseCase) statusInfo(ctx context.Context, t *ticket.Ticket) (*StatusInfo, error) {
	if t.StatusSlug() == nil {
		return nil, nil
	}
	b, err := uc.boardRepo.GetByID(ctx, t.BoardID())
	if err != nil {
		uc.logger.Errorw("failed to load board", "board_id", t.BoardID(), "error", err)
		return nil, fmt.Errorf("failed to load board: %w", err)
	}
	if !b.HasStatusTracking() {
		// Stale status on a board that dropped its workflow; show nothing.
		return nil, nil
	}
	set, err := uc.workflowRepo.GetSetByID(ctx, *b.StatusSetID())
	if err != nil {
		uc.logger.Errorw("failed to load board status set", "status_set_id", *b.StatusSetID(), "error", err)
		return nil, fmt.Errorf("failed to load board status set: %w", err)
	}
	s := set.FindBySlug(*t.StatusSlug())
	if s == nil {
		return nil, nil
	}
	return &StatusInfo{Slug: s.Slug(), Name: s.Name(), CSSClass: s.Color().CSSClass()}, nil
}

func (uc *GetTicketUseCase) threadSummaries(ctx context.Context, comments []*ticket.Comment, actor identity.Actor) ([]ThreadSummary, error) {
	var commentIDs []uint
	var roots []*ticket.Comment
	for _, c := range comments {
		commentIDs = append(commentIDs, c.ID())
		if c.IsThreadRoot() {
			roots = append(roots, c)
		}
	}

	counts := map[uint]int64{}
	voted := map[uint]bool{}
	if len(commentIDs) > 0 {
		var err error
		counts, err = uc.upvoteRepo.CountMany(ctx, engagement.KindComment, commentIDs)
		if err != nil {
			uc.logger.Errorw("failed to count comment upvotes", "error", err)
			return nil, fmt.Errorf("failed to count comment upvotes: %w", err)
		}
		if !actor.IsAnonymous() {
			voted, err = uc.upvoteRepo.ExistsMany(ctx, engagement.KindComment, commentIDs, actor.ID)
			if err != nil {
				uc.logger.Errorw("failed to load viewer comment upvotes", "error", err)
				return nil, fmt.Errorf("failed to load viewer comment upvotes: %w", err)
			}
		}
	}

	summaries := make([]ThreadSummary, 0, len(roots))
	for _, root := range roots {
		thread, err := ticket.BuildThread(root, comments)
		if err != nil {
			// Depth mismatches and cycles are data corruption; fail loudly.
			uc.logger.Errorw("comment thread integrity violation", "comment_id", root.ID(), "error", err)
			return nil, err
		}
		summaries = append(summaries, ThreadSummary{
			CommentID:  root.ID(),
			AuthorID:   root.UserID(),
			Content:    root.Content(),
			ReplyCount: thread.ReplyCount(),
			Upvotes:    counts[root.ID()],
			UpvotedBy:  voted[root.ID()],
			CreatedAt:  root.CreatedAt(),
		})
	}
	return summaries, nil
}
