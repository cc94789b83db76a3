package activity

import "time"

// Kind names the event types that appear on activity timelines.
type Kind string

const (
	KindTicketCreated  Kind = "ticket_created"
	KindCommentCreated Kind = "comment_created"
	KindUpvoteCreated  Kind = "upvote_created"
)

// Event is one timeline entry, denormalized so the view layer renders it
// without further lookups.
type Event struct {
	Kind       Kind
	OccurredAt time.Time

	BoardID   uint
	BoardName string
	BoardSlug string

	TicketID    uint
	TicketTitle string
	TicketSlug  string

	// CommentID and CommentExcerpt are set for comment events only.
	CommentID      uint
	CommentExcerpt string

	ActorID   uint
	ActorType string
}

// TicketRecord is a flat read-model row describing a ticket creation.
type TicketRecord struct {
	TicketID    uint
	TicketTitle string
	TicketSlug  string
	BoardID     uint
	BoardName   string
	BoardSlug   string
	UserID      uint
	UserType    string
	CreatedAt   time.Time
}

// CommentRecord is a flat read-model row describing a comment creation.
type CommentRecord struct {
	CommentID   uint
	Excerpt     string
	TicketID    uint
	TicketTitle string
	TicketSlug  string
	BoardID     uint
	BoardName   string
	BoardSlug   string
	UserID      uint
	UserType    string
	CreatedAt   time.Time
}

// UpvoteRecord is a flat read-model row describing an upvote on a ticket.
type UpvoteRecord struct {
	TicketID    uint
	TicketTitle string
	TicketSlug  string
	BoardID     uint
	BoardName   string
	BoardSlug   string
	UserID      uint
	UserType    string
	CreatedAt   time.Time
}

func (r TicketRecord) toEvent() Event {
	return Event{
		Kind:        KindTicketCreated,
		OccurredAt:  r.CreatedAt,
		BoardID:     r.BoardID,
		BoardName:   r.BoardName,
		BoardSlug:   r.BoardSlug,
		TicketID:    r.TicketID,
		TicketTitle: r.TicketTitle,
		TicketSlug:  r.TicketSlug,
		ActorID:     r.UserID,
		ActorType:   r.UserType,
	}
}

func (r CommentRecord) toEvent() Event {
	return Event{
		Kind:           KindCommentCreated,
		OccurredAt:     r.CreatedAt,
		BoardID:        r.BoardID,
		BoardName:      r.BoardName,
		BoardSlug:      r.BoardSlug,
		TicketID:       r.TicketID,
		TicketTitle:    r.TicketTitle,
		TicketSlug:     r.TicketSlug,
		CommentID:      r.CommentID,
		CommentExcerpt: r.Excerpt,
		ActorID:        r.UserID,
		ActorType:      r.UserType,
	}
}

func (r UpvoteRecord) toEvent() Event {
	return Event{
		Kind:        KindUpvoteCreated,
		OccurredAt:  r.CreatedAt,
		BoardID:     r.BoardID,
		BoardName:   r.BoardName,
		BoardSlug:   r.BoardSlug,
		TicketID:    r.TicketID,
		TicketTitle: r.TicketTitle,
		TicketSlug:  r.TicketSlug,
		ActorID:     r.UserID,
		ActorType:   r.UserType,
	}
}
