package activity

import "sort"

const (
	// BoardTimelineCap bounds a single board's timeline.
	BoardTimelineCap = 20
	// GlobalTimelineCap bounds the cross-board timeline.
	GlobalTimelineCap = 30
)

// Build merges the three record streams into one timeline ordered by
// occurrence time descending, newest first, capped at limit. Records that
// share a timestamp keep their relative input order: tickets before comments
// before upvotes, each stream in the order its reader returned.
func Build(tickets []TicketRecord, comments []CommentRecord, upvotes []UpvoteRecord, limit int) []Event {
	events := make([]Event, 0, len(tickets)+len(comments)+len(upvotes))
	for _, r := range tickets {
		events = append(events, r.toEvent())
	}
	for _, r := range comments {
		events = append(events, r.toEvent())
	}
	for _, r := range upvotes {
		events = append(events, r.toEvent())
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].OccurredAt.After(events[j].OccurredAt)
	})

	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events
}

// BuildBoard builds a single board's timeline with the board cap applied.
func BuildBoard(tickets []TicketRecord, comments []CommentRecord, upvotes []UpvoteRecord) []Event {
	return Build(tickets, comments, upvotes, BoardTimelineCap)
}

// BuildGlobal builds the cross-board timeline with the global cap applied.
func BuildGlobal(tickets []TicketRecord, comments []CommentRecord, upvotes []UpvoteRecord) []Event {
	return Build(tickets, comments, upvotes, GlobalTimelineCap)
}
