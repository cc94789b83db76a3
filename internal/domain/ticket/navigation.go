package ticket

// NavigationKind discriminates where the host should send the user after a
// comment operation.
type NavigationKind string

const (
	// NavTicketView is the ticket's main view, optionally anchored at a comment.
	NavTicketView NavigationKind = "ticket_view"
	// NavThreadView is the dedicated view of one comment thread.
	NavThreadView NavigationKind = "thread_view"
)

// NavigationTarget is a view-layer-agnostic redirect decision. The host
// controller translates it into an actual URL.
type NavigationTarget struct {
	Kind     NavigationKind
	TicketID uint
	// ThreadRootID is the root comment of the thread to show (thread view only).
	ThreadRootID uint
	// AnchorCommentID scrolls the ticket view to a specific comment.
	AnchorCommentID uint
}

// TargetAfterCreate decides where to navigate after a comment was created.
// Replies land on their thread's view; top-level comments land on the ticket
// view anchored at the new comment.
func TargetAfterCreate(created *Comment, threadRoot *Comment) NavigationTarget {
	if created.IsReply() && threadRoot != nil {
		return NavigationTarget{
			Kind:         NavThreadView,
			TicketID:     created.TicketID(),
			ThreadRootID: threadRoot.ID(),
		}
	}
	return NavigationTarget{
		Kind:            NavTicketView,
		TicketID:        created.TicketID(),
		AnchorCommentID: created.ID(),
	}
}

// TargetAfterCreateFailure decides where to send the user when creation was
// rejected (missing parent, failed validation). With a known parent the user
// returns to that parent's thread root view; otherwise to the ticket view.
func TargetAfterCreateFailure(ticketID uint, parentThreadRoot *Comment) NavigationTarget {
	if parentThreadRoot != nil {
		return NavigationTarget{
			Kind:         NavThreadView,
			TicketID:     ticketID,
			ThreadRootID: parentThreadRoot.ID(),
		}
	}
	return NavigationTarget{
		Kind:     NavTicketView,
		TicketID: ticketID,
	}
}

// TargetAfterDelete decides where to navigate after deleting a comment.
// Deleting a thread root always returns to the ticket view. Deleting a
// non-root reply returns to the root's thread view only when the user was
// already on the thread page, otherwise to the ticket view.
func TargetAfterDelete(deleted *Comment, threadRoot *Comment, fromThreadView bool) NavigationTarget {
	if deleted.IsThreadRoot() {
		return NavigationTarget{
			Kind:     NavTicketView,
			TicketID: deleted.TicketID(),
		}
	}
	if fromThreadView && threadRoot != nil {
		return NavigationTarget{
			Kind:         NavThreadView,
			TicketID:     deleted.TicketID(),
			ThreadRootID: threadRoot.ID(),
		}
	}
	return NavigationTarget{
		Kind:     NavTicketView,
		TicketID: deleted.TicketID(),
	}
}
