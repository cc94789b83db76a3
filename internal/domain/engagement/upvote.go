package engagement

import (
	"fmt"
	"time"

	"soapbox/internal/shared/biztime"
)

// UpvotableKind names the kinds of content that accept upvotes. The set is
// closed; adding a kind requires a deliberate code change.
type UpvotableKind string

const (
	KindTicket  UpvotableKind = "ticket"
	KindComment UpvotableKind = "comment"
)

func (k UpvotableKind) IsValid() bool {
	return k == KindTicket || k == KindComment
}

// UpvotableRef identifies one piece of upvotable content.
type UpvotableRef struct {
	kind UpvotableKind
	id   uint
}

func NewUpvotableRef(kind UpvotableKind, id uint) (UpvotableRef, error) {
	if !kind.IsValid() {
		return UpvotableRef{}, fmt.Errorf("unknown upvotable kind: %s", kind)
	}
	if id == 0 {
		return UpvotableRef{}, fmt.Errorf("upvotable id is required")
	}
	return UpvotableRef{kind: kind, id: id}, nil
}

func TicketRef(ticketID uint) (UpvotableRef, error) {
	return NewUpvotableRef(KindTicket, ticketID)
}

func CommentRef(commentID uint) (UpvotableRef, error) {
	return NewUpvotableRef(KindComment, commentID)
}

func (r UpvotableRef) Kind() UpvotableKind { return r.kind }
func (r UpvotableRef) ID() uint            { return r.id }

func (r UpvotableRef) String() string {
	return fmt.Sprintf("%s:%d", r.kind, r.id)
}

// Upvote records one user's vote on one piece of content. At most one upvote
// may exist per (user, content) pair; the persistence layer enforces this
// with a unique index.
type Upvote struct {
	id        uint
	ref       UpvotableRef
	userID    uint
	userType  string
	createdAt time.Time
}

func NewUpvote(ref UpvotableRef, userID uint, userType string) (*Upvote, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user id is required")
	}
	if userType == "" {
		userType = "User"
	}
	return &Upvote{
		ref:       ref,
		userID:    userID,
		userType:  userType,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructUpvote(id uint, ref UpvotableRef, userID uint, userType string, createdAt time.Time) *Upvote {
	return &Upvote{
		id:        id,
		ref:       ref,
		userID:    userID,
		userType:  userType,
		createdAt: biztime.ToUTC(createdAt),
	}
}

func (u *Upvote) ID() uint             { return u.id }
func (u *Upvote) Ref() UpvotableRef    { return u.ref }
func (u *Upvote) UserID() uint         { return u.userID }
func (u *Upvote) UserType() string     { return u.userType }
func (u *Upvote) CreatedAt() time.Time { return u.createdAt }

func (u *Upvote) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("upvote ID already set")
	}
	u.id = id
	return nil
}
