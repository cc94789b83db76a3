package ticket

import (
	"sort"

	"soapbox/internal/shared/errors"
)

// Thread is a comment with its replies expanded recursively, ready for the
// host view layer to render with depth-based indentation.
type Thread struct {
	Comment *Comment
	Replies []*Thread
}

// ReplyCount counts every descendant of the thread's comment.
func (t *Thread) ReplyCount() int {
	count := 0
	for _, reply := range t.Replies {
		count += 1 + reply.ReplyCount()
	}
	return count
}

// BuildThread reconstructs the reply tree rooted at root from the flat
// comment list of its ticket. Children are ordered by creation time
// ascending, ties broken by ID. Stored depth values must agree with the
// computed tree depth; a mismatch is reported as an integrity violation
// rather than silently repaired.
func BuildThread(root *Comment, all []*Comment) (*Thread, error) {
	if root == nil {
		return nil, errors.NewValidationError("thread root is required")
	}

	children := make(map[uint][]*Comment)
	for _, c := range all {
		if c.ParentID() != nil {
			children[*c.ParentID()] = append(children[*c.ParentID()], c)
		}
	}
	for _, siblings := range children {
		sort.SliceStable(siblings, func(i, j int) bool {
			if !siblings[i].CreatedAt().Equal(siblings[j].CreatedAt()) {
				return siblings[i].CreatedAt().Before(siblings[j].CreatedAt())
			}
			return siblings[i].ID() < siblings[j].ID()
		})
	}

	return expand(root, children, root.Depth())
}

func expand(c *Comment, children map[uint][]*Comment, depth int) (*Thread, error) {
	if c.Depth() != depth {
		return nil, errors.NewIntegrityError(
			"comment depth mismatch",
			"stored depth disagrees with computed tree depth",
		)
	}

	node := &Thread{Comment: c, Replies: []*Thread{}}
	for _, child := range children[c.ID()] {
		reply, err := expand(child, children, depth+1)
		if err != nil {
			return nil, err
		}
		node.Replies = append(node.Replies, reply)
	}
	return node, nil
}

// ThreadRoot walks parent links upward from c until reaching a comment with
// no parent. byID must contain every comment of the ticket. A cyclic parent
// chain or a dangling parent reference is a data-integrity violation and is
// reported as a fatal error instead of looping forever.
func ThreadRoot(c *Comment, byID map[uint]*Comment) (*Comment, error) {
	if c == nil {
		return nil, errors.NewValidationError("comment is required")
	}

	visited := map[uint]bool{}
	current := c
	for current.ParentID() != nil {
		if visited[current.ID()] {
			return nil, errors.NewIntegrityError(
				"cyclic comment parent chain",
				"comment parent links form a cycle",
			)
		}
		visited[current.ID()] = true

		parent, ok := byID[*current.ParentID()]
		if !ok {
			return nil, errors.NewIntegrityError(
				"dangling comment parent reference",
				"parent comment is missing from the ticket",
			)
		}
		current = parent
	}
	return current, nil
}

// CommentsByID indexes a flat comment list for parent-chain walks.
func CommentsByID(all []*Comment) map[uint]*Comment {
	byID := make(map[uint]*Comment, len(all))
	for _, c := range all {
		byID[c.ID()] = c
	}
	return byID
}

// SubtreeIDs collects the IDs of c and all of its descendants, used when a
// delete must cascade through a reply chain.
func SubtreeIDs(c *Comment, all []*Comment) []uint {
	children := make(map[uint][]*Comment)
	for _, candidate := range all {
		if candidate.ParentID() != nil {
			children[*candidate.ParentID()] = append(children[*candidate.ParentID()], candidate)
		}
	}

	var ids []uint
	var walk func(id uint)
	walk = func(id uint) {
		ids = append(ids, id)
		for _, child := range children[id] {
			walk(child.ID())
		}
	}
	walk(c.ID())
	return ids
}
