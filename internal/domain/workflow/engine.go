package workflow

// StatusesFor returns the ordered statuses of a board's set. A nil set
// (board without status tracking) yields an empty list.
func StatusesFor(set *StatusSet) []*Status {
	if set == nil {
		return []*Status{}
	}
	return set.Statuses()
}

// IsValidTicketStatus reports whether a ticket status slug is legal for a
// board's status set: a nil slug is valid only when the board has no set,
// and a non-nil slug must be one of the set's slugs.
func IsValidTicketStatus(set *StatusSet, slugValue *string) bool {
	if set == nil {
		return slugValue == nil
	}
	if slugValue == nil {
		return false
	}
	return set.Contains(*slugValue)
}

// DefaultStatusSlug returns the slug of the lowest-position status in the
// set, or nil when the set is absent or empty.
func DefaultStatusSlug(set *StatusSet) *string {
	if set == nil {
		return nil
	}
	def := set.Default()
	if def == nil {
		return nil
	}
	s := def.Slug()
	return &s
}
