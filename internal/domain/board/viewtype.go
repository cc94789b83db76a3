package board

// ViewType is the listing rendering mode for a board.
type ViewType string

const (
	ViewList ViewType = "list"
	ViewCard ViewType = "card"
)

// NormalizeViewType maps an explicit request parameter to a ViewType.
// Only the literal "list" resolves to list view; everything else is card.
func NormalizeViewType(param string) ViewType {
	if param == string(ViewList) {
		return ViewList
	}
	return ViewCard
}

// ParseViewType validates a stored or configured view mode.
func ParseViewType(s string) (ViewType, bool) {
	switch ViewType(s) {
	case ViewList, ViewCard:
		return ViewType(s), true
	}
	return "", false
}
