// Package identity carries the opaque user identity supplied by the host
// application. The board engine never authenticates anyone; it only receives
// verified claims and passes them down to use cases.
package identity

const DefaultActorType = "User"

// Actor identifies the user a request acts on behalf of. Type allows hosts
// with multiple user models to disambiguate (defaults to "User").
type Actor struct {
	ID    uint
	Type  string
	Email string
	Roles []string
}

// NewActor builds an Actor, applying the default type when none is given.
func NewActor(id uint, actorType string, roles []string) Actor {
	if actorType == "" {
		actorType = DefaultActorType
	}
	return Actor{ID: id, Type: actorType, Roles: roles}
}

// IsAnonymous reports whether the request carried no identity.
func (a Actor) IsAnonymous() bool {
	return a.ID == 0
}

// HasRole reports whether the host granted the actor the given role.
func (a Actor) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}
