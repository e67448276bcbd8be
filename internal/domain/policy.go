package domain

// Actor identifies the authenticated caller of a request.
type Actor struct {
	ID   string
	Role Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanModify reports whether the actor may mutate a resource owned by ownerID.
// Every mutating event operation goes through this predicate.
func CanModify(actor Actor, ownerID string) bool {
	return actor.IsAdmin() || actor.ID == ownerID
}
