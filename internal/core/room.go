package core

// room is the live state of one password-gated room. Only the hub goroutine
// touches it.
type room struct {
	code         string
	passwordHash string
	members      map[string]struct{}
}

func newRoom(code, passwordHash string) *room {
	return &room{
		code:         code,
		passwordHash: passwordHash,
		members:      make(map[string]struct{}),
	}
}

// add inserts a member uid. Returns true if newly added.
func (r *room) add(uid string) bool {
	if _, exists := r.members[uid]; exists {
		return false
	}
	r.members[uid] = struct{}{}
	return true
}

// remove deletes a member uid. Returns true if removed.
func (r *room) remove(uid string) bool {
	if _, exists := r.members[uid]; !exists {
		return false
	}
	delete(r.members, uid)
	return true
}

// empty returns true if no members remain.
func (r *room) empty() bool {
	return len(r.members) == 0
}
