package core

import (
	"slices"
	"strings"
	"time"
)

// RoomSnapshot is a value-only copy of one room's observable state.
// Password hashes are deliberately excluded.
type RoomSnapshot struct {
	Code    string   `json:"code"`
	Members []string `json:"members"`
}

// IdentitySnapshot is a value-only copy of one identity's non-channel fields.
type IdentitySnapshot struct {
	UID      string `json:"uid"`
	Nickname string `json:"nickname"`
	Joined   string `json:"joined,omitempty"`
}

// Snapshot is a consistent read-only view of both registries, taken on the
// hub goroutine so no mutation can interleave with it.
type Snapshot struct {
	TakenAt    time.Time          `json:"taken_at"`
	Rooms      []RoomSnapshot     `json:"rooms"`
	Identities []IdentitySnapshot `json:"identities"`
}

// snapshot copies the registries. Output is sorted so diagnostic dumps are
// stable across runs.
func (h *Hub) snapshot() Snapshot {
	snap := Snapshot{
		TakenAt:    time.Now(),
		Rooms:      make([]RoomSnapshot, 0, len(h.rooms)),
		Identities: make([]IdentitySnapshot, 0, len(h.identities)),
	}

	for code, rm := range h.rooms {
		members := make([]string, 0, len(rm.members))
		for uid := range rm.members {
			members = append(members, uid)
		}
		slices.Sort(members)
		snap.Rooms = append(snap.Rooms, RoomSnapshot{Code: code, Members: members})
	}
	slices.SortFunc(snap.Rooms, func(a, b RoomSnapshot) int {
		return strings.Compare(a.Code, b.Code)
	})

	for uid, ident := range h.identities {
		snap.Identities = append(snap.Identities, IdentitySnapshot{
			UID:      uid,
			Nickname: ident.nickname,
			Joined:   ident.room,
		})
	}
	slices.SortFunc(snap.Identities, func(a, b IdentitySnapshot) int {
		return strings.Compare(a.UID, b.UID)
	})

	return snap
}
