package core

import (
	"context"
	"testing"
	"time"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := NewHub(0, nil)
	go hub.Run(ctx)
	return hub
}

func newTestSession(t *testing.T, hub *Hub, connID string) *Session {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	sess := NewSession(connID, 32)
	hub.Bind(ctx, sess)
	return sess
}

func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

func mustRegister(t *testing.T, sess *Session, uid, nickname string) {
	t.Helper()

	sess.Commands <- &Command{Kind: CommandRegister, UID: uid, Nickname: nickname}
	mustEvent(t, sess.Events, EventRegistered)
}

func mustCreateRoom(t *testing.T, sess *Session, uid, password string) string {
	t.Helper()

	sess.Commands <- &Command{Kind: CommandNewRoom, UID: uid, Password: password}
	created := mustEvent(t, sess.Events, EventRoomCreated)
	joined := mustEvent(t, sess.Events, EventRoomJoined)
	if created.Room == "" || created.Room != joined.Room {
		t.Fatalf("create/join acks disagree: created %q, joined %q", created.Room, joined.Room)
	}
	return created.Room
}

func mustSnapshot(t *testing.T, hub *Hub) Snapshot {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	snap, err := hub.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	return snap
}

// assertAgreement checks the membership invariant: an identity points at a
// room exactly when that room lists it as a member.
func assertAgreement(t *testing.T, snap Snapshot) {
	t.Helper()

	members := make(map[string]string)
	for _, rm := range snap.Rooms {
		for _, uid := range rm.Members {
			if prev, dup := members[uid]; dup {
				t.Fatalf("uid %s is a member of both %s and %s", uid, prev, rm.Code)
			}
			members[uid] = rm.Code
		}
	}

	for _, ident := range snap.Identities {
		if members[ident.UID] != ident.Joined {
			t.Fatalf("uid %s: room pointer %q but membership %q", ident.UID, ident.Joined, members[ident.UID])
		}
		delete(members, ident.UID)
	}
	for uid, code := range members {
		t.Fatalf("room %s lists unknown uid %s", code, uid)
	}
}
