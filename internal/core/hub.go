package core

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// DefaultNickname is assigned when register carries no nickname.
const DefaultNickname = "anonymous"

// identity is one registered user. room is "" while unjoined. session points
// at the connection whose Events channel delivers to this user; the hub
// borrows it and never closes it.
type identity struct {
	uid      string
	nickname string
	room     string
	session  *Session
}

// envelope is one unit of work for the hub goroutine: either a command from
// a session, a session release, or a snapshot request.
type envelope struct {
	sess    *Session
	cmd     *Command
	release bool
	snap    chan<- Snapshot
}

// Hub owns the identity and room registries. All mutations happen on the
// single goroutine running Run, which consumes a fan-in inbox; that is the
// whole concurrency story — no locks, run-to-completion per command.
type Hub struct {
	inbox   chan envelope
	stopped chan struct{}

	identities map[string]*identity
	rooms      map[string]*room
	// sessions tracks which uids were registered through each live session,
	// so a disconnect can unregister all of them.
	sessions map[*Session]map[string]struct{}

	codes *CodeGenerator
	log   *zerolog.Logger
}

// NewHub creates a hub generating codes of the given length (0 for the
// default). A nil logger disables logging.
func NewHub(codeLength int, logger *zerolog.Logger) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Hub{
		inbox:      make(chan envelope, 64),
		stopped:    make(chan struct{}),
		identities: make(map[string]*identity),
		rooms:      make(map[string]*room),
		sessions:   make(map[*Session]map[string]struct{}),
		codes:      NewCodeGenerator(codeLength),
		log:        logger,
	}
}

// Run processes commands until ctx is cancelled. Call it exactly once.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.stopped)
	for {
		select {
		case <-ctx.Done():
			return
		case env := <-h.inbox:
			switch {
			case env.snap != nil:
				env.snap <- h.snapshot()
			case env.release:
				h.releaseSession(env.sess)
			case env.cmd != nil:
				h.handle(env.sess, env.cmd)
			}
		}
	}
}

// Bind starts routing the session's commands into the hub, preserving the
// order the session issued them.
func (h *Hub) Bind(ctx context.Context, sess *Session) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case cmd, ok := <-sess.Commands:
				if !ok {
					return
				}
				h.submit(envelope{sess: sess, cmd: cmd})
			}
		}
	}()
}

// Release unregisters every identity bound through the session. The transport
// calls it on disconnect; commands already queued are processed first.
func (h *Hub) Release(sess *Session) {
	h.submit(envelope{sess: sess, release: true})
}

// Snapshot returns a consistent read-only view of both registries.
func (h *Hub) Snapshot(ctx context.Context) (Snapshot, error) {
	reply := make(chan Snapshot, 1)
	select {
	case h.inbox <- envelope{snap: reply}:
	case <-h.stopped:
		return Snapshot{}, ErrHubStopped
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
	select {
	case snap := <-reply:
		return snap, nil
	case <-h.stopped:
		return Snapshot{}, ErrHubStopped
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
}

func (h *Hub) submit(env envelope) {
	select {
	case h.inbox <- env:
	case <-h.stopped:
	}
}

func (h *Hub) handle(sess *Session, cmd *Command) {
	if cmd.UID == "" {
		h.fail(sess, cmd.Kind, ErrCodeInvalidRequest, "uid is required")
		return
	}

	switch cmd.Kind {
	case CommandRegister:
		h.register(sess, cmd)
	case CommandUnregister:
		h.unregister(sess, cmd)
	case CommandNewRoom:
		h.newRoom(sess, cmd)
	case CommandJoinRoom:
		h.joinRoom(sess, cmd)
	case CommandLeaveRoom:
		h.leaveRoom(sess, cmd)
	case CommandMessage:
		h.message(sess, cmd)
	case CommandNickname:
		h.nickname(sess, cmd)
	case CommandStatus:
		h.status(sess, cmd)
	default:
		h.fail(sess, cmd.Kind, ErrCodeInvalidRequest, "unknown command")
	}
}

func (h *Hub) register(sess *Session, cmd *Command) {
	if _, exists := h.identities[cmd.UID]; exists {
		// Re-registering keeps the existing nickname, room and channel.
		h.deliver(sess, &Event{Kind: EventRegistered})
		return
	}

	nickname := cmd.Nickname
	if nickname == "" {
		nickname = DefaultNickname
	}
	h.identities[cmd.UID] = &identity{
		uid:      cmd.UID,
		nickname: nickname,
		session:  sess,
	}
	if sess != nil {
		if h.sessions[sess] == nil {
			h.sessions[sess] = make(map[string]struct{})
		}
		h.sessions[sess][cmd.UID] = struct{}{}
	}

	h.log.Info().Str("uid", cmd.UID).Str("nickname", nickname).Msg("identity registered")
	h.deliver(sess, &Event{Kind: EventRegistered})
}

func (h *Hub) unregister(sess *Session, cmd *Command) {
	h.removeIdentity(cmd.UID)
	h.deliver(sess, &Event{Kind: EventUnregistered})
}

func (h *Hub) newRoom(sess *Session, cmd *Command) {
	ident, ok := h.identities[cmd.UID]
	if !ok {
		h.fail(sess, CommandNewRoom, ErrCodeNotRegistered, "uid is not registered")
		return
	}

	hash, err := hashRoomPassword(cmd.Password)
	if err != nil {
		h.fail(sess, CommandNewRoom, ErrCodeInvalidRequest, "password is not usable")
		return
	}

	code, err := h.codes.Next(func(c string) bool {
		_, live := h.rooms[c]
		return live
	})
	if err != nil {
		h.fail(sess, CommandNewRoom, ErrCodeRoomExhausted, "no room codes available")
		return
	}

	h.rooms[code] = newRoom(code, hash)
	h.log.Info().Str("uid", cmd.UID).Str("room", code).Msg("room created")
	h.deliver(sess, &Event{Kind: EventRoomCreated, Room: code})

	// The creator joins the room it just made; the password it set always
	// passes the check it set up.
	h.join(sess, ident, code, cmd.Password)
}

func (h *Hub) joinRoom(sess *Session, cmd *Command) {
	ident, ok := h.identities[cmd.UID]
	if !ok {
		h.fail(sess, CommandJoinRoom, ErrCodeNotRegistered, "uid is not registered")
		return
	}
	h.join(sess, ident, cmd.Room, cmd.Password)
}

// join runs the membership checks in order, short-circuiting on the first
// failure. On success the identity's room pointer and the room's member set
// change together, keeping them in agreement.
func (h *Hub) join(sess *Session, ident *identity, code, password string) {
	if ident.room == code {
		// Benign: already a member of exactly this room, nothing mutates.
		h.fail(sess, CommandJoinRoom, ErrCodeAlreadyInRoom, fmt.Sprintf("at room %s already", code))
		return
	}

	rm, ok := h.rooms[code]
	if !ok {
		h.fail(sess, CommandJoinRoom, ErrCodeRoomNotFound, fmt.Sprintf("room %s does not exist", code))
		return
	}
	if !checkRoomPassword(rm.passwordHash, password) {
		h.fail(sess, CommandJoinRoom, ErrCodeWrongPassword, fmt.Sprintf("incorrect password for room %s", code))
		return
	}

	if ident.room != "" {
		// Single-room membership: leave the previous room first.
		h.evict(ident)
	}
	rm.add(ident.uid)
	ident.room = code

	h.log.Info().Str("uid", ident.uid).Str("room", code).Msg("joined room")
	h.deliver(sess, &Event{Kind: EventRoomJoined, Room: code})
}

func (h *Hub) leaveRoom(sess *Session, cmd *Command) {
	ident, ok := h.identities[cmd.UID]
	if !ok {
		h.fail(sess, CommandLeaveRoom, ErrCodeNotRegistered, "uid is not registered")
		return
	}
	if ident.room == "" {
		h.fail(sess, CommandLeaveRoom, ErrCodeNotInRoom, "did not join any room")
		return
	}

	code := h.evict(ident)
	h.log.Info().Str("uid", ident.uid).Str("room", code).Msg("left room")
	h.deliver(sess, &Event{Kind: EventRoomLeft, Room: code})
}

func (h *Hub) message(sess *Session, cmd *Command) {
	ident, ok := h.identities[cmd.UID]
	if !ok {
		h.fail(sess, CommandMessage, ErrCodeNotRegistered, "uid is not registered")
		return
	}
	if ident.room == "" {
		h.fail(sess, CommandMessage, ErrCodeNotInRoom, "did not join any room")
		return
	}

	rm := h.rooms[ident.room]
	for uid := range rm.members {
		if uid == ident.uid {
			continue
		}
		member, ok := h.identities[uid]
		if !ok {
			continue
		}
		h.deliver(member.session, &Event{
			Kind: EventMessageReceived,
			Room: ident.room,
			Text: cmd.Text,
			From: ident.nickname,
		})
	}
	h.deliver(sess, &Event{Kind: EventMessageSent})
}

func (h *Hub) nickname(sess *Session, cmd *Command) {
	ident, ok := h.identities[cmd.UID]
	if !ok {
		h.fail(sess, CommandNickname, ErrCodeNotRegistered, "uid is not registered")
		return
	}
	if cmd.Nickname == "" {
		h.fail(sess, CommandNickname, ErrCodeInvalidRequest, "nickname is required")
		return
	}

	ident.nickname = cmd.Nickname
	h.deliver(sess, &Event{Kind: EventNicknameSet})
}

func (h *Hub) status(sess *Session, cmd *Command) {
	ident, ok := h.identities[cmd.UID]
	if !ok {
		h.fail(sess, CommandStatus, ErrCodeNotRegistered, "uid is not registered")
		return
	}
	h.deliver(sess, &Event{Kind: EventStatus, Nickname: ident.nickname, Room: ident.room})
}

// removeIdentity deletes the identity, vacating its room first so the
// membership invariant holds at every step.
func (h *Hub) removeIdentity(uid string) {
	ident, ok := h.identities[uid]
	if !ok {
		return
	}
	if ident.room != "" {
		h.evict(ident)
	}
	delete(h.identities, uid)
	if ident.session != nil {
		if uids, ok := h.sessions[ident.session]; ok {
			delete(uids, uid)
			if len(uids) == 0 {
				delete(h.sessions, ident.session)
			}
		}
	}
	h.log.Info().Str("uid", uid).Msg("identity unregistered")
}

// evict removes the identity from its current room and returns the vacated
// code. A room whose last member leaves is deleted; its code may be reused.
func (h *Hub) evict(ident *identity) string {
	code := ident.room
	if rm, ok := h.rooms[code]; ok {
		rm.remove(ident.uid)
		if rm.empty() {
			delete(h.rooms, code)
			h.log.Info().Str("room", code).Msg("empty room deleted")
		}
	}
	ident.room = ""
	return code
}

// releaseSession treats a disconnect as an implicit unregister of every
// identity bound through the session.
func (h *Hub) releaseSession(sess *Session) {
	if sess == nil {
		return
	}
	for uid := range h.sessions[sess] {
		h.removeIdentity(uid)
	}
	delete(h.sessions, sess)
}

func (h *Hub) fail(sess *Session, op CommandKind, code, msg string) {
	h.deliver(sess, &Event{Kind: EventError, Op: op, Err: coreError(code, msg)})
}

// deliver is a non-blocking enqueue. A recipient whose buffer is full loses
// the event rather than stalling the hub or the other recipients.
func (h *Hub) deliver(sess *Session, ev *Event) {
	if sess == nil {
		return
	}
	select {
	case sess.Events <- ev:
	default:
		h.log.Debug().Str("conn_id", sess.ConnID).Msg("event dropped, slow consumer")
	}
}
