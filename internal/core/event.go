package core

// EventKind is a notification the core emits to sessions.
type EventKind int

const (
	// EventRegistered acknowledges a register command.
	EventRegistered EventKind = iota
	// EventUnregistered acknowledges an unregister command.
	EventUnregistered
	// EventRoomCreated carries the code of a freshly created room.
	EventRoomCreated
	// EventRoomJoined confirms membership in the room named by Room.
	EventRoomJoined
	// EventRoomLeft carries the code of the room that was vacated.
	EventRoomLeft
	// EventMessageSent acknowledges a relayed message to its sender.
	EventMessageSent
	// EventNicknameSet acknowledges a nickname change.
	EventNicknameSet
	// EventStatus reports the identity's nickname and joined room.
	EventStatus
	// EventMessageReceived delivers another member's message.
	EventMessageReceived
	// EventError reports a failed command back to its issuer.
	EventError
)

// Event is sent to sessions to describe what happened in the system.
type Event struct {
	Kind EventKind
	// Op names the command an EventError answers.
	Op CommandKind
	// Room is the room code payload for created/joined/left/status events.
	Room string
	// Text and From carry the payload of EventMessageReceived.
	Text string
	From string
	// Nickname is set for EventStatus.
	Nickname string
	Err      *CoreError
}
