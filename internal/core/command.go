package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandRegister binds a caller-supplied uid to the issuing session.
	CommandRegister CommandKind = iota
	// CommandUnregister removes the identity and its room membership.
	CommandUnregister
	// CommandNewRoom creates a password-gated room and joins the creator.
	CommandNewRoom
	// CommandJoinRoom joins an existing room after a password check.
	CommandJoinRoom
	// CommandLeaveRoom leaves the currently joined room.
	CommandLeaveRoom
	// CommandMessage relays text to the other members of the joined room.
	CommandMessage
	// CommandNickname changes the identity's display name.
	CommandNickname
	// CommandStatus reports the identity's nickname and joined room.
	CommandStatus
)

// String returns the wire-level event name for the command.
func (k CommandKind) String() string {
	switch k {
	case CommandRegister:
		return "register"
	case CommandUnregister:
		return "unregister"
	case CommandNewRoom:
		return "new_room"
	case CommandJoinRoom:
		return "join_room"
	case CommandLeaveRoom:
		return "leave_room"
	case CommandMessage:
		return "message"
	case CommandNickname:
		return "nickname"
	case CommandStatus:
		return "status"
	default:
		return "unknown"
	}
}

// Command represents an action requested on behalf of one identity.
// UID is always required; the other fields depend on Kind.
type Command struct {
	Kind     CommandKind
	UID      string
	Nickname string
	Room     string
	Password string
	Text     string
}
