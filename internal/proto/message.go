package proto

import "encoding/json"

// Status values carried by every response envelope.
const (
	StatusSuccess = 0
	StatusFailed  = 1
)

// Inbound event names.
const (
	TypeRegister   = "register"
	TypeUnregister = "unregister"
	TypeNewRoom    = "new_room"
	TypeJoinRoom   = "join_room"
	TypeLeaveRoom  = "leave_room"
	TypeMessage    = "message"
	TypeNickname   = "nickname"
	TypeStatus     = "status"
)

// Inbound is the envelope for requests coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// RegisterData introduces a caller-supplied uid, optionally with a nickname.
type RegisterData struct {
	UID      string `json:"uid"`
	Nickname string `json:"nickname,omitempty"`
}

// UIDData is the payload for unregister, leave_room and status.
type UIDData struct {
	UID string `json:"uid"`
}

// NewRoomData requests a fresh room gated by the given password.
type NewRoomData struct {
	UID      string `json:"uid"`
	Password string `json:"password"`
}

// JoinData requests membership in an existing room.
type JoinData struct {
	UID      string `json:"uid"`
	Room     string `json:"room"`
	Password string `json:"password"`
}

// MessageData relays text to the sender's current room.
type MessageData struct {
	UID     string `json:"uid"`
	Message string `json:"message"`
}

// NicknameData changes the display name of an identity.
type NicknameData struct {
	UID      string `json:"uid"`
	Nickname string `json:"nickname"`
}

// Outbound is the envelope for responses and deliveries sent to the client.
// Type echoes the request event name; message deliveries reuse TypeMessage
// with Received/From set.
type Outbound struct {
	Type     string        `json:"type"`
	Status   int           `json:"status"`
	Message  string        `json:"message,omitempty"`
	Room     string        `json:"room,omitempty"`
	Received string        `json:"received,omitempty"`
	From     string        `json:"from,omitempty"`
	Detail   *StatusDetail `json:"detail,omitempty"`
}

// StatusDetail answers a status request. Joined is "None" while unjoined.
type StatusDetail struct {
	Nickname string `json:"nickname"`
	Joined   string `json:"joined"`
}
