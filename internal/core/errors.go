package core

import "errors"

// Error codes for domain errors.
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeNotRegistered  = "not_registered"
	ErrCodeRoomNotFound   = "room_not_found"
	ErrCodeWrongPassword  = "wrong_password"
	ErrCodeNotInRoom      = "not_in_room"
	// ErrCodeAlreadyInRoom marks the benign join-the-room-you-are-in case.
	ErrCodeAlreadyInRoom = "already_in_room"
	ErrCodeRoomExhausted = "room_exhausted"
)

var (
	ErrNotRegistered = errors.New("not registered")
	ErrRoomNotFound  = errors.New("room not found")
	ErrWrongPassword = errors.New("wrong password")
	ErrNotInRoom     = errors.New("not in room")
	// ErrRoomExhausted is returned when the code generator gives up redrawing.
	ErrRoomExhausted = errors.New("room code space exhausted")
	// ErrHubStopped is returned by hub methods after Run has exited.
	ErrHubStopped = errors.New("hub stopped")
)

// CoreError wraps a code and human-readable message.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}

func coreError(code, msg string) *CoreError {
	return &CoreError{Code: code, Message: msg}
}
