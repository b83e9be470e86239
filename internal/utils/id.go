package utils

import "github.com/google/uuid"

// NewConnID returns a unique identifier for one transport connection. It is
// used for log correlation only; identities are keyed by caller-supplied uids.
func NewConnID() string {
	return uuid.NewString()
}
