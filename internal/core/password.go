package core

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost of 10 balances join latency against brute-force resistance;
// room passwords are short-lived shared secrets, not account credentials.
const bcryptCost = 10

// hashRoomPassword generates a bcrypt hash of the room password.
func hashRoomPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash room password: %w", err)
	}
	return string(hash), nil
}

// checkRoomPassword reports whether password matches the stored hash.
// bcrypt's comparison is constant-time.
func checkRoomPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
