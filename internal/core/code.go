package core

import "math/rand/v2"

// codeAlphabet is the 62-symbol alphabet room codes are drawn from.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// DefaultRoomCodeLength is used when no length is configured. Five symbols
// give ~916M possible codes.
const DefaultRoomCodeLength = 5

// maxCodeAttempts bounds the collision redraw loop. With a sparsely occupied
// code space a single draw almost always succeeds.
const maxCodeAttempts = 1000

// CodeGenerator produces fixed-length alphanumeric room codes.
type CodeGenerator struct {
	length int
}

// NewCodeGenerator builds a generator for codes of the given length.
func NewCodeGenerator(length int) *CodeGenerator {
	if length <= 0 {
		length = DefaultRoomCodeLength
	}
	return &CodeGenerator{length: length}
}

// Next draws codes until one is not reported taken. Returns ErrRoomExhausted
// if every redraw collides within the attempt bound.
func (g *CodeGenerator) Next(taken func(string) bool) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := g.draw()
		if taken == nil || !taken(code) {
			return code, nil
		}
	}
	return "", ErrRoomExhausted
}

func (g *CodeGenerator) draw() string {
	buf := make([]byte, g.length)
	for i := range buf {
		buf[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
	}
	return string(buf)
}
