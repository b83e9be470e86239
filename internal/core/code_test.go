package core

import (
	"strings"
	"testing"
)

func TestCodeLengthAndAlphabet(t *testing.T) {
	gen := NewCodeGenerator(0)

	for i := 0; i < 100; i++ {
		code, err := gen.Next(nil)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if len(code) != DefaultRoomCodeLength {
			t.Fatalf("code %q has length %d, want %d", code, len(code), DefaultRoomCodeLength)
		}
		for _, r := range code {
			if !strings.ContainsRune(codeAlphabet, r) {
				t.Fatalf("code %q contains %q outside the alphabet", code, r)
			}
		}
	}
}

func TestCodeCustomLength(t *testing.T) {
	gen := NewCodeGenerator(8)
	code, err := gen.Next(nil)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if len(code) != 8 {
		t.Fatalf("code %q has length %d, want 8", code, len(code))
	}
}

func TestCodeRedrawsOnCollision(t *testing.T) {
	gen := NewCodeGenerator(5)

	calls := 0
	code, err := gen.Next(func(string) bool {
		calls++
		return calls <= 3 // first three draws "collide"
	})
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if code == "" {
		t.Fatal("empty code after redraws")
	}
	if calls != 4 {
		t.Fatalf("expected 4 draws, got %d", calls)
	}
}

func TestCodeExhaustion(t *testing.T) {
	gen := NewCodeGenerator(5)

	_, err := gen.Next(func(string) bool { return true })
	if err != ErrRoomExhausted {
		t.Fatalf("expected ErrRoomExhausted, got %v", err)
	}
}

func TestCodesUniqueAgainstLiveSet(t *testing.T) {
	gen := NewCodeGenerator(5)

	live := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		code, err := gen.Next(func(c string) bool {
			_, taken := live[c]
			return taken
		})
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if _, dup := live[code]; dup {
			t.Fatalf("generator returned live code %s", code)
		}
		live[code] = struct{}{}
	}
}
