package hashing

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/minusd/favorite-places/internal/core/domain"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("Secret123!")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "Secret123!" {
		t.Fatalf("expected hash to differ from plaintext")
	}
	if !h.Matches("Secret123!", hash) {
		t.Fatalf("expected hash to match its plaintext")
	}
	if h.Matches("wrong", hash) {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestBcryptHasher_Salted(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	a, _ := h.Hash("same")
	b, _ := h.Hash("same")
	if a == b {
		t.Fatalf("expected distinct hashes for the same plaintext")
	}
}

func TestBcryptHasher_CostFallback(t *testing.T) {
	if got := NewBcryptHasher(0).cost; got != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", got)
	}
	if got := NewBcryptHasher(99).cost; got != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", got)
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	if NewBcryptHasher(bcrypt.MinCost).Matches("x", "not-a-bcrypt-hash") {
		t.Fatalf("expected malformed hash not to match")
	}
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	if _, err := h.Hash(strings.Repeat("a", MaxPasswordBytes)); err != nil {
		t.Fatalf("expected %d bytes to hash, got %v", MaxPasswordBytes, err)
	}

	_, err := h.Hash(strings.Repeat("a", MaxPasswordBytes+1))
	if !errors.Is(err, domain.ErrPasswordTooLong) {
		t.Fatalf("expected ErrPasswordTooLong, got %v", err)
	}
}
