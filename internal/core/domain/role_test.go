package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	if r, err := ParseRole("ROLE_USER"); err != nil || r != RoleUser {
		t.Fatalf("expected RoleUser, got %v %v", r, err)
	}
	if r, err := ParseRole("ROLE_ADMIN"); err != nil || r != RoleAdmin {
		t.Fatalf("expected RoleAdmin, got %v %v", r, err)
	}
	for _, bad := range []string{"", "role_user", "ROLE_ROOT", "admin"} {
		if _, err := ParseRole(bad); !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("expected ErrInvalidRole for %q, got %v", bad, err)
		}
	}
}

func TestRole_ZeroValueInvalid(t *testing.T) {
	var r Role
	if r.IsValid() {
		t.Fatalf("zero role must be invalid")
	}
	if _, err := r.MarshalText(); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestRole_JSON(t *testing.T) {
	b, err := json.Marshal(User{Username: "alice", PasswordHash: "hash", Role: RoleAdmin})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out["role"] != "ROLE_ADMIN" {
		t.Fatalf("unexpected role: %v", out["role"])
	}
	if _, leaked := out["PasswordHash"]; leaked {
		t.Fatalf("password hash must not be serialized")
	}

	var u User
	if err := json.Unmarshal([]byte(`{"role":"ROLE_SUPER"}`), &u); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}

func TestFieldError(t *testing.T) {
	var err error = &FieldError{Field: "username"}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("FieldError must unwrap to ErrInvalidInput")
	}
}
