package mongo

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/minusd/favorite-places/internal/core/domain"
)

func TestMongoUser_ToDomain(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := mongoUser{
		ID:           oid,
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: "$2a$hash",
		Role:         "ROLE_ADMIN",
		CreatedAt:    1700000000,
	}

	u, err := doc.toDomain()
	if err != nil {
		t.Fatalf("toDomain returned error: %v", err)
	}
	if u.ID != oid.Hex() || u.Username != "alice" || u.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", u)
	}
	if !u.CreatedAt.Equal(time.Unix(1700000000, 0)) {
		t.Fatalf("unexpected created_at: %v", u.CreatedAt)
	}
	if !u.UpdatedAt.IsZero() {
		t.Fatalf("expected zero updated_at, got %v", u.UpdatedAt)
	}
}

func TestMongoUser_ToDomain_UnknownRole(t *testing.T) {
	_, err := mongoUser{ID: primitive.NewObjectID(), Role: "superuser"}.toDomain()
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestMongoPlace_ToDomain(t *testing.T) {
	oid := primitive.NewObjectID()
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	p := mongoPlace{ID: oid, UserID: "u-1", Name: "Cafe", CreatedAt: ts, UpdatedAt: ts}.toDomain()
	if p.ID != oid.Hex() || p.UserID != "u-1" || p.Name != "Cafe" || !p.CreatedAt.Equal(ts) {
		t.Fatalf("unexpected place: %+v", p)
	}
}
