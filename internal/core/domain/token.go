package domain

import "time"

// Token is a signed, self-contained bearer credential.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Claims is the verified content of a Token.
type Claims struct {
	ID        string
	Subject   string // username
	UserID    string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}
