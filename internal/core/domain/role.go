package domain

import "fmt"

// Role is a closed set: the only valid values are RoleUser and RoleAdmin.
// The zero Role is invalid and never produced by ParseRole.
type Role struct {
	name string
}

var (
	RoleUser  = Role{name: "ROLE_USER"}
	RoleAdmin = Role{name: "ROLE_ADMIN"}
)

// ParseRole converts a stored or transmitted role name into a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case RoleUser.name:
		return RoleUser, nil
	case RoleAdmin.name:
		return RoleAdmin, nil
	}
	return Role{}, fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

func (r Role) String() string { return r.name }

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

func (r Role) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, ErrInvalidRole
	}
	return []byte(r.name), nil
}

func (r *Role) UnmarshalText(b []byte) error {
	parsed, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
