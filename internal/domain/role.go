package domain

import (
	"fmt"
	"strings"
)

// Role is the capability level of a caller. Roles are totally ordered:
// RoleAnonymous < RoleUser < RoleAdmin.
type Role int

// Possible role values
const (
	RoleAnonymous Role = iota
	RoleUser
	RoleAdmin
)

// String returns the lower-case role name used in tokens and logs.
func (r Role) String() string {
	switch r {
	case RoleAnonymous:
		return "anonymous"
	case RoleUser:
		return "user"
	case RoleAdmin:
		return "admin"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// AtLeast reports whether r grants everything min grants.
func (r Role) AtLeast(min Role) bool {
	return r >= min
}

// ParseRole converts a role name into a Role. Both the bare names ("user",
// "admin") and the prefixed forms ("ROLE_USER", "ROLE_ADMIN") are accepted,
// case-insensitively.
func ParseRole(s string) (Role, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "role_")

	switch name {
	case "anonymous":
		return RoleAnonymous, nil
	case "user":
		return RoleUser, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return RoleAnonymous, fmt.Errorf("%w: unknown role %q", ErrInvalidFormat, s)
	}
}

// HighestRole returns the strongest role among names. Unknown names are
// skipped; an empty or fully unknown list yields RoleAnonymous.
func HighestRole(names []string) Role {
	highest := RoleAnonymous
	for _, name := range names {
		role, err := ParseRole(name)
		if err != nil {
			continue
		}
		if role > highest {
			highest = role
		}
	}
	return highest
}
