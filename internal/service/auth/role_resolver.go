package auth

import (
	"strings"

	"github.com/ucsb-cs156/campus-records-api/internal/domain"
)

// RoleResolver decides the role of a verified caller.
type RoleResolver struct {
	adminEmails map[string]struct{}
}

// NewRoleResolver creates a resolver that promotes adminEmails to admin.
// Emails are compared case-insensitively.
func NewRoleResolver(adminEmails []string) *RoleResolver {
	set := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		set[normalizeEmail(email)] = struct{}{}
	}
	return &RoleResolver{adminEmails: set}
}

// Resolve returns the caller's role: admin for configured admin emails,
// otherwise the highest role named in the claims. Any verified caller is at
// least a user.
func (r *RoleResolver) Resolve(claims *Claims) domain.Role {
	if claims == nil {
		return domain.RoleAnonymous
	}
	if _, ok := r.adminEmails[normalizeEmail(claims.Email)]; ok {
		return domain.RoleAdmin
	}

	role := domain.HighestRole(claims.Roles)
	if role < domain.RoleUser {
		role = domain.RoleUser
	}
	return role
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
