// internal/pkg/auth/policy.go
package auth

import "strings"

// Policy is the static admin allow-list. Membership is the only privilege
// model: an identity either is an admin or it is not.
type Policy struct {
	adminEmails map[string]struct{}
}

// NewPolicy builds the policy from the configured allow-list. Entries are
// normalized once so lookups stay a plain map hit.
func NewPolicy(adminEmails []string) *Policy {
	emails := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		emails[e] = struct{}{}
	}
	return &Policy{adminEmails: emails}
}

// IsAdmin reports whether the email belongs to an admin. The match is
// case-insensitive; a missing or empty email is never an admin.
func (p *Policy) IsAdmin(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	_, ok := p.adminEmails[email]
	return ok
}
