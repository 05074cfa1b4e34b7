// internal/pkg/auth/policy_test.go
package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicy_IsAdmin(t *testing.T) {
	policy := NewPolicy([]string{
		"admin@fashionstore.com",
		"Manager@FashionStore.com",
		"  supervisor@fashionstore.com  ",
		"",
	})

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"exact match", "admin@fashionstore.com", true},
		{"uppercase lookup", "ADMIN@FASHIONSTORE.COM", true},
		{"mixed-case entry normalized", "manager@fashionstore.com", true},
		{"whitespace entry normalized", "supervisor@fashionstore.com", true},
		{"whitespace lookup trimmed", "  admin@fashionstore.com ", true},
		{"regular user", "user@example.com", false},
		{"empty email", "", false},
		{"blank email", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.IsAdmin(tt.email))
		})
	}
}

func TestPolicy_EmptyAllowList(t *testing.T) {
	policy := NewPolicy(nil)
	assert.False(t, policy.IsAdmin("admin@fashionstore.com"))
}
