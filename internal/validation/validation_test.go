package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sergioruizlaf/user-service/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestValidateUser(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		user     models.User
		expected []Violation
	}{
		{
			name:     "valid minimal user",
			user:     models.User{Username: "alice", Password: "pass1234"},
			expected: []Violation{},
		},
		{
			name: "valid full user",
			user: models.User{
				Username: "alice",
				Password: "pass1234",
				Email:    strPtr("alice@example.com"),
				Age:      intPtr(30),
			},
			expected: []Violation{},
		},
		{
			name: "short password",
			user: models.User{Username: "alice", Password: "abc"},
			expected: []Violation{
				{Field: "password", Message: "Minimum length: 4 characters"},
			},
		},
		{
			name: "missing username",
			user: models.User{Password: "pass1234"},
			expected: []Violation{
				{Field: "userName", Message: "must not be null"},
			},
		},
		{
			name: "missing password reports the length message",
			user: models.User{Username: "alice"},
			expected: []Violation{
				{Field: "password", Message: "Minimum length: 4 characters"},
			},
		},
		{
			name: "malformed email",
			user: models.User{Username: "alice", Password: "pass1234", Email: strPtr("not-an-email")},
			expected: []Violation{
				{Field: "email", Message: "must be a well-formed email address"},
			},
		},
		{
			name: "email too short",
			user: models.User{Username: "alice", Password: "pass1234", Email: strPtr("a@b")},
			expected: []Violation{
				{Field: "email", Message: "size must be between 4 and 50"},
			},
		},
		{
			name: "email failing size and grammar reports both",
			user: models.User{Username: "alice", Password: "pass1234", Email: strPtr("ab")},
			expected: []Violation{
				{Field: "email", Message: "size must be between 4 and 50"},
				{Field: "email", Message: "must be a well-formed email address"},
			},
		},
		{
			name: "age below minimum",
			user: models.User{Username: "alice", Password: "pass1234", Age: intPtr(14)},
			expected: []Violation{
				{Field: "age", Message: "Should not be less than 15"},
			},
		},
		{
			name: "age above maximum",
			user: models.User{Username: "alice", Password: "pass1234", Age: intPtr(66)},
			expected: []Violation{
				{Field: "age", Message: "Should not be greater than 65"},
			},
		},
		{
			name:     "age at boundaries",
			user:     models.User{Username: "alice", Password: "pass1234", Age: intPtr(15)},
			expected: []Violation{},
		},
		{
			name: "multiple violations in declaration order",
			user: models.User{Password: "abc", Age: intPtr(70)},
			expected: []Violation{
				{Field: "userName", Message: "must not be null"},
				{Field: "password", Message: "Minimum length: 4 characters"},
				{Field: "age", Message: "Should not be greater than 65"},
			},
		},
		{
			name:     "name and surname are unconstrained",
			user:     models.User{Username: "alice", Password: "pass1234", Name: strPtr(""), Surname: strPtr("x")},
			expected: []Violation{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := v.ValidateUser(tt.user)
			assert.Equal(t, tt.expected, violations)
		})
	}
}

func TestValidateUser_UpperAgeBoundary(t *testing.T) {
	v := New()

	violations := v.ValidateUser(models.User{Username: "bob", Password: "pass1234", Age: intPtr(65)})
	assert.Empty(t, violations)
}
