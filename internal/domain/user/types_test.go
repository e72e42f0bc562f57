//go:build unit

package user_test

import (
	"testing"

	"facility-booking/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  user.Role
		errIs error
	}{
		{name: "user role", input: "user", want: user.RoleUser},
		{name: "admin role", input: "admin", want: user.RoleAdmin},
		{name: "unknown role", input: "operator", errIs: user.ErrInvalidRole},
		{name: "empty role", input: "", errIs: user.ErrInvalidRole},
		{name: "case sensitive", input: "Admin", errIs: user.ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := user.NewRole(tt.input)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoleCanCancelAny(t *testing.T) {
	assert.True(t, user.RoleAdmin.CanCancelAny())
	assert.False(t, user.RoleUser.CanCancelAny())
}
