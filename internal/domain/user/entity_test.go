package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserDefaults(t *testing.T) {
	u, err := NewUser("Admin", "admin@csnutri.com.br", "senha123", "")
	require.NoError(t, err)

	assert.Equal(t, RoleCashier, u.Role)
	assert.Equal(t, StatusActive, u.Status)
	assert.NotEqual(t, "senha123", u.Password)
}

func TestCheckPassword(t *testing.T) {
	u, err := NewUser("Admin", "admin@csnutri.com.br", "senha123", RoleAdmin)
	require.NoError(t, err)

	assert.True(t, u.CheckPassword("senha123"))
	assert.False(t, u.CheckPassword("outra"))
	assert.True(t, u.IsAdmin())
}

func TestNewUserValidation(t *testing.T) {
	_, err := NewUser("", "a@b.com", "x", RoleAdmin)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewUser("Nome", "", "x", RoleAdmin)
	assert.ErrorIs(t, err, ErrEmptyEmail)

	_, err = NewUser("Nome", "a@b.com", "", RoleAdmin)
	assert.ErrorIs(t, err, ErrEmptyPassword)
}
