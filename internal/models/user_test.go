package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPassword(t *testing.T) {
	u := &User{Email: "demo@wallet.com"}
	require.NoError(t, u.SetPassword("demo123"))

	assert.NotEmpty(t, u.HashedPassword)
	assert.NotContains(t, u.HashedPassword, "demo123")

	assert.True(t, u.CheckPassword("demo123"))
	assert.False(t, u.CheckPassword("wrong"))
	assert.False(t, u.CheckPassword(""))
}
