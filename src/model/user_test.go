package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	u := &User{}
	require.NoError(t, u.HashPassword("correct horse battery staple"))

	assert.NotEqual(t, "correct horse battery staple", u.Password)
	assert.NoError(t, u.CheckPassword("correct horse battery staple"))
	assert.Error(t, u.CheckPassword("wrong password"))
}
