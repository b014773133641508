package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret-key-of-sufficient-length"

func TestIssueAndValidateToken(t *testing.T) {
	svc := NewAuthService(testSecret)

	token, err := svc.IssueToken(42, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewAuthService(testSecret)

	token, err := svc.IssueToken(42, -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewAuthService(testSecret).IssueToken(42, time.Hour)
	require.NoError(t, err)

	_, err = NewAuthService("a-completely-different-signing-secret!!").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := NewAuthService(testSecret).ValidateToken("not.a.token")
	assert.Error(t, err)
}
