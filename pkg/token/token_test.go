package token

import (
	"testing"
	"time"

	"lucky_wheel/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := GenerateAccessToken("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", model.RoleOwner, secret, time.Minute)
	require.NoError(t, err)

	claims, err := VerifyToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", claims.Subject)
	assert.Equal(t, model.RoleOwner, claims.Role)
}

func TestVerifyTokenRejects(t *testing.T) {
	tok, err := GenerateAccessToken("p", model.RolePlayer, secret, time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(tok, []byte("other"))
	assert.Error(t, err)

	expired, err := GenerateAccessToken("p", model.RolePlayer, secret, -time.Minute)
	require.NoError(t, err)
	_, err = VerifyToken(expired, secret)
	assert.Error(t, err)

	_, err = VerifyToken("garbage", secret)
	assert.Error(t, err)
}

func TestSessionRefresh(t *testing.T) {
	tok, fp, err := NewSessionRefresh("session-a")
	require.NoError(t, err)
	other, _, err := NewSessionRefresh("session-a")
	require.NoError(t, err)
	assert.NotEqual(t, tok, other)
	assert.Len(t, fp, 64)

	assert.True(t, VerifySessionRefresh("session-a", tok, fp))
	assert.False(t, VerifySessionRefresh("session-a", other, fp))
	assert.False(t, VerifySessionRefresh("session-b", tok, fp))
}
