package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenManager_GenerateAndParse(t *testing.T) {
	tm := NewTokenManager(TokenConfig{
		SecretKey: "test-secret",
		Expiry:    time.Hour,
	})

	token, err := tm.Generate(42, "alice", "127.0.0.1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	entity, err := tm.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), entity.UID)
	assert.Equal(t, "alice", entity.Username)
	assert.Equal(t, "127.0.0.1", entity.IP)
}

func TestTokenManager_ParseWithWrongKey(t *testing.T) {
	tm := NewTokenManager(TokenConfig{SecretKey: "key-a"})

	token, err := tm.Generate(1, "bob", "")
	assert.NoError(t, err)

	_, err = ParseTokenWithKey(token, "key-b")
	assert.Error(t, err)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	tm := NewTokenManager(TokenConfig{
		SecretKey: "test-secret",
		Expiry:    -time.Minute, // 已过期
	})

	token, err := tm.Generate(7, "carol", "")
	assert.NoError(t, err)

	_, err = tm.Parse(token)
	assert.Error(t, err)
}
