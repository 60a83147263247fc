package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeKVs(t *testing.T) {
	out := sanitizeKVs([]interface{}{
		"lesson", "water-baptism",
		"email", "learner@example.com",
		"refresh_token", "abc",
		"user_id", "3c0f6f0e-4b7a-4d5c-9d53-1f1f0b2c6a11",
		"dangling",
	})

	assert.Equal(t, "water-baptism", out[1])
	assert.Equal(t, "[REDACTED]", out[3])
	assert.Equal(t, "[REDACTED]", out[5])
	assert.True(t, strings.HasPrefix(out[7].(string), "hash:"))
	assert.Len(t, out[7].(string), len("hash:")+12)
	assert.Equal(t, "dangling", out[8])
}

func TestSanitizeValueRedactsBareJWT(t *testing.T) {
	jwtLike := "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxMjM0NTY3ODkwIn0.sig"
	assert.Equal(t, "[REDACTED]", sanitizeValue("note", jwtLike))
	assert.Equal(t, "plain", sanitizeValue("note", "plain"))
}

func TestNopLogger(t *testing.T) {
	l := Nop().With("component", "test")
	l.Info("ignored", "user_id", "u1")
	l.Sync()
}
