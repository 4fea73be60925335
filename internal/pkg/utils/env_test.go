package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("DOCCARE_TEST_PORT", "9090")
	t.Setenv("DOCCARE_TEST_BAD_PORT", "ninety")
	t.Setenv("DOCCARE_TEST_FLAG", "true")
	t.Setenv("DOCCARE_TEST_EMPTY", "")

	assert.Equal(t, 9090, GetEnvInt("DOCCARE_TEST_PORT", 8080))
	assert.Equal(t, 8080, GetEnvInt("DOCCARE_TEST_BAD_PORT", 8080))
	assert.Equal(t, 8080, GetEnvInt("DOCCARE_TEST_UNSET", 8080))
	assert.True(t, GetEnvBool("DOCCARE_TEST_FLAG", false))
	assert.Equal(t, "", GetEnvString("DOCCARE_TEST_EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetEnvString("DOCCARE_TEST_UNSET", "fallback"))
}
