package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternalConfig_Validate(t *testing.T) {
	newConfig := func(env, access, refresh string) *InternalConfig {
		return &InternalConfig{
			App: App{Env: env},
			JWT: JWT{AccessSecret: access, RefreshSecret: refresh},
		}
	}

	t.Run("development accepts built-in secrets", func(t *testing.T) {
		assert.NoError(t, newConfig("development", defaultAccessSecret, defaultRefreshSecret).Validate())
	})

	t.Run("production accepts configured secrets", func(t *testing.T) {
		assert.NoError(t, newConfig("production", "s3cr3t-access", "s3cr3t-refresh").Validate())
	})

	t.Run("production rejects built-in access secret", func(t *testing.T) {
		err := newConfig("production", defaultAccessSecret, "s3cr3t-refresh").Validate()
		assert.ErrorContains(t, err, "JWT_ACCESS_SECRET")
	})

	t.Run("production rejects empty refresh secret", func(t *testing.T) {
		err := newConfig("production", "s3cr3t-access", "").Validate()
		assert.ErrorContains(t, err, "JWT_REFRESH_SECRET")
		assert.NotContains(t, err.Error(), "JWT_ACCESS_SECRET")
	})
}
