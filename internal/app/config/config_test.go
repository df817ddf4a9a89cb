package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_overrideFromEnv(t *testing.T) {
	t.Run("Environment Wins Over Defaults", func(t *testing.T) {
		t.Setenv("SERVER_ADDRESS", "0.0.0.0:9090")
		t.Setenv("DATABASE_DSN", "postgres://keytoheart@db:5432/keytoheart")
		t.Setenv("SMSRU_API_KEY", "api-key")
		t.Setenv("VERIFICATION_MAX_ATTEMPTS", "7")
		t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")

		c := AppConfig{ServerAddr: "localhost:8080", VerificationMaxAttempts: 5, LogLevel: "info"}
		require.NoError(t, c.overrideFromEnv())

		assert.Equal(t, "0.0.0.0:9090", c.ServerAddr)
		assert.Equal(t, "postgres://keytoheart@db:5432/keytoheart", c.DatabaseDSN)
		assert.Equal(t, "api-key", c.SMSRuAPIKey)
		assert.Equal(t, 7, c.VerificationMaxAttempts)
		assert.Equal(t, "$2a$10$abcdefghijklmnopqrstuv", c.AdminPasswordHash)
		assert.Equal(t, "info", c.LogLevel)
	})

	t.Run("Malformed Number", func(t *testing.T) {
		t.Setenv("CONTEXT_TIMEOUT_SEC", "five")

		c := AppConfig{}
		assert.Error(t, c.overrideFromEnv())
	})
}

func TestAppConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  AppConfig
		wantErr bool
	}{
		{name: "Secret Set", config: AppConfig{TokenSecretKey: "secret"}},
		{name: "Secret Missing", config: AppConfig{}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
