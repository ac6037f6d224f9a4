package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	strongSecret := "secure-secret-at-least-32-chars-long"

	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name:        "Valid development defaults",
			config:      Config{Env: "development", Port: "8280", JWTSecret: "your-secret-key-change-in-production", DBPassword: "password"},
			expectError: false,
		},
		{
			name:        "Missing port",
			config:      Config{Env: "development", JWTSecret: strongSecret},
			expectError: true,
		},
		{
			name:        "Missing JWT secret",
			config:      Config{Env: "development", Port: "8280"},
			expectError: true,
		},
		{
			name:        "Production with default JWT secret",
			config:      Config{Env: "production", Port: "8280", JWTSecret: "your-secret-key-change-in-production", DBPassword: "strong-pass"},
			expectError: true,
		},
		{
			name:        "Production with short JWT secret",
			config:      Config{Env: "production", Port: "8280", JWTSecret: "short", DBPassword: "strong-pass"},
			expectError: true,
		},
		{
			name:        "Production with default DB password",
			config:      Config{Env: "production", Port: "8280", JWTSecret: strongSecret, DBPassword: "password"},
			expectError: true,
		},
		{
			name:        "Production fully configured",
			config:      Config{Env: "production", Port: "8280", JWTSecret: strongSecret, DBPassword: "strong-pass", DBSSLMode: "require"},
			expectError: false,
		},
		{
			name:        "Prod alias enforces the same rules",
			config:      Config{Env: "prod", Port: "8280", JWTSecret: strongSecret, DBPassword: ""},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "8280", c.Port)
	assert.Equal(t, "foodbridge", c.DBName)
	assert.Equal(t, "localhost:6379", c.RedisURL)
	assert.Equal(t, "development", c.Env)
	assert.False(t, c.TracingEnabled)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer os.Unsetenv("PORT")
	defer os.Unsetenv("DB_NAME")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")
	os.Setenv("PORT", "9090")
	os.Setenv("DB_NAME", "foodbridge_ci")

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, "foodbridge_ci", c.DBName)
}
