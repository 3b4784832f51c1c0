package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"upload": map[string]any{
			"publicBaseUrl": "",
			"minio": map[string]any{
				"accessKey": "",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"auth": map[string]any{
			"tokenTTL": "24h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "UPLOAD_PUBLICBASEURL", want: "upload.publicBaseUrl"},
		{envKey: "UPLOAD_MINIO_ACCESSKEY", want: "upload.minio.accessKey"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlContent := []byte(`
env:
  serviceName: comerciaya
storage:
  driver: memory
secretKey:
  access: from-file
auth:
  tokenTTL: 24h
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yamlContent, 0o600))
	t.Chdir(dir)
	t.Setenv("SECRETKEY_ACCESS", "from-env")
	t.Setenv("AUTH_TOKENTTL", "2h")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "comerciaya", cfg.Env.ServiceName)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL())
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	t.Run("memory driver needs no postgres", func(t *testing.T) {
		cfg := &Config{Storage: StorageConfig{Driver: "MEMORY"}}

		require.NoError(t, cfg.applyDefaults())
		assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
		assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	})

	t.Run("postgres driver requires postgres section", func(t *testing.T) {
		cfg := &Config{}

		assert.Error(t, cfg.applyDefaults())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := &Config{Storage: StorageConfig{Driver: "sqlite"}}

		assert.Error(t, cfg.applyDefaults())
	})
}

func TestDerivedDefaults(t *testing.T) {
	cfg := &Config{}

	assert.Equal(t, defaultTokenTTL, cfg.TokenTTL())
	assert.Equal(t, defaultBcryptCost, cfg.BcryptCost())
	assert.Equal(t, int64(defaultMaxUploadBytes), cfg.MaxUploadBytes())
	assert.Equal(t, defaultPasswordMinLength, cfg.PasswordPolicy().MinLength)

	cfg.PasswordStrength = &PasswordStrengthConfig{MinLength: 10, RequireNumbers: true}
	policy := cfg.PasswordPolicy()
	assert.Equal(t, 10, policy.MinLength)
	assert.True(t, policy.RequireNumbers)
}
