package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `{
		"odoo_url": "https://hr.example.com",
		"odoo_db": "prod",
		"odoo_username": "svc",
		"odoo_password": "secret",
		"template_dir": "templates",
		"port": 9090
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://hr.example.com", cfg.OdooURL)
	assert.Equal(t, "prod", cfg.OdooDB)
	assert.Equal(t, "templates", cfg.TemplateDir)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("")
	require.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	_, err = Load(writeConfigFile(t, `{not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("ODOO_URL", "https://hr.example.com")
	t.Setenv("ODOO_DB", "prod")
	t.Setenv("ODOO_USERNAME", "svc")
	t.Setenv("ODOO_PASSWORD", "secret")
	t.Setenv("TEMPLATE_DIR", "/srv/templates")
	t.Setenv("DATABASE_URL", "postgres://localhost/letters")
	t.Setenv("PORT", "9090")

	cfg := FromEnv()
	assert.Equal(t, "https://hr.example.com", cfg.OdooURL)
	assert.Equal(t, "prod", cfg.OdooDB)
	assert.Equal(t, "svc", cfg.OdooUsername)
	assert.Equal(t, "secret", cfg.OdooPassword)
	assert.Equal(t, "/srv/templates", cfg.TemplateDir)
	assert.Equal(t, "postgres://localhost/letters", cfg.DatabaseURL)
	assert.Equal(t, 9090, cfg.Port)
}

func TestFromEnv_BadPortIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	assert.Equal(t, 0, FromEnv().Port)
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{OdooURL: "https://hr.example.com", Port: 9090}
	merged := cfg.MergeWithDefaults(Config{
		OdooURL:     "https://default.example.com",
		OdooDB:      "prod",
		TemplateDir: "templates",
		Port:        8080,
	})
	assert.Equal(t, "https://hr.example.com", merged.OdooURL)
	assert.Equal(t, "prod", merged.OdooDB)
	assert.Equal(t, "templates", merged.TemplateDir)
	assert.Equal(t, 9090, merged.Port)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	valid := Config{
		OdooURL:      "https://hr.example.com",
		OdooDB:       "prod",
		OdooUsername: "svc",
		OdooPassword: "secret",
		TemplateDir:  dir,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing url", func(c *Config) { c.OdooURL = "" }, "'odoo_url' is required"},
		{"missing db", func(c *Config) { c.OdooDB = "" }, "'odoo_db' is required"},
		{"missing credentials", func(c *Config) { c.OdooPassword = "" }, "credentials are required"},
		{"missing template dir", func(c *Config) { c.TemplateDir = filepath.Join(dir, "nope") }, "template directory not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Nil(t, cfg, "no secret disables authentication")

	t.Setenv("JWT_SECRET", "test-secret")
	cfg, err = NewJWTConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "test-secret", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours)

	t.Setenv("JWT_EXPIRATION_HOURS", "72")
	cfg, err = NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, 72, cfg.ExpirationHours)

	t.Setenv("JWT_EXPIRATION_HOURS", "0")
	_, err = NewJWTConfig()
	require.Error(t, err)

	t.Setenv("JWT_EXPIRATION_HOURS", "soon")
	_, err = NewJWTConfig()
	require.Error(t, err)
}
