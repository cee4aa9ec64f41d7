package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := parse(env.Options{
		Prefix:      Prefix,
		Environment: map[string]string{"CONTACTS_JWT_KEY": "0123456789abcdef"},
	})
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "./data/contacts.db", cfg.DBPath)
	assert.Empty(t, cfg.StaticPath)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, "contactbook", cfg.JWT.Issuer)
	assert.Equal(t, "contactbook-ui", cfg.JWT.Audience)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	assert.True(t, cfg.Seed.Enabled)
	assert.Equal(t, "testuser", cfg.Seed.Username)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := parse(env.Options{
		Prefix: Prefix,
		Environment: map[string]string{
			"CONTACTS_ADDR":              ":9090",
			"CONTACTS_JWT_KEY":           "0123456789abcdef",
			"CONTACTS_JWT_TTL":           "15m",
			"CONTACTS_CORS_ORIGINS":      "http://a.test,http://b.test",
			"CONTACTS_SEED_ENABLED":      "false",
			"CONTACTS_HTTP_IDLE_TIMEOUT": "2m",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 15*time.Minute, cfg.JWT.TTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.False(t, cfg.Seed.Enabled)
	assert.Equal(t, 2*time.Minute, cfg.HTTP.IdleTimeout)
}

func TestLoad_MissingKey(t *testing.T) {
	_, err := parse(env.Options{Prefix: Prefix, Environment: map[string]string{}})
	assert.ErrorContains(t, err, "CONTACTS_JWT_KEY is required")
}

func TestLoad_ShortKey(t *testing.T) {
	_, err := parse(env.Options{Prefix: Prefix, Environment: map[string]string{"CONTACTS_JWT_KEY": "short"}})
	assert.Error(t, err)
}

func TestLoad_BadDuration(t *testing.T) {
	_, err := parse(env.Options{Prefix: Prefix, Environment: map[string]string{
		"CONTACTS_JWT_KEY": "0123456789abcdef",
		"CONTACTS_JWT_TTL": "soon",
	}})
	assert.ErrorContains(t, err, "parse env")
}
