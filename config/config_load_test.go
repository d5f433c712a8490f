package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Loads the checked-in config.yaml and asserts the fields that feed DSN
// construction survive the round trip through koanf and mapstructure. The
// go-lib DBConn struct only matches its own yaml keys, so a drifted key in
// config.yaml silently decodes to a zero value.
func TestLoadWithEnv_PostgresSection(t *testing.T) {
	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)
	require.NotNil(t, cfg.Postgres)

	assert.Equal(t, "taskhive", cfg.Postgres.Database)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)
	assert.Equal(t, "localhost", cfg.Postgres.Master.Host)
	assert.Equal(t, "5432", cfg.Postgres.Master.Port)
	assert.Equal(t, "taskhive", cfg.Postgres.Master.UserName)
}

func TestLoadWithEnv_HTTPAndAuthSections(t *testing.T) {
	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	require.NotNil(t, cfg.Migration)
	assert.True(t, cfg.Migration.Enabled)
}
