package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstnote/gstnote_backend/internal/platform/config"
)

func TestLoadConfig_PoolBoundsFromEnv(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("DB_MIN_CONNS", "4")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, int32(25), cfg.DBMaxConns)
	assert.Equal(t, int32(4), cfg.DBMinConns)
}

func TestLoadConfig_PoolBoundsDefaultToZero(t *testing.T) {
	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Zero(t, cfg.DBMaxConns)
	assert.Zero(t, cfg.DBMinConns)
}
