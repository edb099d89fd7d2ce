package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"EVAL_WORKERS", "WEIGHTS", "WEIGHTS_FILE", "REFERENCE_STRATEGY", "STATS_DIR", "RESULTS_PG_ENABLE", "RESULTS_REDIS_TTL_S"} {
		t.Setenv(k, "")
	}
	c := Load()
	require.Equal(t, 1, c.Workers)
	require.Equal(t, "sendAll", c.ReferenceStrategy)
	require.Equal(t, ".", c.StatsDir)
	require.False(t, c.PGEnable)
	require.Equal(t, 7*24*time.Hour, c.RedisTTL)

	w, err := c.WeightTable()
	require.NoError(t, err)
	require.Equal(t, 11.0, w.Weight(0))
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("EVAL_WORKERS", "8")
	t.Setenv("WEIGHTS", "3,2,1")
	t.Setenv("WEIGHTS_FILE", "")
	t.Setenv("RESULTS_PG_ENABLE", "TRUE")
	t.Setenv("RESULTS_KEEP_N", "bogus")

	c := Load()
	require.Equal(t, 8, c.Workers)
	require.True(t, c.PGEnable)
	require.Equal(t, 10, c.KeepRuns)

	w, err := c.WeightTable()
	require.NoError(t, err)
	require.Equal(t, 3, w.Len())
	require.Equal(t, 3.0, w.Weight(0))
}
