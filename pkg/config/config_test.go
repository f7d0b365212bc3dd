package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/shuttle-planner/pkg/trips"
)

func TestLoadDefaults(t *testing.T) {
	config, err := LoadFromEnvironment(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, 14, config.Capacity)
	assert.Equal(t, 32, config.MemoSize)
	assert.Equal(t, 1000, config.MaxSessions)
	assert.Equal(t, 30*time.Minute, config.SessionTTL)
	assert.Equal(t, trips.MonthOrderAlphabetical, config.MonthOrder)
	assert.Equal(t, 10*1024*1024, config.MaxUploadBytes)
}

func TestLoadOverrides(t *testing.T) {
	config, err := LoadFromEnvironment(map[string]string{
		"SHUTTLE_CAPACITY":      "20",
		"SHUTTLE_MEMO_SIZE":     "4",
		"SHUTTLE_SESSION_TTL":   "PT2H",
		"SHUTTLE_MONTH_ORDER":   "chronological",
		"SHUTTLE_MAX_SESSIONS":  "5",
		"SHUTTLE_UNRELATED_VAR": "x",
	})
	require.NoError(t, err)

	assert.Equal(t, 20, config.Capacity)
	assert.Equal(t, 4, config.MemoSize)
	assert.Equal(t, 5, config.MaxSessions)
	assert.Equal(t, 2*time.Hour, config.SessionTTL)
	assert.Equal(t, trips.MonthOrderChronological, config.MonthOrder)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "non numeric capacity", env: map[string]string{"SHUTTLE_CAPACITY": "lots"}},
		{name: "zero memo", env: map[string]string{"SHUTTLE_MEMO_SIZE": "0"}},
		{name: "negative sessions", env: map[string]string{"SHUTTLE_MAX_SESSIONS": "-1"}},
		{name: "bad ttl", env: map[string]string{"SHUTTLE_SESSION_TTL": "30 minutes"}},
		{name: "bad month order", env: map[string]string{"SHUTTLE_MONTH_ORDER": "reverse"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := LoadFromEnvironment(test.env)
			assert.Error(t, err)
		})
	}
}
