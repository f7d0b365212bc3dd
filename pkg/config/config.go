package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	iso8601 "github.com/senseyeio/duration"
	"github.com/travigo/shuttle-planner/pkg/planner"
	"github.com/travigo/shuttle-planner/pkg/trips"
	"github.com/travigo/shuttle-planner/pkg/util"
)

const (
	defaultMemoSize       = 32
	defaultMaxSessions    = 1000
	defaultSessionTTL     = "PT30M"
	defaultMaxUploadBytes = 10 * 1024 * 1024
)

type Config struct {
	// Capacity is checked by planner.NewPlanner so that it reports an InvalidCapacityError
	Capacity int

	MemoSize       int              `validate:"gt=0"`
	MaxSessions    int              `validate:"gt=0"`
	SessionTTL     time.Duration    `validate:"gt=0"`
	MonthOrder     trips.MonthOrder `validate:"oneof=alphabetical chronological"`
	MaxUploadBytes int              `validate:"gt=0"`
}

func Load() (*Config, error) {
	return LoadFromEnvironment(util.GetEnvironmentVariables())
}

func LoadFromEnvironment(env map[string]string) (*Config, error) {
	var err error
	config := &Config{}

	if config.Capacity, err = intVariable(env, "SHUTTLE_CAPACITY", planner.DefaultCapacity); err != nil {
		return nil, err
	}
	if config.MemoSize, err = intVariable(env, "SHUTTLE_MEMO_SIZE", defaultMemoSize); err != nil {
		return nil, err
	}
	if config.MaxSessions, err = intVariable(env, "SHUTTLE_MAX_SESSIONS", defaultMaxSessions); err != nil {
		return nil, err
	}
	if config.MaxUploadBytes, err = intVariable(env, "SHUTTLE_MAX_UPLOAD_BYTES", defaultMaxUploadBytes); err != nil {
		return nil, err
	}

	ttl := util.EnvironmentOrDefault(env, "SHUTTLE_SESSION_TTL", defaultSessionTTL)
	ttlDuration, err := iso8601.ParseISO8601(ttl)
	if err != nil {
		return nil, fmt.Errorf("SHUTTLE_SESSION_TTL must be an ISO 8601 duration: %w", err)
	}
	now := time.Now()
	config.SessionTTL = ttlDuration.Shift(now).Sub(now)

	config.MonthOrder, err = trips.ParseMonthOrder(env["SHUTTLE_MONTH_ORDER"])
	if err != nil {
		return nil, err
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, err
	}

	return config, nil
}

func intVariable(env map[string]string, name string, fallback int) (int, error) {
	value := env[name]
	if value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", name, err)
	}

	return parsed, nil
}
