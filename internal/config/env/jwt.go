package env

import (
	"casino_platform/internal/config"
	"fmt"
	"os"
	"time"
)

const (
	accessTokenKeyEnvName       = "ACCESS_TOKEN"
	accessTokenDurationEnvName  = "ACCESS_TOKEN_DURATION"
	refreshTokenDurationEnvName = "REFRESH_TOKEN_DURATION"
)

type jwtConfig struct {
	accessTokenSecretKey string
	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration
}

func NewJWTConfig() (config.JWTConfig, error) {
	secret := os.Getenv(accessTokenKeyEnvName)
	if len(secret) == 0 {
		return nil, fmt.Errorf("access token secret key not found")
	}

	accessTTL, err := durationFromEnv(accessTokenDurationEnvName)
	if err != nil {
		return nil, err
	}

	refreshTTL, err := durationFromEnv(refreshTokenDurationEnvName)
	if err != nil {
		return nil, err
	}

	return &jwtConfig{
		accessTokenSecretKey: secret,
		accessTokenDuration:  accessTTL,
		refreshTokenDuration: refreshTTL,
	}, nil
}

// durationFromEnv - читает длительность вида "15m" из переменной окружения
func durationFromEnv(name string) (time.Duration, error) {
	raw := os.Getenv(name)
	if len(raw) == 0 {
		return 0, fmt.Errorf("%s not found", name)
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}

	return d, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return []byte(j.accessTokenSecretKey)
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.accessTokenDuration
}

func (j *jwtConfig) RefreshTokenDuration() time.Duration {
	return j.refreshTokenDuration
}
