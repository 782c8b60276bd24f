package env

import (
	"casino_platform/internal/config"
	"errors"
	"os"
)

const pgDSNEnvName = "PG_DSN"

type pgConfig struct {
	dsn string
}

// NewPGConfig - строка подключения к Postgres.
// DSN не логируется: в нем учетные данные
func NewPGConfig() (config.PGConfig, error) {
	dsn := os.Getenv(pgDSNEnvName)
	if len(dsn) == 0 {
		return nil, errors.New("pg dsn not found")
	}

	return &pgConfig{
		dsn: dsn,
	}, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}
