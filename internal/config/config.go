package config

import (
	"time"

	"casino_platform/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// SymbolWeight - символ слота и его вес при выборе.
// Порядок символов фиксирован: от него зависит воспроизводимость спина
type SymbolWeight struct {
	Symbol string
	Weight int
}

type BlackjackConfig interface {
	Rules() model.TableRules
}

type SlotConfig interface {
	Rows() int
	Cols() int
	Symbols() []SymbolWeight
	PayoutTable() map[string]map[int]int
	HouseEdgePercent() int
	MinBet() int
	MaxBet() int
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
