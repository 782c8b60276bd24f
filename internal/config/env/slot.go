package env

import (
	"casino_platform/internal/config"
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

type slotSymbolYAML struct {
	Symbol string `yaml:"symbol"`
	Weight int    `yaml:"weight"`
}

type slotYAML struct {
	Slot struct {
		Rows             int                    `yaml:"rows"`
		Cols             int                    `yaml:"cols"`
		MinBet           int                    `yaml:"min_bet"`
		MaxBet           int                    `yaml:"max_bet"`
		HouseEdgePercent int                    `yaml:"house_edge_percent"`
		Symbols          []slotSymbolYAML       `yaml:"symbols"`
		Payouts          map[string]map[int]int `yaml:"payouts"`
	} `yaml:"slot"`
}

type slotConfig struct {
	rows             int
	cols             int
	minBet           int
	maxBet           int
	houseEdgePercent int
	symbols          []config.SymbolWeight
	payouts          map[string]map[int]int
}

// NewSlotConfigFromYAML - читает таблицы символов, весов и выплат из YAML-файла.
// Символы хранятся упорядоченным списком: порядок участвует в
// детерминированном выборе по кумулятивным весам
func NewSlotConfigFromYAML(path string) (config.SlotConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var parsed slotYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}

	sl := parsed.Slot
	if sl.Rows <= 0 || sl.Cols <= 0 {
		return nil, errors.New("slot grid dimensions must be positive")
	}
	if sl.MinBet <= 0 || sl.MaxBet < sl.MinBet {
		return nil, errors.New("invalid slot bet limits")
	}
	if sl.HouseEdgePercent < 0 || sl.HouseEdgePercent >= 100 {
		return nil, errors.New("slot house_edge_percent out of range")
	}
	if len(sl.Symbols) == 0 {
		return nil, errors.New("slot symbol table is empty")
	}

	symbols := make([]config.SymbolWeight, 0, len(sl.Symbols))
	for _, s := range sl.Symbols {
		if s.Weight <= 0 {
			return nil, errors.New("slot symbol weight must be positive: " + s.Symbol)
		}
		symbols = append(symbols, config.SymbolWeight{Symbol: s.Symbol, Weight: s.Weight})
	}

	return &slotConfig{
		rows:             sl.Rows,
		cols:             sl.Cols,
		minBet:           sl.MinBet,
		maxBet:           sl.MaxBet,
		houseEdgePercent: sl.HouseEdgePercent,
		symbols:          symbols,
		payouts:          sl.Payouts,
	}, nil
}

func (cfg *slotConfig) Rows() int {
	return cfg.rows
}

func (cfg *slotConfig) Cols() int {
	return cfg.cols
}

func (cfg *slotConfig) Symbols() []config.SymbolWeight {
	return cfg.symbols
}

func (cfg *slotConfig) PayoutTable() map[string]map[int]int {
	return cfg.payouts
}

func (cfg *slotConfig) HouseEdgePercent() int {
	return cfg.houseEdgePercent
}

func (cfg *slotConfig) MinBet() int {
	return cfg.minBet
}

func (cfg *slotConfig) MaxBet() int {
	return cfg.maxBet
}
