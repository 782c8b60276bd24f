package env

import (
	"casino_platform/internal/config"
	"casino_platform/internal/model"
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

type blackjackYAML struct {
	Blackjack struct {
		DeckCount        int  `yaml:"deck_count"`
		MinBet           int  `yaml:"min_bet"`
		MaxBet           int  `yaml:"max_bet"`
		DealerHitsSoft17 bool `yaml:"dealer_hits_soft_17"`
		DoubleAfterSplit bool `yaml:"double_after_split"`
		SurrenderAllowed bool `yaml:"surrender_allowed"`
		MaxSplitHands    int  `yaml:"max_split_hands"`
		ResplitAces      bool `yaml:"resplit_aces"`
		HitSplitAces     bool `yaml:"hit_split_aces"`
	} `yaml:"blackjack"`
}

type blackjackConfig struct {
	rules model.TableRules
}

// NewBlackjackConfigFromYAML - читает правила стола из YAML-файла
func NewBlackjackConfigFromYAML(path string) (config.BlackjackConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var parsed blackjackYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}

	bj := parsed.Blackjack
	if bj.DeckCount <= 0 {
		return nil, errors.New("blackjack deck_count must be positive")
	}
	if bj.MinBet <= 0 || bj.MaxBet < bj.MinBet {
		return nil, errors.New("invalid blackjack bet limits")
	}
	if bj.MaxSplitHands < 1 {
		return nil, errors.New("blackjack max_split_hands must be at least 1")
	}

	return &blackjackConfig{
		rules: model.TableRules{
			DeckCount:        bj.DeckCount,
			MinBet:           bj.MinBet,
			MaxBet:           bj.MaxBet,
			DealerHitsSoft17: bj.DealerHitsSoft17,
			DoubleAfterSplit: bj.DoubleAfterSplit,
			SurrenderAllowed: bj.SurrenderAllowed,
			MaxSplitHands:    bj.MaxSplitHands,
			ResplitAces:      bj.ResplitAces,
			HitSplitAces:     bj.HitSplitAces,
		},
	}, nil
}

func (cfg *blackjackConfig) Rules() model.TableRules {
	return cfg.rules
}
