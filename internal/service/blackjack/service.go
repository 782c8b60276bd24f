package blackjack

import (
	"casino_platform/internal/config"
	"casino_platform/internal/repository"
	"casino_platform/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg       config.BlackjackConfig
	roundRepo repository.RoundRepository
	userRepo  repository.UserRepository
	txRepo    repository.TransactionRepository
	statsRepo repository.StatsRepository
	txManager trm.Manager
}

// NewBlackjackService Создать движок блэкджека
func NewBlackjackService(
	cfg config.BlackjackConfig,
	roundRepo repository.RoundRepository,
	userRepo repository.UserRepository,
	txRepo repository.TransactionRepository,
	statsRepo repository.StatsRepository,
	txManager trm.Manager,
) service.BlackjackService {
	return &serv{
		cfg:       cfg,
		roundRepo: roundRepo,
		userRepo:  userRepo,
		txRepo:    txRepo,
		statsRepo: statsRepo,
		txManager: txManager,
	}
}
