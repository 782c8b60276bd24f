package slot

import (
	"casino_platform/internal/config"
	"casino_platform/internal/repository"
	"casino_platform/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg       config.SlotConfig
	userRepo  repository.UserRepository
	txRepo    repository.TransactionRepository
	statsRepo repository.StatsRepository
	txManager trm.Manager
}

// NewSlotService Создать слот с проверяемо честной генерацией поля
func NewSlotService(
	cfg config.SlotConfig,
	userRepo repository.UserRepository,
	txRepo repository.TransactionRepository,
	statsRepo repository.StatsRepository,
	txManager trm.Manager,
) service.SlotService {
	return &serv{
		cfg:       cfg,
		userRepo:  userRepo,
		txRepo:    txRepo,
		statsRepo: statsRepo,
		txManager: txManager,
	}
}
