package payment

import (
	"casino_platform/internal/repository"
	"casino_platform/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	userRepo  repository.UserRepository
	txRepo    repository.TransactionRepository
	txManager trm.Manager
}

func NewPaymentService(
	userRepo repository.UserRepository,
	txRepo repository.TransactionRepository,
	txManager trm.Manager,
) service.PaymentService {
	return &serv{
		userRepo:  userRepo,
		txRepo:    txRepo,
		txManager: txManager,
	}
}
