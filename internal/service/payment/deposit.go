package payment

import (
	"casino_platform/internal/model"
	"casino_platform/internal/service"
	"context"
	"errors"

	"github.com/google/uuid"
)

// Deposit пополняет баланс пользователя и пишет запись в журнал
func (s *serv) Deposit(ctx context.Context, userID int, amount int) (int, error) {
	if amount <= 0 {
		return 0, service.ErrInvalidBet
	}

	var balance int
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.userRepo.GetBalance(txCtx, userID)
		if err != nil {
			return errors.New("failed to get user balance")
		}

		balance = current + amount
		if err := s.userRepo.UpdateBalance(txCtx, userID, balance); err != nil {
			return errors.New("failed to update user balance")
		}

		err = s.txRepo.RecordTransaction(txCtx, &model.Transaction{
			UserID: userID,
			Game:   "deposit",
			RefID:  uuid.NewString(),
			Payout: amount,
		})
		if err != nil {
			return errors.New("failed to record deposit transaction")
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return balance, nil
}
