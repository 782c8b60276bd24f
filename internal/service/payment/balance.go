package payment

import (
	"casino_platform/internal/model"
	"context"
)

// Balance - текущий баланс пользователя
func (s *serv) Balance(ctx context.Context, userID int) (int, error) {
	return s.userRepo.GetBalance(ctx, userID)
}

// History - последние записи журнала операций пользователя
func (s *serv) History(ctx context.Context, userID int, limit int) ([]model.Transaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.txRepo.ListByUser(ctx, userID, limit)
}
