package blackjack

import (
	"casino_platform/internal/model"
	"casino_platform/internal/repository"
	"context"
	"errors"
)

// State возвращает снимок раунда без мутаций
func (s *serv) State(ctx context.Context, userID int, roundID string) (*model.RoundView, error) {
	balance, err := s.userRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, errors.New("failed to get user balance")
	}

	var view *model.RoundView
	err = s.roundRepo.Update(roundID, func(r *model.Round) error {
		if r.UserID != userID {
			return repository.ErrRoundNotFound
		}
		view = s.buildView(r, balance)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}
