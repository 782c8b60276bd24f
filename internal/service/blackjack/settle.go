package blackjack

import (
	"casino_platform/internal/model"
	"casino_platform/internal/repository"
	"casino_platform/internal/service"
	"context"
	"errors"
)

// Settle рассчитывает завершенный раунд: начисляет выплату, пишет одну
// запись в журнал и раскрывает серверный сид. Идемпотентен: повторный
// вызов возвращает мемоизированный итог и не трогает баланс
func (s *serv) Settle(ctx context.Context, userID int, roundID string) (*model.RoundView, error) {
	var (
		view    *model.RoundView
		settled bool
		wagered int
		payout  int
	)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.roundRepo.Update(roundID, func(r *model.Round) error {
			if r.UserID != userID {
				return repository.ErrRoundNotFound
			}

			// Уже рассчитан: только снимок, без мутаций баланса
			if r.Status == model.RoundSettled {
				balance, err := s.userRepo.GetBalance(txCtx, userID)
				if err != nil {
					return errors.New("failed to get user balance")
				}
				view = s.buildView(r, balance)
				return nil
			}

			if r.Status != model.RoundCompleted {
				return service.ErrPlayerActionsPending
			}

			summary := computeSettlement(r)

			balance, err := s.userRepo.GetBalance(txCtx, userID)
			if err != nil {
				return errors.New("failed to get user balance")
			}

			balance += summary.TotalPayout
			if err := s.userRepo.UpdateBalance(txCtx, userID, balance); err != nil {
				return errors.New("failed to update user balance")
			}

			err = s.txRepo.RecordTransaction(txCtx, &model.Transaction{
				UserID:  userID,
				Game:    "blackjack",
				RefID:   r.ID,
				Wagered: summary.TotalWagered,
				Payout:  summary.TotalPayout,
			})
			if err != nil {
				return errors.New("failed to record settlement transaction")
			}

			r.Summary = &summary
			r.Status = model.RoundSettled

			settled = true
			wagered = summary.TotalWagered
			payout = summary.TotalPayout
			view = s.buildView(r, balance)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	// Статистика ведется вне транзакции, как и обороты по спинам
	if settled {
		s.statsRepo.Record(wagered, payout)
	}

	return view, nil
}

// computeSettlement считает итог по таблице исходов.
// Порядок проверок значим: surrender раньше перебора, перебор дилера
// раньше сравнения сумм, натуралы раньше сравнения
func computeSettlement(r *model.Round) model.Settlement {
	dealer := r.Dealer.Eval
	dealerNatural := dealer.IsBlackjack

	summary := model.Settlement{
		Hands:        make([]model.HandOutcome, 0, len(r.Hands)),
		TotalWagered: r.LockedBet,
	}

	for i := range r.Hands {
		h := &r.Hands[i]
		outcome := settleHand(h, dealer, dealerNatural)

		h.Result = outcome.Result
		if outcome.Result == model.ResultPush {
			h.Status = model.HandPush
		}

		summary.Hands = append(summary.Hands, outcome)
		summary.TotalPayout += outcome.Payout
	}

	// Страховка платит 2:1 только против натурала дилера
	if dealerNatural && r.InsuranceBet > 0 {
		summary.InsurancePayout = r.InsuranceBet * 3
		summary.TotalPayout += summary.InsurancePayout
	}

	summary.Net = summary.TotalPayout - r.LockedBet

	return summary
}

func settleHand(h *model.Hand, dealer model.HandEvaluation, dealerNatural bool) model.HandOutcome {
	outcome := model.HandOutcome{Bet: h.Bet}

	natural := h.Eval.IsBlackjack && !h.FromSplit

	switch {
	case h.Status == model.HandSurrender:
		outcome.Result = model.ResultSurrender
		outcome.Payout = h.Bet / 2
	case h.Eval.IsBust && dealer.IsBust:
		outcome.Result = model.ResultPush
		outcome.Payout = h.Bet
	case h.Eval.IsBust:
		outcome.Result = model.ResultLoss
	case dealer.IsBust:
		outcome.Result = model.ResultWin
		outcome.Payout = h.Bet * 2
	case natural && !dealerNatural:
		outcome.Result = model.ResultBlackjack
		outcome.Payout = h.Bet * 5 / 2
	case dealerNatural && !natural:
		outcome.Result = model.ResultLoss
	case h.Eval.BestTotal > dealer.BestTotal:
		outcome.Result = model.ResultWin
		outcome.Payout = h.Bet * 2
	case h.Eval.BestTotal < dealer.BestTotal:
		outcome.Result = model.ResultLoss
	default:
		outcome.Result = model.ResultPush
		outcome.Payout = h.Bet
	}

	return outcome
}
