package blackjack

import (
	"casino_platform/internal/model"
	"casino_platform/internal/repository"
	"casino_platform/internal/service"
	"context"
	"errors"
)

// Action применяет действие игрока к активной руке.
// Легальность проверяется до любой мутации: доплаты double/split/insurance
// списываются до изменения руки, поэтому откат состояния не нужен
func (s *serv) Action(ctx context.Context, userID int, roundID string, action string) (*model.RoundView, error) {
	var view *model.RoundView

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.roundRepo.Update(roundID, func(r *model.Round) error {
			if r.UserID != userID {
				return repository.ErrRoundNotFound
			}
			if r.Status != model.RoundPlayerTurn {
				return service.ErrActionNotAvailable
			}

			balance, err := s.userRepo.GetBalance(txCtx, userID)
			if err != nil {
				return errors.New("failed to get user balance")
			}

			if !contains(availableActions(r, balance), action) {
				return service.ErrActionNotAvailable
			}

			h := &r.Hands[r.ActiveHandIndex]

			switch action {
			case model.ActionHit:
				err = applyHit(r, h)
			case model.ActionStand:
				err = applyStand(r, h)
			case model.ActionDouble:
				balance, err = s.applyDouble(txCtx, r, h, balance)
			case model.ActionSplit:
				balance, err = s.applySplit(txCtx, r, balance)
			case model.ActionSurrender:
				err = applySurrender(r, h)
			case model.ActionInsurance:
				balance, err = s.applyInsurance(txCtx, r, h, balance)
			default:
				err = service.ErrActionNotAvailable
			}
			if err != nil {
				return err
			}

			view = s.buildView(r, balance)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// applyHit добирает карту. Перебор закрывает руку, добор до 21
// принудительно переводит в stand
func applyHit(r *model.Round, h *model.Hand) error {
	card, err := draw(&r.Shoe)
	if err != nil {
		return err
	}

	h.Cards = append(h.Cards, card)
	h.Eval = evaluate(h.Cards)
	h.History = append(h.History, "hit")
	r.InsuranceOpen = false

	if h.Eval.IsBust {
		h.Status = model.HandBust
	} else if h.Eval.BestTotal >= 21 {
		// 21 добором - не натурал, просто вынужденный stand
		h.Status = model.HandStood
	} else {
		return nil
	}

	return advance(r)
}

func applyStand(r *model.Round, h *model.Hand) error {
	h.Status = model.HandStood
	h.History = append(h.History, "stand")
	r.InsuranceOpen = false
	return advance(r)
}

// applyDouble списывает доплату в размере исходной ставки, удваивает
// ставку руки и выдает ровно одну принудительную карту
func (s *serv) applyDouble(ctx context.Context, r *model.Round, h *model.Hand, balance int) (int, error) {
	addition := h.Bet

	balance -= addition
	if err := s.userRepo.UpdateBalance(ctx, r.UserID, balance); err != nil {
		return 0, errors.New("failed to update user balance")
	}

	h.Bet += addition
	r.LockedBet += addition
	h.Doubled = true
	h.History = append(h.History, "double")
	r.InsuranceOpen = false

	card, err := draw(&r.Shoe)
	if err != nil {
		return 0, err
	}
	h.Cards = append(h.Cards, card)
	h.Eval = evaluate(h.Cards)

	if h.Eval.IsBust {
		h.Status = model.HandBust
	} else {
		h.Status = model.HandStood
	}

	return balance, advance(r)
}

// applySplit заменяет активную руку двумя производными руками по одной
// карте, каждая сразу получает принудительную карту. Сплит тузов без
// правила hit_split_aces принудительно закрывает обе руки
func (s *serv) applySplit(ctx context.Context, r *model.Round, balance int) (int, error) {
	idx := r.ActiveHandIndex
	h := r.Hands[idx]

	balance -= h.Bet
	if err := s.userRepo.UpdateBalance(ctx, r.UserID, balance); err != nil {
		return 0, errors.New("failed to update user balance")
	}
	r.LockedBet += h.Bet
	r.InsuranceOpen = false

	splitAces := h.Cards[0].Rank == "A"
	derived := make([]model.Hand, 2)
	for i := 0; i < 2; i++ {
		derived[i] = model.Hand{
			Cards:     []model.Card{h.Cards[i]},
			Bet:       h.Bet,
			Status:    model.HandPlaying,
			FromSplit: true,
			SplitRank: h.Cards[0].Rank,
			History:   []string{"split"},
		}

		card, err := draw(&r.Shoe)
		if err != nil {
			return 0, err
		}
		derived[i].Cards = append(derived[i].Cards, card)
		derived[i].Eval = evaluate(derived[i].Cards)

		if splitAces && !r.Rules.HitSplitAces {
			derived[i].Status = model.HandStood
		} else if derived[i].Eval.BestTotal >= 21 {
			derived[i].Status = model.HandStood
		}
	}

	// Замена руки на две производные по месту, без хирургии срезов
	hands := make([]model.Hand, 0, len(r.Hands)+1)
	hands = append(hands, r.Hands[:idx]...)
	hands = append(hands, derived...)
	hands = append(hands, r.Hands[idx+1:]...)
	r.Hands = hands

	// Активной остается первая производная рука, если она играет
	return balance, advance(r)
}

func applySurrender(r *model.Round, h *model.Hand) error {
	h.Status = model.HandSurrender
	h.Result = model.ResultSurrender
	h.History = append(h.History, "surrender")
	r.Surrendered = true
	r.InsuranceOpen = false
	return advance(r)
}

// applyInsurance списывает страховку в половину исходной ставки и
// закрывает предложение. Ход руки не продвигается
func (s *serv) applyInsurance(ctx context.Context, r *model.Round, h *model.Hand, balance int) (int, error) {
	cost := h.Bet / 2

	balance -= cost
	if err := s.userRepo.UpdateBalance(ctx, r.UserID, balance); err != nil {
		return 0, errors.New("failed to update user balance")
	}

	r.InsuranceBet = cost
	r.LockedBet += cost
	r.InsuranceOpen = false
	h.History = append(h.History, "insurance")

	return balance, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
