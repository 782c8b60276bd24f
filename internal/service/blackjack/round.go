package blackjack

import (
	"casino_platform/internal/model"
)

// availableActions вычисляет набор легальных действий для активной руки.
// Учитывает правила стола и текущий баланс игрока: double, split и
// insurance требуют денег на доплату
func availableActions(r *model.Round, balance int) []string {
	if r.Status != model.RoundPlayerTurn {
		return nil
	}
	if r.ActiveHandIndex < 0 || r.ActiveHandIndex >= len(r.Hands) {
		return nil
	}

	h := &r.Hands[r.ActiveHandIndex]
	if h.Status != model.HandPlaying {
		return nil
	}

	actions := []string{model.ActionHit, model.ActionStand}

	if canDouble(r, h, balance) {
		actions = append(actions, model.ActionDouble)
	}
	if canSplit(r, h, balance) {
		actions = append(actions, model.ActionSplit)
	}
	if r.Rules.SurrenderAllowed && len(h.Cards) == 2 && !h.Acted() {
		actions = append(actions, model.ActionSurrender)
	}
	if r.InsuranceOpen && r.InsuranceBet == 0 && len(h.Cards) == 2 && !h.Acted() && balance >= h.Bet/2 {
		actions = append(actions, model.ActionInsurance)
	}

	return actions
}

func canDouble(r *model.Round, h *model.Hand, balance int) bool {
	if len(h.Cards) != 2 || h.Doubled {
		return false
	}
	if h.FromSplit && !r.Rules.DoubleAfterSplit {
		return false
	}
	return balance >= h.Bet
}

func canSplit(r *model.Round, h *model.Hand, balance int) bool {
	if len(h.Cards) != 2 {
		return false
	}
	if model.RankValue(h.Cards[0].Rank) != model.RankValue(h.Cards[1].Rank) {
		return false
	}
	if len(r.Hands) >= r.Rules.MaxSplitHands {
		return false
	}
	// Повторный сплит тузов разрешен только явным правилом стола
	if h.Cards[0].Rank == "A" && h.FromSplit && h.SplitRank == "A" && !r.Rules.ResplitAces {
		return false
	}
	return balance >= h.Bet
}

// advance переключает активную руку на следующую играющую.
// Если играющих рук не осталось, ход переходит дилеру
func advance(r *model.Round) error {
	if r.ActiveHandIndex < len(r.Hands) && r.Hands[r.ActiveHandIndex].Status == model.HandPlaying {
		return nil
	}

	for i := r.ActiveHandIndex + 1; i < len(r.Hands); i++ {
		if r.Hands[i].Status == model.HandPlaying {
			r.ActiveHandIndex = i
			return nil
		}
	}

	r.Status = model.RoundDealerTurn
	return playDealer(r)
}

// playDealer исполняет политику дилера: добор до жесткого 17,
// мягкий 17 добирается только при dealer_hits_soft_17.
// Закрытая карта раскрывается, раунд переходит в completed
func playDealer(r *model.Round) error {
	r.Dealer.Revealed = true

	for {
		eval := r.Dealer.Eval
		if eval.IsBust {
			break
		}
		if eval.BestTotal > 17 {
			break
		}
		if eval.BestTotal == 17 && !(eval.IsSoft && r.Rules.DealerHitsSoft17) {
			break
		}

		card, err := draw(&r.Shoe)
		if err != nil {
			return err
		}
		r.Dealer.Cards = append(r.Dealer.Cards, card)
		r.Dealer.Eval = evaluate(r.Dealer.Cards)
	}

	r.Status = model.RoundCompleted
	return nil
}

// buildView собирает снимок раунда для клиента
func (s *serv) buildView(r *model.Round, balance int) *model.RoundView {
	return &model.RoundView{
		Round:            r,
		AvailableActions: availableActions(r, balance),
		Balance:          balance,
	}
}
