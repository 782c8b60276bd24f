package converter

import (
	dto "casino_platform/internal/api/dto/blackjack"
	"casino_platform/internal/model"
)

func ToStartRound(req dto.StartRequest) model.StartRound {
	return model.StartRound{
		Bet:        req.Bet,
		ClientSeed: req.ClientSeed,
	}
}

// ToRoundResponse собирает снимок раунда для клиента.
// До раскрытия показывается только открытая карта дилера и ее оценка;
// серверный сид попадает в ответ только после расчета
func ToRoundResponse(view model.RoundView) dto.RoundResponse {
	r := view.Round

	resp := dto.RoundResponse{
		RoundID:          r.ID,
		Status:           string(r.Status),
		Dealer:           toDealer(r.Dealer),
		Player:           toPlayer(r),
		AvailableActions: view.AvailableActions,
		Balance:          view.Balance,
		LockedBet:        r.LockedBet,
		ProvablyFair: dto.ProvablyFair{
			ServerSeedHash: r.Fair.ServerSeedHash,
			PublicHash:     r.Fair.PublicHash,
			ClientSeed:     r.Fair.ClientSeed,
			ShoeHash:       r.Fair.ShoeHash,
		},
	}

	if r.Status == model.RoundSettled {
		resp.ProvablyFair.ServerSeed = r.Fair.ServerSeed
	}

	if r.Summary != nil {
		resp.Summary = toSummary(r.Summary)
	}

	return resp
}

func toDealer(d model.Dealer) dto.Dealer {
	if !d.Revealed && len(d.Cards) > 0 {
		upcard := d.Cards[0]
		return dto.Dealer{
			Cards: []dto.Card{{Rank: upcard.Rank, Suit: upcard.Suit}},
			Eval: dto.HandEvaluation{
				Totals:    []int{model.RankValue(upcard.Rank)},
				BestTotal: model.RankValue(upcard.Rank),
			},
			RevealHoleCard: false,
		}
	}

	return dto.Dealer{
		Cards:          toCards(d.Cards),
		Eval:           toEval(d.Eval),
		RevealHoleCard: d.Revealed,
	}
}

func toPlayer(r *model.Round) dto.Player {
	hands := make([]dto.Hand, len(r.Hands))
	for i, h := range r.Hands {
		hands[i] = dto.Hand{
			Cards:     toCards(h.Cards),
			Bet:       h.Bet,
			Eval:      toEval(h.Eval),
			Status:    string(h.Status),
			Result:    string(h.Result),
			Doubled:   h.Doubled,
			FromSplit: h.FromSplit,
		}
	}

	return dto.Player{
		Hands:           hands,
		ActiveHandIndex: r.ActiveHandIndex,
		InsuranceOpen:   r.InsuranceOpen,
		InsuranceBet:    r.InsuranceBet,
	}
}

func toCards(cards []model.Card) []dto.Card {
	result := make([]dto.Card, len(cards))
	for i, c := range cards {
		result[i] = dto.Card{Rank: c.Rank, Suit: c.Suit}
	}
	return result
}

func toEval(e model.HandEvaluation) dto.HandEvaluation {
	return dto.HandEvaluation{
		Totals:      e.Totals,
		BestTotal:   e.BestTotal,
		IsSoft:      e.IsSoft,
		IsBlackjack: e.IsBlackjack,
		IsBust:      e.IsBust,
	}
}

func toSummary(s *model.Settlement) *dto.Summary {
	hands := make([]dto.HandOutcome, len(s.Hands))
	for i, h := range s.Hands {
		hands[i] = dto.HandOutcome{
			Result: string(h.Result),
			Bet:    h.Bet,
			Payout: h.Payout,
		}
	}

	return &dto.Summary{
		Hands:           hands,
		InsurancePayout: s.InsurancePayout,
		TotalWagered:    s.TotalWagered,
		TotalPayout:     s.TotalPayout,
		Net:             s.Net,
	}
}
