package blackjack

import (
	"testing"

	"casino_platform/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultRules() model.TableRules {
	return model.TableRules{
		DeckCount:        6,
		MinBet:           10,
		MaxBet:           10000,
		DealerHitsSoft17: false,
		DoubleAfterSplit: true,
		SurrenderAllowed: true,
		MaxSplitHands:    4,
		ResplitAces:      false,
		HitSplitAces:     false,
	}
}

// testRound собирает раунд с заданными руками и подложенным шузом
func testRound(playerRanks, dealerRanks, shoeRanks []string, bet int) *model.Round {
	hand := model.Hand{
		Cards:   cards(playerRanks...),
		Bet:     bet,
		Status:  model.HandPlaying,
		History: []string{"deal"},
	}
	hand.Eval = evaluate(hand.Cards)

	r := &model.Round{
		ID:        "round-test",
		UserID:    1,
		Status:    model.RoundPlayerTurn,
		Shoe:      model.Shoe{Cards: cards(shoeRanks...)},
		Hands:     []model.Hand{hand},
		LockedBet: bet,
		Rules:     defaultRules(),
	}
	r.Dealer = model.Dealer{Cards: cards(dealerRanks...)}
	r.Dealer.Eval = evaluate(r.Dealer.Cards)

	return r
}

func TestAvailableActionsBase(t *testing.T) {
	r := testRound([]string{"5", "9"}, []string{"10", "6"}, []string{"2"}, 100)

	actions := availableActions(r, 1000)
	assert.Contains(t, actions, model.ActionHit)
	assert.Contains(t, actions, model.ActionStand)
	assert.Contains(t, actions, model.ActionDouble)
	assert.Contains(t, actions, model.ActionSurrender)
	assert.NotContains(t, actions, model.ActionSplit)
	assert.NotContains(t, actions, model.ActionInsurance)
}

func TestAvailableActionsSplitPair(t *testing.T) {
	r := testRound([]string{"8", "8"}, []string{"10", "6"}, []string{"2"}, 100)

	assert.Contains(t, availableActions(r, 1000), model.ActionSplit)

	// Разные по стоимости ранги сплитовать нельзя
	r = testRound([]string{"8", "9"}, []string{"10", "6"}, []string{"2"}, 100)
	assert.NotContains(t, availableActions(r, 1000), model.ActionSplit)

	// K и Q равны по стоимости - сплит разрешен
	r = testRound([]string{"K", "Q"}, []string{"10", "6"}, []string{"2"}, 100)
	assert.Contains(t, availableActions(r, 1000), model.ActionSplit)
}

func TestAvailableActionsBalanceGates(t *testing.T) {
	r := testRound([]string{"8", "8"}, []string{"10", "6"}, []string{"2"}, 100)

	// Денег на доплату нет - double и split недоступны
	actions := availableActions(r, 50)
	assert.NotContains(t, actions, model.ActionDouble)
	assert.NotContains(t, actions, model.ActionSplit)
	assert.Contains(t, actions, model.ActionHit)
}

func TestAvailableActionsInsurance(t *testing.T) {
	r := testRound([]string{"5", "9"}, []string{"A", "6"}, []string{"2"}, 100)
	r.InsuranceOpen = true

	assert.Contains(t, availableActions(r, 1000), model.ActionInsurance)

	// После действия на руке предложение закрыто
	r.Hands[0].History = append(r.Hands[0].History, "hit")
	assert.NotContains(t, availableActions(r, 1000), model.ActionInsurance)
}

func TestAvailableActionsResplitAces(t *testing.T) {
	r := testRound([]string{"A", "A"}, []string{"10", "6"}, []string{"2"}, 100)
	r.Hands[0].FromSplit = true
	r.Hands[0].SplitRank = "A"
	r.Hands[0].History = []string{"split"}

	assert.NotContains(t, availableActions(r, 1000), model.ActionSplit)

	r.Rules.ResplitAces = true
	assert.Contains(t, availableActions(r, 1000), model.ActionSplit)
}

func TestApplyHitBust(t *testing.T) {
	// Шуз подложен: добор дает K и перебор, дилер стоит на 17
	r := testRound([]string{"10", "6"}, []string{"10", "7"}, []string{"K"}, 100)

	err := applyHit(r, &r.Hands[0])
	require.NoError(t, err)

	assert.Equal(t, model.HandBust, r.Hands[0].Status)
	// Единственная рука закрыта - дилер доигрывает, раунд завершен
	assert.Equal(t, model.RoundCompleted, r.Status)
	assert.True(t, r.Dealer.Revealed)
}

func TestApplyHitToTwentyOneForcesStand(t *testing.T) {
	r := testRound([]string{"10", "6"}, []string{"9", "7"}, []string{"5", "2"}, 100)

	err := applyHit(r, &r.Hands[0])
	require.NoError(t, err)

	assert.Equal(t, model.HandStood, r.Hands[0].Status)
	assert.False(t, r.Hands[0].Eval.IsBlackjack)
}

func TestDealerStandsOnHardSeventeen(t *testing.T) {
	// Сценарий: дилер 10+6, добор двойки до 18; игрок стоит на 20
	r := testRound([]string{"10", "Q"}, []string{"10", "6"}, []string{"2"}, 100)

	err := applyStand(r, &r.Hands[0])
	require.NoError(t, err)

	require.Equal(t, model.RoundCompleted, r.Status)
	assert.Equal(t, 18, r.Dealer.Eval.BestTotal)

	summary := computeSettlement(r)
	require.Len(t, summary.Hands, 1)
	assert.Equal(t, model.ResultWin, summary.Hands[0].Result)
	assert.Equal(t, 200, summary.Hands[0].Payout)
	assert.Equal(t, 100, summary.Net)
}

func TestDealerHitsSoftSeventeenWhenConfigured(t *testing.T) {
	r := testRound([]string{"10", "9"}, []string{"A", "6"}, []string{"3"}, 100)
	r.Rules.DealerHitsSoft17 = true

	err := applyStand(r, &r.Hands[0])
	require.NoError(t, err)

	// Мягкие 17 добраны до 20
	assert.Equal(t, 20, r.Dealer.Eval.BestTotal)
	assert.Len(t, r.Dealer.Cards, 3)
}

func TestDealerStandsOnSoftSeventeenByDefault(t *testing.T) {
	r := testRound([]string{"10", "9"}, []string{"A", "6"}, []string{"3"}, 100)

	err := applyStand(r, &r.Hands[0])
	require.NoError(t, err)

	assert.Equal(t, 17, r.Dealer.Eval.BestTotal)
	assert.Len(t, r.Dealer.Cards, 2)
}

func TestSettlementTable(t *testing.T) {
	tests := []struct {
		name       string
		player     []string
		dealer     []string
		wantResult model.HandResult
		wantPayout int
	}{
		{"player wins by total", []string{"10", "9"}, []string{"10", "8"}, model.ResultWin, 200},
		{"player loses by total", []string{"10", "7"}, []string{"10", "8"}, model.ResultLoss, 0},
		{"push", []string{"10", "8"}, []string{"10", "8"}, model.ResultPush, 100},
		{"dealer bust", []string{"10", "7"}, []string{"10", "6", "K"}, model.ResultWin, 200},
		{"both bust", []string{"10", "6", "K"}, []string{"10", "6", "9"}, model.ResultPush, 100},
		{"player bust only", []string{"10", "6", "K"}, []string{"10", "8"}, model.ResultLoss, 0},
		{"natural pays 3 to 2", []string{"A", "K"}, []string{"10", "8"}, model.ResultBlackjack, 250},
		{"dealer natural", []string{"10", "9"}, []string{"A", "K"}, model.ResultLoss, 0},
		{"both natural push", []string{"A", "Q"}, []string{"A", "K"}, model.ResultPush, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := testRound(tc.player, tc.dealer, nil, 100)
			r.Status = model.RoundCompleted
			r.Dealer.Revealed = true
			if r.Hands[0].Eval.IsBust {
				r.Hands[0].Status = model.HandBust
			}

			summary := computeSettlement(r)
			require.Len(t, summary.Hands, 1)
			assert.Equal(t, tc.wantResult, summary.Hands[0].Result)
			assert.Equal(t, tc.wantPayout, summary.Hands[0].Payout)
			assert.Equal(t, tc.wantPayout-100, summary.Net)
		})
	}
}

func TestSettlementSurrender(t *testing.T) {
	r := testRound([]string{"10", "6"}, []string{"10", "9"}, nil, 100)
	r.Status = model.RoundCompleted
	r.Hands[0].Status = model.HandSurrender
	r.Surrendered = true

	summary := computeSettlement(r)
	assert.Equal(t, model.ResultSurrender, summary.Hands[0].Result)
	assert.Equal(t, 50, summary.Hands[0].Payout)
	assert.Equal(t, -50, summary.Net)
}

func TestSettlementSplitScenario(t *testing.T) {
	// Сплит на две руки по 100: одна перебрала, другая в пуш.
	// Итог: выплата 100 при 200 в риске, net = -100
	r := testRound([]string{"10", "6", "K"}, []string{"10", "8"}, nil, 100)
	r.Hands[0].Status = model.HandBust
	r.Hands[0].FromSplit = true
	r.Hands[0].SplitRank = "8"

	pushHand := model.Hand{
		Cards:     cards("10", "8"),
		Bet:       100,
		Status:    model.HandStood,
		FromSplit: true,
		SplitRank: "8",
		History:   []string{"split"},
	}
	pushHand.Eval = evaluate(pushHand.Cards)
	r.Hands = append(r.Hands, pushHand)

	r.LockedBet = 200
	r.Status = model.RoundCompleted

	summary := computeSettlement(r)
	require.Len(t, summary.Hands, 2)
	assert.Equal(t, model.ResultLoss, summary.Hands[0].Result)
	assert.Equal(t, model.ResultPush, summary.Hands[1].Result)
	assert.Equal(t, 100, summary.TotalPayout)
	assert.Equal(t, -100, summary.Net)
	assert.Equal(t, 200, summary.TotalWagered)
}

func TestSettlementSplitTwentyOneIsNotNatural(t *testing.T) {
	// 21 из двух карт после сплита платит 1:1, не 3:2
	r := testRound([]string{"A", "K"}, []string{"10", "9"}, nil, 100)
	r.Hands[0].FromSplit = true
	r.Hands[0].SplitRank = "A"
	r.Hands[0].Status = model.HandStood
	r.Status = model.RoundCompleted

	summary := computeSettlement(r)
	assert.Equal(t, model.ResultWin, summary.Hands[0].Result)
	assert.Equal(t, 200, summary.Hands[0].Payout)
}

func TestSettlementInsurance(t *testing.T) {
	r := testRound([]string{"10", "9"}, []string{"A", "K"}, nil, 100)
	r.InsuranceBet = 50
	r.LockedBet = 150
	r.Status = model.RoundCompleted

	summary := computeSettlement(r)
	// Рука проиграла натуралу, страховка заплатила 2:1
	assert.Equal(t, model.ResultLoss, summary.Hands[0].Result)
	assert.Equal(t, 150, summary.InsurancePayout)
	assert.Equal(t, 150, summary.TotalPayout)
	assert.Equal(t, 0, summary.Net)
}

func TestSettlementInsuranceLostWithoutNatural(t *testing.T) {
	r := testRound([]string{"10", "9"}, []string{"A", "7"}, nil, 100)
	r.InsuranceBet = 50
	r.LockedBet = 150
	r.Status = model.RoundCompleted

	summary := computeSettlement(r)
	assert.Equal(t, 0, summary.InsurancePayout)
	// 19 против 18: рука выиграла, страховка сгорела
	assert.Equal(t, model.ResultWin, summary.Hands[0].Result)
	assert.Equal(t, 200, summary.TotalPayout)
	assert.Equal(t, 50, summary.Net)
}
