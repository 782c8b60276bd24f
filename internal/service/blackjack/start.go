package blackjack

import (
	"casino_platform/internal/model"
	"casino_platform/internal/service"
	"casino_platform/pkg/fair"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Минимальная длина клиентского сида. Короче - подставляем свой
const minClientSeedLen = 8

// Start начинает раунд: строит шуз от пары сидов, раздает по две карты
// игроку и дилеру и сразу списывает ставку. Деньги в риске с момента
// раздачи
func (s *serv) Start(ctx context.Context, userID int, req model.StartRound) (*model.RoundView, error) {
	rules := s.cfg.Rules()

	// Валидация ставки до любых мутаций
	if req.Bet <= 0 || req.Bet < rules.MinBet || req.Bet > rules.MaxBet {
		return nil, service.ErrInvalidBet
	}

	// Пара сидов и цепочка обязательств
	serverSeed, err := fair.NewServerSeed()
	if err != nil {
		return nil, err
	}
	serverSeedHash, publicHash := fair.Commitment(serverSeed)

	clientSeed := req.ClientSeed
	if len(clientSeed) < minClientSeedLen {
		clientSeed, err = fair.NewClientSeed()
		if err != nil {
			return nil, err
		}
	}

	shoe := buildShoe(serverSeed, clientSeed, rules.DeckCount)

	round := &model.Round{
		ID:     uuid.NewString(),
		UserID: userID,
		Status: model.RoundPlayerTurn,
		Shoe:   shoe,
		Rules:  rules,
		Fair: model.FairProof{
			ServerSeed:     serverSeed,
			ServerSeedHash: serverSeedHash,
			PublicHash:     publicHash,
			ClientSeed:     clientSeed,
			ShoeHash:       shoeHash(shoe),
		},
		LockedBet: req.Bet,
		CreatedAt: time.Now(),
	}

	if err := dealInitial(round, req.Bet); err != nil {
		return nil, err
	}

	// Create резервирует слот активного раунда пользователя
	if err := s.roundRepo.Create(round); err != nil {
		return nil, err
	}

	// Списание ставки. При нехватке денег регистрация раунда откатывается
	var balance int
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err = s.userRepo.GetBalance(txCtx, userID)
		if err != nil {
			return errors.New("failed to get user balance")
		}
		if balance < req.Bet {
			return service.ErrInsufficientBalance
		}

		balance -= req.Bet
		if err := s.userRepo.UpdateBalance(txCtx, userID, balance); err != nil {
			return errors.New("failed to update user balance")
		}
		return nil
	})
	if err != nil {
		s.roundRepo.Remove(round.ID)
		return nil, err
	}

	return s.buildView(round, balance), nil
}

// dealInitial раздает стартовые карты в порядке игрок-дилер-игрок-дилер
// и обрабатывает натуральные блэкджеки
func dealInitial(r *model.Round, bet int) error {
	var cards [4]model.Card
	for i := range cards {
		c, err := draw(&r.Shoe)
		if err != nil {
			return err
		}
		cards[i] = c
	}

	hand := model.Hand{
		Cards:   []model.Card{cards[0], cards[2]},
		Bet:     bet,
		Status:  model.HandPlaying,
		History: []string{"deal"},
	}
	hand.Eval = evaluate(hand.Cards)

	r.Dealer = model.Dealer{Cards: []model.Card{cards[1], cards[3]}}
	r.Dealer.Eval = evaluate(r.Dealer.Cards)

	playerNatural := hand.Eval.IsBlackjack
	dealerNatural := r.Dealer.Eval.IsBlackjack

	if playerNatural {
		hand.Status = model.HandBlackjack
	}

	r.Hands = []model.Hand{hand}
	r.ActiveHandIndex = 0

	// Натурал с любой стороны завершает раунд сразу: карта дилера
	// раскрывается, страховка не предлагается
	if playerNatural || dealerNatural {
		r.Dealer.Revealed = true
		r.Status = model.RoundCompleted
		return nil
	}

	// Страховка предлагается против открытого туза дилера
	r.InsuranceOpen = r.Dealer.Cards[0].Rank == "A"

	return nil
}
