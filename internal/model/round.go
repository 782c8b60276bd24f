package model

import "time"

// Статусы раунда. Переходы только вперед:
// player-turn -> dealer-turn -> completed -> settled
type RoundStatus string

const (
	RoundPlayerTurn RoundStatus = "player-turn"
	RoundDealerTurn RoundStatus = "dealer-turn"
	RoundCompleted  RoundStatus = "completed"
	RoundSettled    RoundStatus = "settled"
)

// Статусы руки
type HandStatus string

const (
	HandPlaying   HandStatus = "playing"
	HandStood     HandStatus = "stood"
	HandBust      HandStatus = "bust"
	HandBlackjack HandStatus = "blackjack"
	HandSurrender HandStatus = "surrender"
	HandPush      HandStatus = "push"
)

// Результат руки после расчета
type HandResult string

const (
	ResultWin       HandResult = "win"
	ResultLoss      HandResult = "loss"
	ResultPush      HandResult = "push"
	ResultBlackjack HandResult = "blackjack"
	ResultSurrender HandResult = "surrender"
)

// Действия игрока
const (
	ActionHit       = "hit"
	ActionStand     = "stand"
	ActionDouble    = "double"
	ActionSplit     = "split"
	ActionSurrender = "surrender"
	ActionInsurance = "insurance"
)

// HandEvaluation - оценка руки: все достижимые суммы (туз как 1 и 11),
// лучшая сумма и флаги
type HandEvaluation struct {
	Totals      []int
	BestTotal   int
	IsSoft      bool
	IsBlackjack bool
	IsBust      bool
}

// Hand - рука игрока со ставкой и историей действий
type Hand struct {
	Cards     []Card
	Bet       int
	Eval      HandEvaluation
	Status    HandStatus
	Result    HandResult
	Doubled   bool
	FromSplit bool
	SplitRank string // ранг исходной пары, если рука получена сплитом
	History   []string
}

// Acted - было ли на руке действие игрока после раздачи.
// Руки от сплита считаются затронутыми: сплит уже был действием
func (h *Hand) Acted() bool {
	for _, entry := range h.History {
		if entry != "deal" {
			return true
		}
	}
	return false
}

// Dealer - рука дилера с флагом раскрытия закрытой карты
type Dealer struct {
	Cards    []Card
	Eval     HandEvaluation
	Revealed bool
}

// Shoe - перетасованный многоколодный шуз с курсором раздачи.
// Курсор никогда не превышает длину: исчерпание шуза - фатальная ошибка
type Shoe struct {
	Cards  []Card
	Cursor int
}

// FairProof - данные проверяемой честности раунда.
// Серверный сид скрывается от клиента до расчета раунда
type FairProof struct {
	ServerSeed     string
	ServerSeedHash string
	PublicHash     string
	ClientSeed     string
	ShoeHash       string
}

// TableRules - правила стола для блэкджека
type TableRules struct {
	DeckCount        int
	MinBet           int
	MaxBet           int
	DealerHitsSoft17 bool
	DoubleAfterSplit bool
	SurrenderAllowed bool
	MaxSplitHands    int
	ResplitAces      bool
	HitSplitAces     bool
}

// HandOutcome - итог одной руки после расчета
type HandOutcome struct {
	Result HandResult
	Bet    int
	Payout int
}

// Settlement - итог раунда. Мемоизируется: повторный расчет
// возвращает тот же результат и не трогает баланс
type Settlement struct {
	Hands           []HandOutcome
	InsurancePayout int
	TotalWagered    int
	TotalPayout     int
	Net             int
}

// Round - состояние раунда блэкджека.
// Мутируется только через объявленные действия под блокировкой хранилища
type Round struct {
	ID              string
	UserID          int
	Status          RoundStatus
	Shoe            Shoe
	Dealer          Dealer
	Hands           []Hand
	ActiveHandIndex int
	InsuranceOpen   bool
	InsuranceBet    int
	Surrendered     bool
	LockedBet       int
	Rules           TableRules
	Fair            FairProof
	Summary         *Settlement
	CreatedAt       time.Time
}

// StartRound - запрос на старт раунда
type StartRound struct {
	Bet        int
	ClientSeed string
}

// RoundView - снимок раунда для клиента: раунд, доступные действия
// и баланс после операции
type RoundView struct {
	Round            *Round
	AvailableActions []string
	Balance          int
}
