package blackjack

type StartRequest struct {
	Bet        int    `json:"bet"`         // Размер ставки (положительное целое, в пределах лимитов стола)
	ClientSeed string `json:"client_seed"` // Клиентский сид (опционально, минимум 8 символов)
}

type ActionRequest struct {
	Action string `json:"action"` // hit | stand | double | split | surrender | insurance
}

type Card struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

type HandEvaluation struct {
	Totals      []int `json:"totals"`
	BestTotal   int   `json:"best_total"`
	IsSoft      bool  `json:"is_soft"`
	IsBlackjack bool  `json:"is_blackjack"`
	IsBust      bool  `json:"is_bust"`
}

type Hand struct {
	Cards     []Card         `json:"cards"`
	Bet       int            `json:"bet"`
	Eval      HandEvaluation `json:"evaluation"`
	Status    string         `json:"status"`
	Result    string         `json:"result,omitempty"`
	Doubled   bool           `json:"doubled"`
	FromSplit bool           `json:"from_split"`
}

type Dealer struct {
	Cards          []Card         `json:"cards"` // До раскрытия видна только открытая карта
	Eval           HandEvaluation `json:"evaluation"`
	RevealHoleCard bool           `json:"reveal_hole_card"`
}

type Player struct {
	Hands           []Hand `json:"hands"`
	ActiveHandIndex int    `json:"active_hand_index"`
	InsuranceOpen   bool   `json:"insurance_open"`
	InsuranceBet    int    `json:"insurance_bet"`
}

type ProvablyFair struct {
	ServerSeedHash string `json:"server_seed_hash"`
	PublicHash     string `json:"public_hash"`
	ClientSeed     string `json:"client_seed"`
	ShoeHash       string `json:"shoe_hash"`
	ServerSeed     string `json:"server_seed,omitempty"` // Раскрывается только после расчета
}

type HandOutcome struct {
	Result string `json:"result"`
	Bet    int    `json:"bet"`
	Payout int    `json:"payout"`
}

type Summary struct {
	Hands           []HandOutcome `json:"hands"`
	InsurancePayout int           `json:"insurance_payout"`
	TotalWagered    int           `json:"total_wagered"`
	TotalPayout     int           `json:"total_payout"`
	Net             int           `json:"net"`
}

type RoundResponse struct {
	RoundID          string       `json:"round_id"`
	Status           string       `json:"status"`
	Dealer           Dealer       `json:"dealer"`
	Player           Player       `json:"player"`
	AvailableActions []string     `json:"available_actions"`
	Balance          int          `json:"balance"`
	LockedBet        int          `json:"locked_bet"`
	ProvablyFair     ProvablyFair `json:"provably_fair"`
	Summary          *Summary     `json:"summary"` // null до расчета
}
