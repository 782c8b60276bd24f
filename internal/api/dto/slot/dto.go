package slot

type SpinRequest struct {
	Bet        int    `json:"bet"`         // Размер ставки
	ClientSeed string `json:"client_seed"` // Клиентский сид (опционально)
}

type Win struct {
	Line       int    `json:"line"`
	Symbol     string `json:"symbol"`
	Count      int    `json:"count"`
	Multiplier int    `json:"multiplier"`
}

type ProvablyFair struct {
	ServerSeed     string `json:"server_seed"` // Спин атомарен: сид раскрыт сразу
	ServerSeedHash string `json:"server_seed_hash"`
	PublicHash     string `json:"public_hash"`
	ClientSeed     string `json:"client_seed"`
}

type SpinResponse struct {
	SpinID       string       `json:"spin_id"`
	Grid         [][]string   `json:"grid"`
	BestWin      *Win         `json:"best_win"` // null если нет совпадений
	WinAmount    int          `json:"win_amount"`
	Balance      int          `json:"balance"`
	ProvablyFair ProvablyFair `json:"provably_fair"`
}
