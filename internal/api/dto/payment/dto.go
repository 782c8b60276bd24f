package payment

import "time"

type DepositRequest struct {
	Amount int `json:"amount"` // Сумма депозита
}

type BalanceResponse struct {
	Balance int `json:"balance"`
}

type Transaction struct {
	ID        int       `json:"id"`
	Game      string    `json:"game"`
	RefID     string    `json:"ref_id"`
	Wagered   int       `json:"wagered"`
	Payout    int       `json:"payout"`
	CreatedAt time.Time `json:"created_at"`
}

type HistoryResponse struct {
	Transactions []Transaction `json:"transactions"`
}
