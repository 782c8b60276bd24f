package model

import "time"

// Transaction - запись в журнале операций по балансу.
// Одна запись на расчет раунда, спин слота или депозит
type Transaction struct {
	ID        int
	UserID    int
	Game      string // "blackjack" | "slot" | "deposit"
	RefID     string // идентификатор раунда или спина
	Wagered   int
	Payout    int
	CreatedAt time.Time
}
