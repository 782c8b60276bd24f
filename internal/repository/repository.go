package repository

import (
	"casino_platform/internal/model"
	"context"
	"errors"
)

// Ошибки хранилища раундов
var (
	ErrRoundNotFound      = errors.New("round not found")
	ErrRoundAlreadyActive = errors.New("round already active")
)

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)

	GetBalance(ctx context.Context, id int) (int, error)
	UpdateBalance(ctx context.Context, id int, amount int) error
}

type TransactionRepository interface {
	RecordTransaction(ctx context.Context, tx *model.Transaction) error
	ListByUser(ctx context.Context, userID int, limit int) ([]model.Transaction, error)
}

// RoundRepository - in-memory реестр раундов блэкджека.
// Держит не более одного активного раунда на пользователя и
// сериализует read-modify-write доступ к раунду.
// Рассчитанные раунды не удаляются: остаются для истории
type RoundRepository interface {
	Create(round *model.Round) error
	Update(roundID string, fn func(round *model.Round) error) error
	Remove(roundID string)
	ActiveByUser(userID int) (string, bool)
}

// StatsRepository - in-memory счетчики ставок и выплат по игре
type StatsRepository interface {
	Record(bet, payout int)
	Report() GameStats
}

// GameStats - сводка по игре: обороты и фактический RTP
type GameStats struct {
	TotalPlays  int
	TotalBet    int
	TotalPayout int
	RTP         float64
}
