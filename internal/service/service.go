package service

import (
	"casino_platform/internal/model"
	"context"
	"errors"
)

// Ошибки игрового движка.
// Валидационные и ресурсные ошибки возвращаются до любой мутации
var (
	ErrInvalidBet           = errors.New("invalid bet")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrActionNotAvailable   = errors.New("action not available")
	ErrPlayerActionsPending = errors.New("player actions pending")

	// ErrShoeDepleted - шуз исчерпан. Ошибка конфигурации стола,
	// не восстанавливается на уровне запроса
	ErrShoeDepleted = errors.New("shoe depleted")
)

type BlackjackService interface {
	Start(ctx context.Context, userID int, req model.StartRound) (*model.RoundView, error)
	Action(ctx context.Context, userID int, roundID string, action string) (*model.RoundView, error)
	Settle(ctx context.Context, userID int, roundID string) (*model.RoundView, error)
	State(ctx context.Context, userID int, roundID string) (*model.RoundView, error)
}

type SlotService interface {
	Spin(ctx context.Context, userID int, req model.SlotSpin) (*model.SlotSpinResult, error)
}

type PaymentService interface {
	Deposit(ctx context.Context, userID int, amount int) (balance int, err error)
	Balance(ctx context.Context, userID int) (int, error)
	History(ctx context.Context, userID int, limit int) ([]model.Transaction, error)
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, user *model.User) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
