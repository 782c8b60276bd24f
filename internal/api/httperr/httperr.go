package httperr

import (
	"casino_platform/internal/repository"
	"casino_platform/internal/service"
	"errors"
	"log"
	"net/http"
)

// Status - HTTP-код для ошибки игрового движка.
// Фатальные ошибки (исчерпание шуза) логируются как 500
func Status(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidBet):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	case errors.Is(err, repository.ErrRoundAlreadyActive),
		errors.Is(err, service.ErrActionNotAvailable),
		errors.Is(err, service.ErrPlayerActionsPending):
		return http.StatusConflict
	case errors.Is(err, repository.ErrRoundNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrShoeDepleted):
		log.Printf("shoe depleted: table misconfiguration: %v", err)
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Write - отвечает ошибкой с корректным статусом
func Write(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), Status(err))
}
