package blackjack

import (
	dto "casino_platform/internal/api/dto/blackjack"
	"casino_platform/internal/api/httperr"
	"casino_platform/internal/converter"
	"casino_platform/internal/middleware"
	"casino_platform/internal/service"
	"casino_platform/pkg/req"
	"casino_platform/pkg/resp"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.BlackjackService
}

type Handler struct {
	serv service.BlackjackService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Start начинает новый раунд для пользователя из контекста
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user id not found", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.StartRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.serv.Start(r.Context(), userID, converter.ToStartRound(payload))
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToRoundResponse(*view))
}

// Action применяет действие игрока к активной руке раунда
func (h *Handler) Action(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user id not found", http.StatusUnauthorized)
		return
	}

	roundID := chi.URLParam(r, "roundID")

	payload, err := req.Decode[dto.ActionRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.serv.Action(r.Context(), userID, roundID, payload.Action)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundResponse(*view))
}

// Settle рассчитывает завершенный раунд. Повторный вызов безопасен
func (h *Handler) Settle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user id not found", http.StatusUnauthorized)
		return
	}

	roundID := chi.URLParam(r, "roundID")

	view, err := h.serv.Settle(r.Context(), userID, roundID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundResponse(*view))
}

// State возвращает текущий снимок раунда
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user id not found", http.StatusUnauthorized)
		return
	}

	roundID := chi.URLParam(r, "roundID")

	view, err := h.serv.State(r.Context(), userID, roundID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundResponse(*view))
}
