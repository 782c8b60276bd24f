package round_repo

import (
	"casino_platform/internal/model"
	"casino_platform/internal/repository"
	"sync"
)

// Реализация in-memory хранилища раундов.
// Одна общая блокировка на оба индекса: нагрузка на раунд низкая,
// per-round блокировки не нужны
type repo struct {
	mtx          sync.Mutex
	roundsByID   map[string]*model.Round
	activeByUser map[int]string
}

func NewRoundRepository() repository.RoundRepository {
	return &repo{
		roundsByID:   make(map[string]*model.Round),
		activeByUser: make(map[int]string),
	}
}

// Create - регистрирует раунд и резервирует слот активного раунда
// пользователя. Возвращает ErrRoundAlreadyActive, если у пользователя
// уже есть нерассчитанный раунд
func (r *repo) Create(round *model.Round) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if activeID, ok := r.activeByUser[round.UserID]; ok {
		if active, exists := r.roundsByID[activeID]; exists && active.Status != model.RoundSettled {
			return repository.ErrRoundAlreadyActive
		}
	}

	r.roundsByID[round.ID] = round
	r.activeByUser[round.UserID] = round.ID

	return nil
}

// Update - выполняет fn над раундом под блокировкой хранилища.
// Если после fn раунд рассчитан, активный указатель пользователя
// снимается: можно начинать новый раунд
func (r *repo) Update(roundID string, fn func(round *model.Round) error) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	round, ok := r.roundsByID[roundID]
	if !ok {
		return repository.ErrRoundNotFound
	}

	if err := fn(round); err != nil {
		return err
	}

	if round.Status == model.RoundSettled && r.activeByUser[round.UserID] == roundID {
		delete(r.activeByUser, round.UserID)
	}

	return nil
}

// Remove - убирает раунд из реестра.
// Используется только как компенсация неудавшегося старта
func (r *repo) Remove(roundID string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	round, ok := r.roundsByID[roundID]
	if !ok {
		return
	}

	delete(r.roundsByID, roundID)
	if r.activeByUser[round.UserID] == roundID {
		delete(r.activeByUser, round.UserID)
	}
}

// ActiveByUser - идентификатор активного раунда пользователя
func (r *repo) ActiveByUser(userID int) (string, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	roundID, ok := r.activeByUser[userID]
	if !ok {
		return "", false
	}

	round, exists := r.roundsByID[roundID]
	if !exists || round.Status == model.RoundSettled {
		return "", false
	}

	return roundID, true
}
