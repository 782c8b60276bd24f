package stats_repo

import (
	"casino_platform/internal/repository"
	"sync"
)

// Реализация in-memory счетчиков по одной игре.
// Веса и выплаты фиксированы конфигом, поэтому счетчики
// только наблюдают фактический RTP и ничего не регулируют
type StatsRepo struct {
	mtx         sync.RWMutex
	totalPlays  int
	totalBet    int
	totalPayout int
}

func NewStatsRepository() *StatsRepo {
	return &StatsRepo{}
}

// Record - учитывает одну ставку и выплату
func (r *StatsRepo) Record(bet, payout int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.totalPlays++
	r.totalBet += bet
	r.totalPayout += payout
}

// Report - текущая сводка по игре
func (r *StatsRepo) Report() repository.GameStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	stats := repository.GameStats{
		TotalPlays:  r.totalPlays,
		TotalBet:    r.totalBet,
		TotalPayout: r.totalPayout,
	}
	if r.totalBet > 0 {
		stats.RTP = float64(r.totalPayout) / float64(r.totalBet) * 100
	}

	return stats
}
