package stats_repo

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordAndReport(t *testing.T) {
	repo := NewStatsRepository()

	assert.Zero(t, repo.Report().TotalPlays)
	assert.Zero(t, repo.Report().RTP)

	repo.Record(100, 200)
	repo.Record(100, 0)
	repo.Record(100, 88)

	stats := repo.Report()
	assert.Equal(t, 3, stats.TotalPlays)
	assert.Equal(t, 300, stats.TotalBet)
	assert.Equal(t, 288, stats.TotalPayout)
	assert.InDelta(t, 96.0, stats.RTP, 0.001)
}

func TestRecordConcurrent(t *testing.T) {
	repo := NewStatsRepository()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo.Record(10, 5)
		}()
	}
	wg.Wait()

	stats := repo.Report()
	assert.Equal(t, 100, stats.TotalPlays)
	assert.Equal(t, 1000, stats.TotalBet)
	assert.Equal(t, 500, stats.TotalPayout)
}
