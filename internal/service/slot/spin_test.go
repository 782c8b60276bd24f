package slot

import (
	"context"
	"errors"
	"testing"

	"casino_platform/internal/config"
	"casino_platform/internal/model"
	"casino_platform/internal/repository"
	"casino_platform/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTxManager имитирует транзакцию: при ошибке fn состояние
// заглушек откатывается к снимку на момент входа
type stubTxManager struct {
	userRepo *stubUserRepo
	txRepo   *stubTxRepo
}

func (m *stubTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	balances := m.userRepo.snapshot()
	records := m.txRepo.snapshot()
	if err := fn(ctx); err != nil {
		m.userRepo.restore(balances)
		m.txRepo.restore(records)
		return err
	}
	return nil
}

func (m *stubTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

type stubUserRepo struct {
	balances map[int]int
}

func (r *stubUserRepo) CreateUser(_ context.Context, _ *model.User) (int, error) {
	return 0, errors.New("not implemented")
}

func (r *stubUserRepo) GetUserByLogin(_ context.Context, _ string) (*model.User, error) {
	return nil, errors.New("not implemented")
}

func (r *stubUserRepo) GetBalance(_ context.Context, id int) (int, error) {
	balance, ok := r.balances[id]
	if !ok {
		return 0, errors.New("user not found")
	}
	return balance, nil
}

func (r *stubUserRepo) UpdateBalance(_ context.Context, id int, amount int) error {
	r.balances[id] = amount
	return nil
}

func (r *stubUserRepo) snapshot() map[int]int {
	out := make(map[int]int, len(r.balances))
	for id, balance := range r.balances {
		out[id] = balance
	}
	return out
}

func (r *stubUserRepo) restore(balances map[int]int) {
	r.balances = balances
}

type stubTxRepo struct {
	records  []model.Transaction
	failures int // сколько ближайших записей журнала должны упасть
}

func (r *stubTxRepo) RecordTransaction(_ context.Context, tx *model.Transaction) error {
	if r.failures > 0 {
		r.failures--
		return errors.New("journal write failed")
	}

	r.records = append(r.records, *tx)
	return nil
}

func (r *stubTxRepo) snapshot() []model.Transaction {
	return append([]model.Transaction(nil), r.records...)
}

func (r *stubTxRepo) restore(records []model.Transaction) {
	r.records = records
}

func (r *stubTxRepo) ListByUser(_ context.Context, _ int, _ int) ([]model.Transaction, error) {
	return r.records, nil
}

type stubStatsRepo struct {
	plays int
}

func (r *stubStatsRepo) Record(_, _ int) { r.plays++ }

func (r *stubStatsRepo) Report() repository.GameStats {
	return repository.GameStats{TotalPlays: r.plays}
}

type stubConfig struct{}

func (c *stubConfig) Rows() int { return 3 }
func (c *stubConfig) Cols() int { return 5 }

func (c *stubConfig) Symbols() []config.SymbolWeight {
	return []config.SymbolWeight{
		{Symbol: "CHERRY", Weight: 30},
		{Symbol: "LEMON", Weight: 25},
		{Symbol: "BELL", Weight: 20},
		{Symbol: "SEVEN", Weight: 15},
		{Symbol: "DIAMOND", Weight: 10},
	}
}

func (c *stubConfig) PayoutTable() map[string]map[int]int {
	return map[string]map[int]int{
		"CHERRY":  {3: 2, 4: 5},
		"LEMON":   {3: 3, 4: 8},
		"BELL":    {3: 5, 4: 15},
		"SEVEN":   {3: 10, 4: 40},
		"DIAMOND": {3: 25, 4: 100},
	}
}

func (c *stubConfig) HouseEdgePercent() int { return 4 }
func (c *stubConfig) MinBet() int           { return 10 }
func (c *stubConfig) MaxBet() int           { return 10000 }

func TestGenerateGridDeterministic(t *testing.T) {
	cfg := &stubConfig{}

	first := generateGrid("seed-a", cfg.Rows(), cfg.Cols(), cfg.Symbols())
	second := generateGrid("seed-a", cfg.Rows(), cfg.Cols(), cfg.Symbols())

	assert.Equal(t, first, second)

	require.Len(t, first, 3)
	for _, row := range first {
		assert.Len(t, row, 5)
	}
}

func TestGenerateGridSeedSensitive(t *testing.T) {
	cfg := &stubConfig{}

	first := generateGrid("seed-a", cfg.Rows(), cfg.Cols(), cfg.Symbols())
	second := generateGrid("seed-b", cfg.Rows(), cfg.Cols(), cfg.Symbols())

	assert.NotEqual(t, first, second)
}

func TestPickSymbolCumulativeBounds(t *testing.T) {
	symbols := (&stubConfig{}).Symbols()

	// Границы кумулятивных диапазонов: 30, 55, 75, 90, 100
	assert.Equal(t, "CHERRY", pickSymbol(0, symbols))
	assert.Equal(t, "CHERRY", pickSymbol(29, symbols))
	assert.Equal(t, "LEMON", pickSymbol(30, symbols))
	assert.Equal(t, "LEMON", pickSymbol(54, symbols))
	assert.Equal(t, "BELL", pickSymbol(55, symbols))
	assert.Equal(t, "SEVEN", pickSymbol(75, symbols))
	assert.Equal(t, "DIAMOND", pickSymbol(90, symbols))
	assert.Equal(t, "DIAMOND", pickSymbol(99, symbols))
}

func TestEvaluateLinesNoWin(t *testing.T) {
	grid := [][]string{
		{"CHERRY", "LEMON", "BELL", "SEVEN", "DIAMOND"},
		{"LEMON", "BELL", "SEVEN", "DIAMOND", "CHERRY"},
		{"SEVEN", "DIAMOND", "CHERRY", "LEMON", "BELL"},
	}

	assert.Nil(t, evaluateLines(grid, (&stubConfig{}).PayoutTable()))
}

func TestEvaluateLinesFourOfAKind(t *testing.T) {
	grid := [][]string{
		{"CHERRY", "LEMON", "BELL", "SEVEN", "DIAMOND"},
		{"SEVEN", "SEVEN", "SEVEN", "SEVEN", "CHERRY"},
		{"BELL", "CHERRY", "DIAMOND", "CHERRY", "LEMON"},
	}

	win := evaluateLines(grid, (&stubConfig{}).PayoutTable())
	require.NotNil(t, win)
	assert.Equal(t, "SEVEN", win.Symbol)
	assert.Equal(t, 4, win.Count)
	assert.Equal(t, 40, win.Multiplier)
	assert.Equal(t, 1, win.Line)
}

func TestEvaluateLinesTrailingTriple(t *testing.T) {
	// Три подряд только в конце верхней линии
	grid := [][]string{
		{"CHERRY", "BELL", "BELL", "BELL", "DIAMOND"},
		{"SEVEN", "LEMON", "CHERRY", "SEVEN", "LEMON"},
		{"BELL", "CHERRY", "DIAMOND", "CHERRY", "LEMON"},
	}

	win := evaluateLines(grid, (&stubConfig{}).PayoutTable())
	require.NotNil(t, win)
	assert.Equal(t, "BELL", win.Symbol)
	assert.Equal(t, 3, win.Count)
	assert.Equal(t, 5, win.Multiplier)
	assert.Equal(t, 2, win.Line)
}

func TestEvaluateLinesBestMultiplierWins(t *testing.T) {
	// Верхняя линия дает CHERRY x2, нижняя DIAMOND x25:
	// побеждает больший множитель, а не первая найденная линия
	grid := [][]string{
		{"CHERRY", "CHERRY", "CHERRY", "LEMON", "SEVEN"},
		{"SEVEN", "LEMON", "BELL", "SEVEN", "CHERRY"},
		{"DIAMOND", "DIAMOND", "DIAMOND", "LEMON", "LEMON"},
	}

	win := evaluateLines(grid, (&stubConfig{}).PayoutTable())
	require.NotNil(t, win)
	assert.Equal(t, "DIAMOND", win.Symbol)
	assert.Equal(t, 25, win.Multiplier)
	assert.Equal(t, 3, win.Line)
}

func TestEvaluateLinesTieKeepsFirstLine(t *testing.T) {
	// Одинаковые тройки на линиях 2 и 3: остается линия 2
	grid := [][]string{
		{"BELL", "BELL", "BELL", "LEMON", "SEVEN"},
		{"SEVEN", "LEMON", "CHERRY", "SEVEN", "CHERRY"},
		{"BELL", "BELL", "BELL", "LEMON", "LEMON"},
	}

	win := evaluateLines(grid, (&stubConfig{}).PayoutTable())
	require.NotNil(t, win)
	assert.Equal(t, 2, win.Line)
}

func newService(balance int) (*serv, *stubUserRepo, *stubTxRepo, *stubStatsRepo) {
	userRepo := &stubUserRepo{balances: map[int]int{1: balance}}
	txRepo := &stubTxRepo{}
	statsRepo := &stubStatsRepo{}

	txManager := &stubTxManager{userRepo: userRepo, txRepo: txRepo}
	svc := NewSlotService(&stubConfig{}, userRepo, txRepo, statsRepo, txManager)
	return svc.(*serv), userRepo, txRepo, statsRepo
}

func TestSpinRejectsBadBet(t *testing.T) {
	svc, _, _, _ := newService(1000)

	_, err := svc.Spin(context.Background(), 1, model.SlotSpin{Bet: 0, ClientSeed: "client-seed"})
	assert.ErrorIs(t, err, service.ErrInvalidBet)

	_, err = svc.Spin(context.Background(), 1, model.SlotSpin{Bet: 5, ClientSeed: "client-seed"})
	assert.ErrorIs(t, err, service.ErrInvalidBet)

	_, err = svc.Spin(context.Background(), 1, model.SlotSpin{Bet: 20000, ClientSeed: "client-seed"})
	assert.ErrorIs(t, err, service.ErrInvalidBet)
}

func TestSpinInsufficientBalance(t *testing.T) {
	svc, userRepo, txRepo, _ := newService(5)

	_, err := svc.Spin(context.Background(), 1, model.SlotSpin{Bet: 10, ClientSeed: "client-seed"})
	require.ErrorIs(t, err, service.ErrInsufficientBalance)

	assert.Equal(t, 5, userRepo.balances[1])
	assert.Empty(t, txRepo.records)
}

func TestSpinBalanceAndJournal(t *testing.T) {
	svc, userRepo, txRepo, statsRepo := newService(1000)

	result, err := svc.Spin(context.Background(), 1, model.SlotSpin{Bet: 100, ClientSeed: "client-seed"})
	require.NoError(t, err)

	assert.Equal(t, 1000-100+result.WinAmount, result.Balance)
	assert.Equal(t, result.Balance, userRepo.balances[1])

	// Маржа применена на выплате
	if result.BestWin != nil {
		assert.Equal(t, 100*result.BestWin.Multiplier*96/100, result.WinAmount)
	} else {
		assert.Zero(t, result.WinAmount)
	}

	require.Len(t, txRepo.records, 1)
	assert.Equal(t, "slot", txRepo.records[0].Game)
	assert.Equal(t, result.SpinID, txRepo.records[0].RefID)
	assert.Equal(t, 100, txRepo.records[0].Wagered)
	assert.Equal(t, result.WinAmount, txRepo.records[0].Payout)

	assert.Equal(t, 1, statsRepo.Report().TotalPlays)

	// Сид раскрыт, обязательство сходится
	assert.NotEmpty(t, result.Fair.ServerSeed)
	assert.NotEmpty(t, result.Fair.ServerSeedHash)
	assert.Equal(t, "client-seed", result.Fair.ClientSeed)

	// Поле воспроизводится из раскрытой пары сидов
	replay := generateGrid(result.Fair.ServerSeed+"-"+result.Fair.ClientSeed+"-0", 3, 5, (&stubConfig{}).Symbols())
	assert.Equal(t, result.Grid, replay)
}

func TestSpinJournalFailureRollsBackBalance(t *testing.T) {
	svc, userRepo, txRepo, statsRepo := newService(1000)

	// Списание и начисление откатываются вместе с упавшей записью журнала
	txRepo.failures = 1
	_, err := svc.Spin(context.Background(), 1, model.SlotSpin{Bet: 100, ClientSeed: "client-seed"})
	require.Error(t, err)

	assert.Equal(t, 1000, userRepo.balances[1])
	assert.Empty(t, txRepo.records)
	assert.Zero(t, statsRepo.Report().TotalPlays)

	// Следующий спин проходит и проводится ровно один раз
	result, err := svc.Spin(context.Background(), 1, model.SlotSpin{Bet: 100, ClientSeed: "client-seed"})
	require.NoError(t, err)

	assert.Equal(t, 1000-100+result.WinAmount, result.Balance)
	require.Len(t, txRepo.records, 1)
	assert.Equal(t, result.SpinID, txRepo.records[0].RefID)
	assert.Equal(t, 1, statsRepo.Report().TotalPlays)
}

func TestSpinShortClientSeedReplaced(t *testing.T) {
	svc, _, _, _ := newService(1000)

	result, err := svc.Spin(context.Background(), 1, model.SlotSpin{Bet: 100, ClientSeed: "abc"})
	require.NoError(t, err)

	assert.NotEqual(t, "abc", result.Fair.ClientSeed)
	assert.GreaterOrEqual(t, len(result.Fair.ClientSeed), minClientSeedLen)
}
