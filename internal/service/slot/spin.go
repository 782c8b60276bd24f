package slot

import (
	"casino_platform/internal/config"
	"casino_platform/internal/model"
	"casino_platform/internal/service"
	servModel "casino_platform/internal/service/slot/model"
	"context"
	"errors"

	"casino_platform/pkg/fair"

	"github.com/google/uuid"
)

const minClientSeedLen = 8

// Spin выполняет спин: детерминированно заполняет поле от пары сидов,
// оценивает линии выплат и проводит списание/начисление одной транзакцией.
// Вся случайность идет через fair: сид публикуется вместе с хэшем,
// клиент может пересчитать поле после спина
func (s *serv) Spin(ctx context.Context, userID int, req model.SlotSpin) (*model.SlotSpinResult, error) {
	// Валидация ставки
	if req.Bet <= 0 || req.Bet < s.cfg.MinBet() || req.Bet > s.cfg.MaxBet() {
		return nil, service.ErrInvalidBet
	}

	// Пара сидов и обязательство
	serverSeed, err := fair.NewServerSeed()
	if err != nil {
		return nil, err
	}
	serverSeedHash, publicHash := fair.Commitment(serverSeed)

	clientSeed := req.ClientSeed
	if len(clientSeed) < minClientSeedLen {
		clientSeed, err = fair.NewClientSeed()
		if err != nil {
			return nil, err
		}
	}

	// Генерация поля и оценка линий до транзакции: чистые вычисления
	grid := generateGrid(serverSeed+"-"+clientSeed+"-0", s.cfg.Rows(), s.cfg.Cols(), s.cfg.Symbols())
	bestWin := evaluateLines(grid, s.cfg.PayoutTable())

	winAmount := 0
	if bestWin != nil {
		// Маржа казино применяется на выплате, не на весах
		winAmount = req.Bet * bestWin.Multiplier * (100 - s.cfg.HouseEdgePercent()) / 100
	}

	spinID := uuid.NewString()

	// Начало транзакции где выполняется списание ставки и начисление выигрыша
	var balance int
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err = s.userRepo.GetBalance(txCtx, userID)
		if err != nil {
			return errors.New("failed to get user balance")
		}
		if balance < req.Bet {
			return service.ErrInsufficientBalance
		}

		balance = balance - req.Bet + winAmount
		if err := s.userRepo.UpdateBalance(txCtx, userID, balance); err != nil {
			return errors.New("failed to update user balance")
		}

		err = s.txRepo.RecordTransaction(txCtx, &model.Transaction{
			UserID:  userID,
			Game:    "slot",
			RefID:   spinID,
			Wagered: req.Bet,
			Payout:  winAmount,
		})
		if err != nil {
			return errors.New("failed to record spin transaction")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Обновляем статистику
	s.statsRepo.Record(req.Bet, winAmount)

	return &model.SlotSpinResult{
		SpinID:    spinID,
		Grid:      grid,
		BestWin:   bestWin,
		WinAmount: winAmount,
		Balance:   balance,
		Fair: model.SlotProof{
			ServerSeed:     serverSeed,
			ServerSeedHash: serverSeedHash,
			PublicHash:     publicHash,
			ClientSeed:     clientSeed,
		},
	}, nil
}

// generateGrid заполняет поле rows x cols построчно.
// Символ ячейки выбирается по кумулятивным весам через fair.Int:
// порядок символов в таблице фиксирован, иначе выбор не воспроизвести
func generateGrid(seed string, rows, cols int, symbols []config.SymbolWeight) [][]string {
	totalWeight := 0
	for _, s := range symbols {
		totalWeight += s.Weight
	}

	grid := make([][]string, rows)
	idx := 0
	for r := 0; r < rows; r++ {
		grid[r] = make([]string, cols)
		for c := 0; c < cols; c++ {
			grid[r][c] = pickSymbol(fair.Int(seed, idx, totalWeight), symbols)
			idx++
		}
	}

	return grid
}

func pickSymbol(roll int, symbols []config.SymbolWeight) string {
	cumulative := 0
	for _, s := range symbols {
		cumulative += s.Weight
		if roll < cumulative {
			return s.Symbol
		}
	}
	// Недостижимо при roll < суммы весов
	return symbols[len(symbols)-1].Symbol
}

// evaluateLines ищет лучшее совпадение по всем линиям выплат.
// Сначала проверяется каре по линии, затем три подряд с начала и
// с конца. Побеждает наибольший множитель, при равенстве - первая
// найденная линия
func evaluateLines(grid [][]string, payouts map[string]map[int]int) *model.SlotWin {
	rows := len(grid)
	if rows == 0 {
		return nil
	}
	cols := len(grid[0])

	var best *model.SlotWin

	for lineIdx, line := range servModel.PayLines {
		symbols := make([]string, 0, len(line))
		for _, cell := range line {
			if cell.Row < 0 || cell.Row >= rows || cell.Col < 0 || cell.Col >= cols {
				continue
			}
			symbols = append(symbols, grid[cell.Row][cell.Col])
		}
		// Линия не ложится на поле
		if len(symbols) < 3 {
			continue
		}

		win := matchLine(symbols, payouts)
		if win == nil {
			continue
		}
		win.Line = lineIdx + 1

		if best == nil || win.Multiplier > best.Multiplier {
			best = win
		}
	}

	return best
}

func matchLine(symbols []string, payouts map[string]map[int]int) *model.SlotWin {
	full := true
	for _, s := range symbols[1:] {
		if s != symbols[0] {
			full = false
			break
		}
	}
	if full {
		if win := lookupWin(symbols[0], len(symbols), payouts); win != nil {
			return win
		}
	}

	// Три подряд с начала линии
	if symbols[0] == symbols[1] && symbols[1] == symbols[2] {
		if win := lookupWin(symbols[0], 3, payouts); win != nil {
			return win
		}
	}

	// Три подряд с конца линии
	n := len(symbols)
	if n >= 4 && symbols[n-1] == symbols[n-2] && symbols[n-2] == symbols[n-3] {
		if win := lookupWin(symbols[n-1], 3, payouts); win != nil {
			return win
		}
	}

	return nil
}

func lookupWin(symbol string, count int, payouts map[string]map[int]int) *model.SlotWin {
	table, ok := payouts[symbol]
	if !ok {
		return nil
	}
	mult, ok := table[count]
	if !ok {
		return nil
	}

	return &model.SlotWin{
		Symbol:     symbol,
		Count:      count,
		Multiplier: mult,
	}
}
