package converter

import (
	dto "casino_platform/internal/api/dto/payment"
	"casino_platform/internal/model"
)

func ToHistoryResponse(txs []model.Transaction) dto.HistoryResponse {
	result := make([]dto.Transaction, len(txs))
	for i, tx := range txs {
		result[i] = dto.Transaction{
			ID:        tx.ID,
			Game:      tx.Game,
			RefID:     tx.RefID,
			Wagered:   tx.Wagered,
			Payout:    tx.Payout,
			CreatedAt: tx.CreatedAt,
		}
	}
	return dto.HistoryResponse{Transactions: result}
}
