package tx_repo

import (
	"casino_platform/internal/model"
	"casino_platform/internal/repository"
	"context"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "transactions"
	colID        = "id"
	colUserID    = "user_id"
	colGame      = "game"
	colRefID     = "ref_id"
	colWagered   = "wagered"
	colPayout    = "payout"
	colCreatedAt = "created_at"
)

// Запросы идут через CtxGetter: запись журнала коммитится или
// откатывается вместе с изменением баланса
type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewTransactionRepository(dbc *pgxpool.Pool) repository.TransactionRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// RecordTransaction - пишет запись журнала операций.
// Вызывается один раз на расчет раунда, спин или депозит
func (r *repo) RecordTransaction(ctx context.Context, tx *model.Transaction) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colUserID, colGame, colRefID, colWagered, colPayout).
		Values(tx.UserID, tx.Game, tx.RefID, tx.Wagered, tx.Payout).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// ListByUser - последние записи журнала пользователя
func (r *repo) ListByUser(ctx context.Context, userID int, limit int) ([]model.Transaction, error) {
	// Формируем запрос
	query := sq.Select(colID, colUserID, colGame, colRefID, colWagered, colPayout, colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCreatedAt + " DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Transaction
	for rows.Next() {
		var tx model.Transaction
		err = rows.Scan(&tx.ID, &tx.UserID, &tx.Game, &tx.RefID, &tx.Wagered, &tx.Payout, &tx.CreatedAt)
		if err != nil {
			return nil, err
		}
		result = append(result, tx)
	}

	return result, rows.Err()
}
