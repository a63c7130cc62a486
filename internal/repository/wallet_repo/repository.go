package wallet_repo

import (
	"context"
	"errors"
	"slices"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table      = "wallets"
	colAddress = "address"
	colBalance = "balance"

	checkViolation = "23514"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewWalletRepository(dbc *pgxpool.Pool) repository.WalletRepository {
	return &repo{
		dbc: dbc,
	}
}

// LockAccounts - вставка отсутствующих строк и SELECT ... FOR UPDATE.
// Блокировки берутся строго по возрастанию адреса
func (r *repo) LockAccounts(ctx context.Context, accounts ...string) error {
	if len(accounts) == 0 {
		return nil
	}
	sorted := slices.Compact(slices.Sorted(slices.Values(accounts)))

	insert := sq.Insert(table).
		Columns(colAddress, colBalance).
		Suffix("ON CONFLICT (" + colAddress + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)
	for _, account := range sorted {
		insert = insert.Values(account, 0)
	}

	sqlStr, args, err := insert.ToSql()
	if err != nil {
		return err
	}

	conn := trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc)
	if _, err = conn.Exec(ctx, sqlStr, args...); err != nil {
		return err
	}

	lock := sq.Select(colAddress).
		From(table).
		Where(sq.Eq{colAddress: sorted}).
		OrderBy(colAddress).
		Suffix("FOR UPDATE").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err = lock.ToSql()
	if err != nil {
		return err
	}

	rows, err := conn.Query(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	_, err = pgx.CollectRows(rows, pgx.RowTo[string])

	return err
}

// GetBalance - получение баланса счета (игрока или казны).
// Внутри транзакции строка блокируется, 0 если счета нет
func (r *repo) GetBalance(ctx context.Context, account string) (int64, error) {
	// Формируем запрос
	query := sq.Select(colBalance).
		From(table).
		Where(sq.Eq{colAddress: account}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var balance int64
	err = trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}

	return balance, nil
}

// UpdateBalance - устанавливает баланс счета, создавая его при необходимости
func (r *repo) UpdateBalance(ctx context.Context, account string, balance int64) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colAddress, colBalance).
		Values(account, balance).
		Suffix("ON CONFLICT (" + colAddress + ") DO UPDATE SET " + colBalance + " = EXCLUDED." + colBalance).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		// CHECK (balance >= 0)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == checkViolation {
			return model.ErrInsufficientFunds
		}
		return err
	}

	return nil
}
