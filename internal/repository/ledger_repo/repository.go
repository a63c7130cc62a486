package ledger_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/repository"
	"lucky_wheel/pkg/address"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	stateTable    = "wheel_state"
	colStateID    = "id"
	colNextSpinID = "next_spin_id"
	stateRowID    = 1

	playersTable     = "players"
	colAddress       = "address"
	colTotalWinnings = "total_winnings"
	colSpinCount     = "spin_count"

	spinsTable   = "spins"
	colID        = "id"
	colPlayer    = "player"
	colTier      = "tier"
	colPayout    = "payout"
	colCreatedAt = "created_at"
	colClaimed   = "claimed"
	colClaimedAt = "claimed_at"
)

var spinColumns = []string{colID, colPlayer, colTier, colPayout, colCreatedAt, colClaimed, colClaimedAt}

type repo struct {
	db     *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

// NewLedgerRepository мутации должны выполняться внутри trm транзакции
func NewLedgerRepository(db *pgxpool.Pool) repository.LedgerRepository {
	return &repo{
		db:     db,
		getter: trmpgx.DefaultCtxGetter,
	}
}

func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.db)
}

// NextSpinID - id следующего спина. Строка счетчика блокируется до конца транзакции
func (r *repo) NextSpinID(ctx context.Context) (int64, error) {
	query := sq.Select(colNextSpinID).
		From(stateTable).
		Where(sq.Eq{colStateID: stateRowID}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var next int64
	if err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&next); err != nil {
		return 0, fmt.Errorf("select next spin id: %w", err)
	}

	return next, nil
}

// RecordSpin - сдвигает счетчик, создает запись игрока при первом спине и вставляет спин
func (r *repo) RecordSpin(ctx context.Context, player string, tier model.PrizeTier, payout int64, at time.Time) (*model.Spin, error) {
	player, err := address.Normalize(player)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidPlayer, err)
	}

	tr := r.conn(ctx)

	// 1. Забираем id
	counter := sq.Update(stateTable).
		Set(colNextSpinID, sq.Expr(colNextSpinID+" + 1")).
		Where(sq.Eq{colStateID: stateRowID}).
		Suffix("RETURNING " + colNextSpinID + " - 1").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := counter.ToSql()
	if err != nil {
		return nil, err
	}

	spin := model.Spin{Player: player, Tier: tier, Payout: payout, CreatedAt: at}
	if err = tr.QueryRow(ctx, sqlStr, args...).Scan(&spin.ID); err != nil {
		return nil, fmt.Errorf("advance spin counter: %w", err)
	}

	// 2. Запись игрока создается лениво
	upsert := sq.Insert(playersTable).
		Columns(colAddress, colSpinCount).
		Values(player, 1).
		Suffix("ON CONFLICT (" + colAddress + ") DO UPDATE SET " + colSpinCount + " = " + playersTable + "." + colSpinCount + " + 1").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err = upsert.ToSql()
	if err != nil {
		return nil, err
	}
	if _, err = tr.Exec(ctx, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("upsert player: %w", err)
	}

	// 3. Сам спин
	insert := sq.Insert(spinsTable).
		Columns(colID, colPlayer, colTier, colPayout, colCreatedAt).
		Values(spin.ID, spin.Player, int(spin.Tier), spin.Payout, spin.CreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err = insert.ToSql()
	if err != nil {
		return nil, err
	}
	if _, err = tr.Exec(ctx, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("insert spin: %w", err)
	}

	return &spin, nil
}

// GetSpin - спин по id, строка блокируется до конца транзакции
func (r *repo) GetSpin(ctx context.Context, id int64) (*model.Spin, error) {
	query := sq.Select(spinColumns...).
		From(spinsTable).
		Where(sq.Eq{colID: id}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	spin, err := scanSpin(r.conn(ctx).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSpinNotFound
		}
		return nil, err
	}

	return spin, nil
}

// MarkClaimed - отмечает выплату и добавляет сумму к выигрышам игрока
func (r *repo) MarkClaimed(ctx context.Context, id int64, at time.Time) error {
	tr := r.conn(ctx)

	query := sq.Update(spinsTable).
		Set(colClaimed, true).
		Set(colClaimedAt, at).
		Where(sq.Eq{colID: id, colClaimed: false}).
		Where(sq.Gt{colPayout: 0}).
		Suffix("RETURNING " + colPlayer + ", " + colPayout).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	var (
		player string
		payout int64
	)
	err = tr.QueryRow(ctx, sqlStr, args...).Scan(&player, &payout)
	if errors.Is(err, pgx.ErrNoRows) {
		return r.claimRejection(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("mark spin claimed: %w", err)
	}

	total := sq.Update(playersTable).
		Set(colTotalWinnings, sq.Expr(colTotalWinnings+" + ?", payout)).
		Where(sq.Eq{colAddress: player}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err = total.ToSql()
	if err != nil {
		return err
	}
	if _, err = tr.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("add winnings: %w", err)
	}

	return nil
}

// claimRejection - причина, по которой UPDATE не затронул строку
func (r *repo) claimRejection(ctx context.Context, id int64) error {
	spin, err := r.GetSpin(ctx, id)
	if err != nil {
		return err
	}
	if spin.Claimed {
		return model.ErrAlreadyClaimed
	}
	return model.ErrNothingToClaim
}

// PlayerSpins - история игрока по возрастанию id и общее количество спинов
func (r *repo) PlayerSpins(ctx context.Context, player string, page model.Page) ([]model.Spin, int, error) {
	player, err := address.Normalize(player)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", model.ErrInvalidPlayer, err)
	}

	tr := r.conn(ctx)

	countQuery := sq.Select("COUNT(*)").
		From(spinsTable).
		Where(sq.Eq{colPlayer: player}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err = tr.QueryRow(ctx, sqlStr, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count spins: %w", err)
	}

	query := sq.Select(spinColumns...).
		From(spinsTable).
		Where(sq.Eq{colPlayer: player}).
		OrderBy(colID + " ASC").
		PlaceholderFormat(sq.Dollar)
	if page.Offset > 0 {
		query = query.Offset(uint64(page.Offset))
	}
	if page.Limit > 0 {
		query = query.Limit(uint64(page.Limit))
	}

	sqlStr, args, err = query.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := tr.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("select spins: %w", err)
	}
	defer rows.Close()

	spins := make([]model.Spin, 0)
	for rows.Next() {
		spin, err := scanSpin(rows)
		if err != nil {
			return nil, 0, err
		}
		spins = append(spins, *spin)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return spins, total, nil
}

// TotalWinnings - сумма забранных выигрышей, 0 если игрок еще не крутил
func (r *repo) TotalWinnings(ctx context.Context, player string) (int64, error) {
	player, err := address.Normalize(player)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", model.ErrInvalidPlayer, err)
	}

	query := sq.Select(colTotalWinnings).
		From(playersTable).
		Where(sq.Eq{colAddress: player}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var total int64
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}

	return total, nil
}

func (r *repo) SpinCount(ctx context.Context) (int64, error) {
	query := sq.Select(colNextSpinID).
		From(stateTable).
		Where(sq.Eq{colStateID: stateRowID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// TopWinners - игроки по убыванию выигрышей
func (r *repo) TopWinners(ctx context.Context, limit int) ([]model.Winner, error) {
	query := sq.Select(colAddress, colTotalWinnings, colSpinCount).
		From(playersTable).
		OrderBy(colTotalWinnings+" DESC", colSpinCount+" DESC", colAddress+" ASC").
		PlaceholderFormat(sq.Dollar)
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	winners := make([]model.Winner, 0)
	for rows.Next() {
		w := model.Winner{Rank: len(winners) + 1}
		if err = rows.Scan(&w.Player, &w.TotalWinnings, &w.SpinCount); err != nil {
			return nil, err
		}
		winners = append(winners, w)
	}

	return winners, rows.Err()
}

func scanSpin(row pgx.Row) (*model.Spin, error) {
	var (
		spin      model.Spin
		tier      int16
		claimedAt *time.Time
	)
	err := row.Scan(&spin.ID, &spin.Player, &tier, &spin.Payout, &spin.CreatedAt, &spin.Claimed, &claimedAt)
	if err != nil {
		return nil, err
	}

	spin.Tier = model.PrizeTier(tier)
	if claimedAt != nil {
		spin.ClaimedAt = *claimedAt
	}
	return &spin, nil
}
