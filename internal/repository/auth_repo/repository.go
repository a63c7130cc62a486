package auth_repo

import (
	"context"
	"errors"
	"time"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "sessions"
	colSessionID   = "session_id"
	colAddress     = "address"
	colRefreshHash = "refresh_hash"
	colExpiredTime = "expired_time"

	noncesTable  = "login_nonces"
	colNonce     = "nonce"
	colExpiresAt = "expires_at"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewAuthRepository(dbc *pgxpool.Pool) repository.AuthRepository {
	return &repo{
		dbc: dbc,
	}
}

func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc)
}

// CreateSession - создает сессию в БД
// Принимает model.Session - (ID, Player, RefreshToken (хэш), ExpiresAt)
func (r *repo) CreateSession(ctx context.Context, session *model.Session) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colSessionID, colAddress, colRefreshHash, colExpiredTime).
		Values(session.ID, session.Player, session.RefreshToken, session.ExpiresAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	return err
}

// GetSession - непросроченная сессия по ID
func (r *repo) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	// Формируем запрос
	query := sq.Select(colSessionID, colAddress, colRefreshHash, colExpiredTime).
		From(table).
		Where(sq.Eq{colSessionID: sessionID}).
		Where(sq.Gt{colExpiredTime: time.Now()}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var s model.Session
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&s.ID, &s.Player, &s.RefreshToken, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	return &s, nil
}

// DeleteSession - удаляет сессию из БД
func (r *repo) DeleteSession(ctx context.Context, sessionID string) error {
	// Формируем запрос
	query := sq.Delete(table).
		Where(sq.Eq{colSessionID: sessionID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	return err
}

// SaveNonce - сохраняет nonce для входа, заменяя предыдущий
func (r *repo) SaveNonce(ctx context.Context, nonce *model.LoginNonce) error {
	query := sq.Insert(noncesTable).
		Columns(colAddress, colNonce, colExpiresAt).
		Values(nonce.Address, nonce.Nonce, nonce.ExpiresAt).
		Suffix("ON CONFLICT (" + colAddress + ") DO UPDATE SET " +
			colNonce + " = EXCLUDED." + colNonce + ", " +
			colExpiresAt + " = EXCLUDED." + colExpiresAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	return err
}

// TakeNonce - удаляет nonce и возвращает его, если он еще не истек
func (r *repo) TakeNonce(ctx context.Context, address string) (*model.LoginNonce, error) {
	query := sq.Delete(noncesTable).
		Where(sq.Eq{colAddress: address}).
		Suffix("RETURNING " + colAddress + ", " + colNonce + ", " + colExpiresAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var n model.LoginNonce
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&n.Address, &n.Nonce, &n.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNonceNotFound
		}
		return nil, err
	}

	if time.Now().After(n.ExpiresAt) {
		return nil, model.ErrNonceNotFound
	}
	return &n, nil
}
