package memory

import (
	"context"
	"sync"
	"time"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/repository"
)

type authRepo struct {
	mtx      sync.Mutex
	sessions map[string]model.Session
	nonces   map[string]model.LoginNonce
}

func NewAuthRepository() repository.AuthRepository {
	return &authRepo{
		sessions: make(map[string]model.Session),
		nonces:   make(map[string]model.LoginNonce),
	}
}

func (r *authRepo) CreateSession(_ context.Context, session *model.Session) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.sessions[session.ID] = *session
	return nil
}

func (r *authRepo) GetSession(_ context.Context, sessionID string) (*model.Session, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok || time.Now().After(s.ExpiresAt) {
		return nil, model.ErrSessionNotFound
	}
	return &s, nil
}

func (r *authRepo) DeleteSession(_ context.Context, sessionID string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	delete(r.sessions, sessionID)
	return nil
}

// SaveNonce новый nonce заменяет прежний для того же адреса
func (r *authRepo) SaveNonce(_ context.Context, nonce *model.LoginNonce) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.nonces[nonce.Address] = *nonce
	return nil
}

func (r *authRepo) TakeNonce(_ context.Context, address string) (*model.LoginNonce, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	n, ok := r.nonces[address]
	if !ok {
		return nil, model.ErrNonceNotFound
	}
	delete(r.nonces, address)
	if time.Now().After(n.ExpiresAt) {
		return nil, model.ErrNonceNotFound
	}
	return &n, nil
}
