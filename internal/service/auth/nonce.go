package auth

import (
	"context"
	"fmt"

	"lucky_wheel/internal/model"
	"lucky_wheel/pkg/address"

	"github.com/google/uuid"
)

// Nonce выдает одноразовое сообщение для подписи. Новый nonce заменяет прежний
func (s *serv) Nonce(ctx context.Context, addr string) (*model.LoginNonce, error) {
	player, err := address.Normalize(addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidPlayer, err)
	}

	nonce := &model.LoginNonce{
		Address:   player,
		Nonce:     uuid.NewString(),
		ExpiresAt: s.now().Add(nonceTTL),
	}
	if err = s.authRepo.SaveNonce(ctx, nonce); err != nil {
		return nil, err
	}

	return nonce, nil
}
