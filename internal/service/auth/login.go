package auth

import (
	"context"
	"fmt"

	"lucky_wheel/internal/model"
	"lucky_wheel/pkg/address"
	"lucky_wheel/pkg/ethsig"
	"lucky_wheel/pkg/token"

	"github.com/sirupsen/logrus"
)

// Login проверяет подпись nonce кошельком и открывает сессию
func (s *serv) Login(ctx context.Context, addr, signature string) (*model.AuthData, error) {
	player, err := address.Normalize(addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidPlayer, err)
	}

	// Nonce удаляется вне транзакции, неудачная попытка его тоже сжигает
	nonce, err := s.authRepo.TakeNonce(ctx, player)
	if err != nil {
		return nil, err
	}

	sig, err := ethsig.DecodeHex(signature)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUnauthorized, err)
	}

	signer, err := ethsig.Recover([]byte(nonce.Message()), sig)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUnauthorized, err)
	}
	if signer != player {
		s.logger.WithFields(logrus.Fields{
			"player": player,
			"signer": signer,
		}).Warn("login signature mismatch")
		return nil, fmt.Errorf("%w: signature does not match address", model.ErrUnauthorized)
	}

	role := model.RolePlayer
	if s.owner != "" && player == s.owner {
		role = model.RoleOwner
	}

	var (
		sessionID    string
		refreshToken string
		accessToken  string
	)

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Генерация sessionID и refresh токена
		sessionID = generateSessionID()
		var fingerprint string
		refreshToken, fingerprint, err = token.NewSessionRefresh(sessionID)
		if err != nil {
			return err
		}

		// 2. Создать сессию
		err = s.authRepo.CreateSession(ctx, &model.Session{
			ID:           sessionID,
			Player:       player,
			RefreshToken: fingerprint,
			ExpiresAt:    s.now().Add(s.jwtConfig.RefreshTokenDuration()),
		})
		if err != nil {
			return err
		}

		// 3. Access токен
		accessToken, err = token.GenerateAccessToken(
			player,
			role,
			s.jwtConfig.AccessTokenSecretKey(),
			s.jwtConfig.AccessTokenDuration())
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"player": player,
		"role":   role,
	}).Info("player logged in")

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
