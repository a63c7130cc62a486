package auth

import (
	"context"
	"fmt"

	"lucky_wheel/internal/model"
	"lucky_wheel/pkg/token"
)

func (s *serv) Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error) {
	// Сессия по sessionID, просроченная считается отсутствующей
	session, err := s.authRepo.GetSession(ctx, sessionID)
	if err != nil {
		return "", err
	}

	// Верификация переданного refresh токена с хэшем из хранилища
	if !token.VerifySessionRefresh(session.ID, refreshToken, session.RefreshToken) {
		return "", fmt.Errorf("%w: invalid refresh token", model.ErrUnauthorized)
	}

	role := model.RolePlayer
	if s.owner != "" && session.Player == s.owner {
		role = model.RoleOwner
	}

	return token.GenerateAccessToken(
		session.Player,
		role,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
}

// Logout закрывает сессию, повторный вызов не ошибка
func (s *serv) Logout(ctx context.Context, sessionID string) error {
	return s.authRepo.DeleteSession(ctx, sessionID)
}
