package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RolePlayer = "player"
	RoleOwner  = "owner"
)

type Session struct {
	ID           string
	Player       string
	RefreshToken string
	ExpiresAt    time.Time
}

type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}

// LoginNonce - одноразовое сообщение для подписи кошельком
type LoginNonce struct {
	Address   string
	Nonce     string
	ExpiresAt time.Time
}

// PlayerClaims - claims access токена, Subject = адрес игрока
type PlayerClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Message текст, который кошелек подписывает через personal_sign
func (n LoginNonce) Message() string {
	return "Sign in to Lucky Wheel\nAddress: " + n.Address + "\nNonce: " + n.Nonce
}
