package auth

import "time"

type NonceRequest struct {
	Address string `json:"address"`
}

type NonceResponse struct {
	Nonce     string    `json:"nonce"`
	Message   string    `json:"message"` // Подписать через personal_sign
	ExpiresAt time.Time `json:"expires_at"`
}

type LoginRequest struct {
	Address   string `json:"address"`
	Signature string `json:"signature"` // 0x + r||s||v
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}
