package token

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

const refreshTokenBytes = 32

// NewSessionRefresh выдает refresh токен сессии кошелька и его отпечаток для хранилища.
// Отпечаток - HMAC-SHA256 с ключом sessionID: токен одной сессии не подходит к другой
func NewSessionRefresh(sessionID string) (refreshToken, fingerprint string, err error) {
	b := make([]byte, refreshTokenBytes)
	if _, err = rand.Read(b); err != nil {
		return "", "", err
	}

	refreshToken = base64.RawURLEncoding.EncodeToString(b)
	return refreshToken, sessionFingerprint(sessionID, refreshToken), nil
}

// VerifySessionRefresh сравнение за постоянное время
func VerifySessionRefresh(sessionID, refreshToken, fingerprint string) bool {
	return hmac.Equal(
		[]byte(sessionFingerprint(sessionID, refreshToken)),
		[]byte(fingerprint),
	)
}

func sessionFingerprint(sessionID, refreshToken string) string {
	mac := hmac.New(sha256.New, []byte(sessionID))
	mac.Write([]byte(refreshToken))
	return hex.EncodeToString(mac.Sum(nil))
}
