package random

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
)

var ErrEmptySeed = errors.New("server seed is empty")

// HMACSource - проверяемый источник: HMAC-SHA256(serverSeed, player|nonce).
// Коммитмент seed публикуется заранее, после раскрытия seed любой может пересчитать результат
type HMACSource struct {
	seed []byte
}

func NewHMACSource(serverSeed string) (*HMACSource, error) {
	if serverSeed == "" {
		return nil, ErrEmptySeed
	}
	return &HMACSource{seed: []byte(serverSeed)}, nil
}

func (s *HMACSource) Draw(_ context.Context, in Input) (float64, error) {
	return Derive(s.seed, in), nil
}

// Commitment sha256 от seed в hex
func (s *HMACSource) Commitment() string {
	h := sha256.Sum256(s.seed)
	return hex.EncodeToString(h[:])
}

// Derive пересчет значения для аудита
func Derive(serverSeed []byte, in Input) float64 {
	mac := hmac.New(sha256.New, serverSeed)
	mac.Write([]byte(in.Player + "|" + strconv.FormatInt(in.Nonce, 10)))
	return unitFloat(mac.Sum(nil))
}
