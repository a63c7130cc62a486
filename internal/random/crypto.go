package random

import (
	"context"
	"crypto/rand"
	"fmt"
)

type cryptoSource struct{}

// NewCryptoSource источник на системном CSPRNG, используется по умолчанию
func NewCryptoSource() Source {
	return cryptoSource{}
}

func (cryptoSource) Draw(_ context.Context, _ Input) (float64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read entropy: %w", err)
	}
	return unitFloat(b[:]), nil
}
