// Package random - источники равномерных значений из [0,1) для колеса.
package random

import (
	"context"
	"encoding/binary"
)

// Input - данные вращения, от которых может зависеть значение
type Input struct {
	Player string
	Nonce  int64
}

// Source выдает одно значение из [0,1) на вращение
type Source interface {
	Draw(ctx context.Context, in Input) (float64, error)
}

// unitFloat берет старшие 53 бита, результат всегда строго меньше 1
func unitFloat(b []byte) float64 {
	return float64(binary.BigEndian.Uint64(b[:8])>>11) / (1 << 53)
}
