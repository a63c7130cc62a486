// Package memory - реализации репозиториев в памяти процесса (STORAGE_DRIVER=memory и тесты).
package memory

import (
	"context"
	"sync"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type txKey struct{}

// TxManager сериализует транзакции одним мьютексом.
// Вложенный Do выполняется в уже открытой транзакции.
// Отката нет: сервисы выполняют все проверки до первой мутации
type TxManager struct {
	mtx sync.Mutex
}

var _ trm.Manager = (*TxManager)(nil)

func NewTxManager() *TxManager {
	return &TxManager{}
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	m.mtx.Lock()
	defer m.mtx.Unlock()

	return fn(context.WithValue(ctx, txKey{}, struct{}{}))
}

func (m *TxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}
