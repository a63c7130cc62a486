// Package ledger хранит глобальное состояние колеса в памяти процесса:
// счетчик спинов, спины по id и записи игроков.
//
// Чтения идут под RLock и не ждут транзакций. Запись сериализуется
// менеджером транзакций (memory.TxManager), поэтому NextSpinID и RecordSpin
// внутри одной транзакции видят один и тот же счетчик.
package ledger

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/repository"
	"lucky_wheel/pkg/address"
)

// entry - запись игрока, создается при первом спине и не удаляется
type entry struct {
	spinIDs []int64
	total   int64
}

type Ledger struct {
	mtx     sync.RWMutex
	spins   []model.Spin // индекс = id спина
	players map[string]*entry
}

var _ repository.LedgerRepository = (*Ledger)(nil)

func New() *Ledger {
	return &Ledger{
		players: make(map[string]*entry),
	}
}

// CheckClaim проверки перед выплатой, порядок как у контракта
func CheckClaim(spin *model.Spin, player string) error {
	if spin.Player != player {
		return model.ErrNotOwner
	}
	if spin.Claimed {
		return model.ErrAlreadyClaimed
	}
	if spin.Payout == 0 {
		return model.ErrNothingToClaim
	}
	return nil
}

func normalize(player string) (string, error) {
	p, err := address.Normalize(player)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrInvalidPlayer, err)
	}
	return p, nil
}

func (l *Ledger) NextSpinID(_ context.Context) (int64, error) {
	l.mtx.RLock()
	defer l.mtx.RUnlock()
	return int64(len(l.spins)), nil
}

// RecordSpin добавляет спин со следующим id. Сумма выигрышей не меняется
func (l *Ledger) RecordSpin(_ context.Context, player string, tier model.PrizeTier, payout int64, at time.Time) (*model.Spin, error) {
	player, err := normalize(player)
	if err != nil {
		return nil, err
	}

	l.mtx.Lock()
	defer l.mtx.Unlock()

	spin := model.Spin{
		ID:        int64(len(l.spins)),
		Player:    player,
		Tier:      tier,
		Payout:    payout,
		CreatedAt: at,
	}
	l.spins = append(l.spins, spin)

	e, ok := l.players[player]
	if !ok {
		e = &entry{}
		l.players[player] = e
	}
	e.spinIDs = append(e.spinIDs, spin.ID)

	return &spin, nil
}

func (l *Ledger) GetSpin(_ context.Context, id int64) (*model.Spin, error) {
	l.mtx.RLock()
	defer l.mtx.RUnlock()

	if id < 0 || id >= int64(len(l.spins)) {
		return nil, model.ErrSpinNotFound
	}
	spin := l.spins[id]
	return &spin, nil
}

// MarkClaimed единственный путь изменения claimed и суммы выигрышей
func (l *Ledger) MarkClaimed(_ context.Context, id int64, at time.Time) error {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	return l.markClaimed(id, "", at)
}

// Claim проверка и отметка одним шагом. Возвращает сумму к выплате
func (l *Ledger) Claim(_ context.Context, player string, id int64) (int64, error) {
	player, err := normalize(player)
	if err != nil {
		return 0, err
	}

	l.mtx.Lock()
	defer l.mtx.Unlock()

	if err := l.markClaimed(id, player, time.Now()); err != nil {
		return 0, err
	}
	return l.spins[id].Payout, nil
}

// markClaimed пустой player пропускает проверку владельца
func (l *Ledger) markClaimed(id int64, player string, at time.Time) error {
	if id < 0 || id >= int64(len(l.spins)) {
		return model.ErrSpinNotFound
	}

	spin := &l.spins[id]
	owner := player
	if owner == "" {
		owner = spin.Player
	}
	if err := CheckClaim(spin, owner); err != nil {
		return err
	}

	spin.Claimed = true
	spin.ClaimedAt = at
	l.players[spin.Player].total += spin.Payout
	return nil
}

// PlayerSpins спины игрока в порядке создания и их общее количество
func (l *Ledger) PlayerSpins(_ context.Context, player string, page model.Page) ([]model.Spin, int, error) {
	player, err := normalize(player)
	if err != nil {
		return nil, 0, err
	}

	l.mtx.RLock()
	defer l.mtx.RUnlock()

	e, ok := l.players[player]
	if !ok {
		return []model.Spin{}, 0, nil
	}

	total := len(e.spinIDs)
	from := min(max(page.Offset, 0), total)
	to := total
	if page.Limit > 0 {
		to = min(from+page.Limit, total)
	}

	spins := make([]model.Spin, 0, to-from)
	for _, id := range e.spinIDs[from:to] {
		spins = append(spins, l.spins[id])
	}
	return spins, total, nil
}

func (l *Ledger) TotalWinnings(_ context.Context, player string) (int64, error) {
	player, err := normalize(player)
	if err != nil {
		return 0, err
	}

	l.mtx.RLock()
	defer l.mtx.RUnlock()

	if e, ok := l.players[player]; ok {
		return e.total, nil
	}
	return 0, nil
}

func (l *Ledger) SpinCount(_ context.Context) (int64, error) {
	l.mtx.RLock()
	defer l.mtx.RUnlock()
	return int64(len(l.spins)), nil
}

// TopWinners сортировка: сумма выигрышей, затем число спинов, затем адрес
func (l *Ledger) TopWinners(_ context.Context, limit int) ([]model.Winner, error) {
	l.mtx.RLock()
	winners := make([]model.Winner, 0, len(l.players))
	for player, e := range l.players {
		winners = append(winners, model.Winner{
			Player:        player,
			TotalWinnings: e.total,
			SpinCount:     len(e.spinIDs),
		})
	}
	l.mtx.RUnlock()

	sort.Slice(winners, func(i, j int) bool {
		a, b := winners[i], winners[j]
		if a.TotalWinnings != b.TotalWinnings {
			return a.TotalWinnings > b.TotalWinnings
		}
		if a.SpinCount != b.SpinCount {
			return a.SpinCount > b.SpinCount
		}
		return a.Player < b.Player
	})

	if limit > 0 && len(winners) > limit {
		winners = winners[:limit]
	}
	for i := range winners {
		winners[i].Rank = i + 1
	}
	return winners, nil
}
