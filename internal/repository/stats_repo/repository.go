package stats_repo

import (
	"maps"
	"sync"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/repository"
	repoModel "lucky_wheel/internal/repository/stats_repo/model"
)

// defaultWindowSize размер окна для RTP по последним спинам
const defaultWindowSize = 500

// StateRepo статистика казны, хранится в памяти процесса
type StateRepo struct {
	mtx   sync.RWMutex
	state repoModel.HouseState
}

var _ repository.StatsRepository = (*StateRepo)(nil)

// NewStatsRepository windowSize <= 0 берет размер по умолчанию
func NewStatsRepository(windowSize int) *StateRepo {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &StateRepo{
		state: repoModel.HouseState{
			TierCounts: make(map[int]int64),
			SpinWindow: make([]repoModel.SpinResult, 0, windowSize),
			WindowSize: windowSize,
		},
	}
}

// UpdateSpin обновление статистики после спина
func (r *StateRepo) UpdateSpin(fee int64, tier model.PrizeTier, payout int64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	r.state.FeesCollected += fee
	r.state.PrizesAwarded += payout
	r.state.TierCounts[int(tier)]++
	r.state.CurrentRTP = rtp(r.state.PrizesAwarded, r.state.FeesCollected)

	// Добавляем спин в окно и поддерживаем его размер
	r.state.SpinWindow = append(r.state.SpinWindow, repoModel.SpinResult{Fee: fee, Payout: payout})
	if len(r.state.SpinWindow) > r.state.WindowSize {
		r.state.SpinWindow = r.state.SpinWindow[1:]
	}

	var windowFee, windowPayout int64
	for _, spin := range r.state.SpinWindow {
		windowFee += spin.Fee
		windowPayout += spin.Payout
	}
	r.state.WindowRTP = rtp(windowPayout, windowFee)
}

// UpdateClaim обновление статистики после выплаты
func (r *StateRepo) UpdateClaim(amount int64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalClaims++
	r.state.PayoutsDisbursed += amount
}

// HouseStats копия текущего состояния
func (r *StateRepo) HouseStats() model.HouseStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	counts := make(map[model.PrizeTier]int64, len(r.state.TierCounts))
	for tier, n := range r.state.TierCounts {
		counts[model.PrizeTier(tier)] = n
	}

	return model.HouseStats{
		TotalSpins:       r.state.TotalSpins,
		TotalClaims:      r.state.TotalClaims,
		FeesCollected:    r.state.FeesCollected,
		PrizesAwarded:    r.state.PrizesAwarded,
		PayoutsDisbursed: r.state.PayoutsDisbursed,
		TierCounts:       counts,
		RTP:              r.state.CurrentRTP,
		WindowRTP:        r.state.WindowRTP,
		WindowSize:       r.state.WindowSize,
	}
}

// State снимок внутреннего состояния
func (r *StateRepo) State() repoModel.HouseState {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	s := r.state
	s.TierCounts = maps.Clone(r.state.TierCounts)
	s.SpinWindow = append([]repoModel.SpinResult(nil), r.state.SpinWindow...)
	return s
}

func rtp(payout, fee int64) float64 {
	if fee == 0 {
		return 0
	}
	return float64(payout) / float64(fee) * 100
}
