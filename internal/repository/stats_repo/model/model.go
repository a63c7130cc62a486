package model

// HouseState состояние казны с момента старта процесса. Суммы в gwei
type HouseState struct {
	TotalSpins  int64 // Сколько всего спинов сделано
	TotalClaims int64 // Сколько выигрышей забрано

	FeesCollected    int64 // Сумма всех взносов
	PrizesAwarded    int64 // Сумма выигрышей, назначенных спинами
	PayoutsDisbursed int64 // Сумма фактически выплаченного

	TierCounts map[int]int64 // Количество исходов по id PrizeTier

	CurrentRTP float64 // PrizesAwarded / FeesCollected * 100

	SpinWindow []SpinResult // Окно последних спинов для анализа
	WindowRTP  float64      // RTP в окне последних спинов
	WindowSize int          // Размер окна
}

// Результат спина для окна
type SpinResult struct {
	Fee    int64
	Payout int64
}
