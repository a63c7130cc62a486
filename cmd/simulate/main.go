// Command simulate прогоняет N спинов на памяти и печатает частоты исходов и RTP.
package main

import (
	"context"
	"flag"
	"time"

	"lucky_wheel/internal/config/env"
	"lucky_wheel/internal/ledger"
	"lucky_wheel/internal/model"
	"lucky_wheel/internal/notify"
	"lucky_wheel/internal/random"
	"lucky_wheel/internal/repository/memory"
	"lucky_wheel/internal/repository/stats_repo"
	"lucky_wheel/internal/service/treasury"
	"lucky_wheel/internal/service/wheel"
	"lucky_wheel/pkg/ether"

	"github.com/sirupsen/logrus"
)

const simPlayer = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

func main() {
	n := flag.Int("n", 100_000, "number of spins")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
	claim := flag.Bool("claim", true, "claim every winning spin")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	game, err := env.NewGameConfig()
	if err != nil {
		logger.WithError(err).Fatal("game config")
	}
	paytable := game.Paytable()

	// Сервисы пишут каждую операцию, для симуляции это шум
	quiet := logrus.New()
	quiet.SetLevel(logrus.ErrorLevel)

	ctx := context.Background()
	tx := memory.NewTxManager()
	stats := stats_repo.NewStatsRepository(0)
	tr := treasury.NewTreasuryService(memory.NewWalletRepository(), tx, 0, quiet)

	w := wheel.NewWheelService(wheel.Deps{
		Paytable:   paytable,
		LedgerRepo: ledger.New(),
		StatsRepo:  stats,
		Treasury:   tr,
		Source:     random.NewSeededSource(*seed),
		Notifier:   notify.Multi{},
		TxManager:  tx,
		Logger:     quiet,
	})

	stake := paytable.SpinCost * int64(*n)
	if _, err = tr.Deposit(ctx, simPlayer, stake); err != nil {
		logger.WithError(err).Fatal("deposit")
	}
	if _, err = tr.Fund(ctx, stake); err != nil {
		logger.WithError(err).Fatal("fund house")
	}

	for i := 0; i < *n; i++ {
		spin, err := w.Spin(ctx, model.SpinRequest{Player: simPlayer, Fee: paytable.SpinCost})
		if err != nil {
			logger.WithError(err).Fatal("spin")
		}
		if *claim && spin.Claimable() {
			if _, err = w.Claim(ctx, model.ClaimRequest{Player: simPlayer, SpinID: spin.ID}); err != nil {
				logger.WithError(err).Fatal("claim")
			}
		}
	}

	result := stats.HouseStats()
	for _, prize := range paytable.Prizes {
		count := result.TierCounts[prize.Tier]
		logger.WithFields(logrus.Fields{
			"tier":     prize.Tier.String(),
			"count":    count,
			"observed": float64(count) / float64(*n),
			"expected": paytable.Probability(prize.Tier),
		}).Info("tier frequency")
	}

	logger.WithFields(logrus.Fields{
		"spins":        *n,
		"seed":         *seed,
		"fees":         ether.Format(result.FeesCollected),
		"awarded":      ether.Format(result.PrizesAwarded),
		"disbursed":    ether.Format(result.PayoutsDisbursed),
		"rtp":          result.RTP,
		"expected_rtp": paytable.ExpectedRTP(),
	}).Info("simulation finished")
}
