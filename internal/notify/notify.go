// Package notify рассылает уведомления SpinResult и PrizeClaimed.
// Это уведомления, а не состояние: ошибки доставки логируются и не влияют на операцию.
package notify

import (
	"context"

	"lucky_wheel/internal/metrics"
	"lucky_wheel/internal/model"
	"lucky_wheel/pkg/ether"

	"github.com/sirupsen/logrus"
)

type Notifier interface {
	SpinResult(ctx context.Context, e model.SpinResultEvent)
	PrizeClaimed(ctx context.Context, e model.PrizeClaimedEvent)
}

// Multi отправляет событие всем получателям по очереди
type Multi []Notifier

func (m Multi) SpinResult(ctx context.Context, e model.SpinResultEvent) {
	for _, n := range m {
		n.SpinResult(ctx, e)
	}
}

func (m Multi) PrizeClaimed(ctx context.Context, e model.PrizeClaimedEvent) {
	for _, n := range m {
		n.PrizeClaimed(ctx, e)
	}
}

// Log пишет события в logrus
type Log struct {
	Logger logrus.FieldLogger
}

func (l Log) SpinResult(_ context.Context, e model.SpinResultEvent) {
	l.Logger.WithFields(logrus.Fields{
		"event":   model.EventSpinResult,
		"player":  e.Player,
		"spin_id": e.SpinID,
		"tier":    e.Tier.String(),
		"payout":  ether.Format(e.Payout),
	}).Info("spin resolved")
}

func (l Log) PrizeClaimed(_ context.Context, e model.PrizeClaimedEvent) {
	l.Logger.WithFields(logrus.Fields{
		"event":   model.EventPrizeClaimed,
		"player":  e.Player,
		"spin_id": e.SpinID,
		"amount":  ether.Format(e.Amount),
	}).Info("prize claimed")
}

// Metrics считает события в Prometheus
type Metrics struct{}

func (Metrics) SpinResult(_ context.Context, e model.SpinResultEvent) {
	metrics.RecordSpin(e.Tier.String(), e.Payout)
}

func (Metrics) PrizeClaimed(_ context.Context, e model.PrizeClaimedEvent) {
	metrics.RecordClaim(e.Amount)
}
