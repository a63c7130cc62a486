package notify

import (
	"context"
	"encoding/json"
	"time"

	"lucky_wheel/internal/model"
	"lucky_wheel/pkg/ether"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// DefaultChannel канал Redis для событий колеса
const DefaultChannel = "lucky_wheel:events"

type publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// message - JSON, который получают подписчики канала
type message struct {
	Type   string    `json:"type"`
	Player string    `json:"player"`
	SpinID int64     `json:"spin_id"`
	Tier   string    `json:"tier,omitempty"`
	Amount string    `json:"amount"`
	At     time.Time `json:"at"`
}

// Redis публикует события через PUBLISH
type Redis struct {
	client  publisher
	channel string
	logger  logrus.FieldLogger
}

func NewRedis(client publisher, channel string, logger logrus.FieldLogger) *Redis {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Redis{client: client, channel: channel, logger: logger}
}

func (r *Redis) SpinResult(ctx context.Context, e model.SpinResultEvent) {
	r.publish(ctx, message{
		Type:   model.EventSpinResult,
		Player: e.Player,
		SpinID: e.SpinID,
		Tier:   e.Tier.String(),
		Amount: ether.Format(e.Payout),
		At:     e.At,
	})
}

func (r *Redis) PrizeClaimed(ctx context.Context, e model.PrizeClaimedEvent) {
	r.publish(ctx, message{
		Type:   model.EventPrizeClaimed,
		Player: e.Player,
		SpinID: e.SpinID,
		Amount: ether.Format(e.Amount),
		At:     e.At,
	})
}

func (r *Redis) publish(ctx context.Context, msg message) {
	b, err := json.Marshal(msg)
	if err != nil {
		r.logger.WithError(err).Error("marshal event")
		return
	}
	if err = r.client.Publish(ctx, r.channel, b).Err(); err != nil {
		r.logger.WithError(err).WithField("event", msg.Type).Warn("publish event")
	}
}
