package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Boundary events the presentation layer listens for to re-query its
// views.
const (
	EventRaffleCreated  = "raffle_created"
	EventRaffleEdited   = "raffle_edited"
	EventTicketSold     = "ticket_sold"
	EventRaffleArchived = "raffle_archived"
	EventRaffleSelected = "raffle_selected"
)

type EventsPubSub struct {
	rdb     *redis.Client
	channel string
}

func NewEventsPubSub(rdb *redis.Client) *EventsPubSub {
	return &EventsPubSub{
		rdb:     rdb,
		channel: ChannelRaffleEvents(),
	}
}

// RaffleEvent is the wire form of a boundary signal.
type RaffleEvent struct {
	Type     string    `json:"type"`
	RaffleID uuid.UUID `json:"raffle_id"`
	TsUnix   int64     `json:"ts_unix"`
}

func (p *EventsPubSub) Publish(ctx context.Context, eventType string, raffleID uuid.UUID) error {
	msg := RaffleEvent{
		Type:     eventType,
		RaffleID: raffleID,
		TsUnix:   time.Now().Unix(),
	}

	b, _ := json.Marshal(msg)

	return p.rdb.Publish(ctx, p.channel, b).Err()
}

func (p *EventsPubSub) Subscribe(ctx context.Context, handler func(ctx context.Context, ev RaffleEvent)) error {
	sub := p.rdb.Subscribe(ctx, p.channel)
	defer sub.Close()

	ch := sub.Channel(redis.WithChannelSize(256))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var ev RaffleEvent
			if err := json.Unmarshal([]byte(m.Payload), &ev); err == nil && ev.Type != "" {
				handler(ctx, ev)
			}
		}
	}
}
