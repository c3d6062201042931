package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
)

const (
	EventBookingCreated = "booking.created"
	EventBookingChanged = "booking.changed"
)

type BookingEvent struct {
	Type       string    `json:"type"`
	UserID     int       `json:"userId"`
	RoomID     int       `json:"roomId"`
	HotelID    int       `json:"hotelId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// RabbitPublisher publishes booking events to a durable queue. With an
// empty URL it only logs.
type RabbitPublisher struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	queue  string
	mu     sync.Mutex
	logger logger.Logger
}

func NewRabbitPublisher(url, queue string, logger logger.Logger) (*RabbitPublisher, error) {
	p := &RabbitPublisher{queue: queue, logger: logger}
	if url == "" {
		logger.Warn("rabbitmq url is empty, booking events disabled")
		return p, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}

	p.conn = conn
	p.ch = ch
	return p, nil
}

func (p *RabbitPublisher) NotifyBookingCreated(ctx context.Context, user *domain.User, room *domain.Room) {
	p.publish(ctx, newBookingEvent(EventBookingCreated, user, room))
}

func (p *RabbitPublisher) NotifyBookingChanged(ctx context.Context, user *domain.User, room *domain.Room) {
	p.publish(ctx, newBookingEvent(EventBookingChanged, user, room))
}

func (p *RabbitPublisher) Close() error {
	if p.conn == nil {
		return nil
	}
	if err := p.ch.Close(); err != nil {
		return fmt.Errorf("close channel: %w", err)
	}
	return p.conn.Close()
}

func (p *RabbitPublisher) publish(ctx context.Context, event BookingEvent) {
	if p.ch == nil {
		p.logger.Debug("booking event skipped (publisher disabled)", logger.String("type", event.Type))
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to marshal booking event", logger.String("error", err.Error()))
		return
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		Body:         body,
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()

	if err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		p.logger.Error("failed to publish booking event",
			logger.String("type", event.Type),
			logger.Int("user_id", event.UserID),
			logger.String("error", err.Error()),
		)
	}
}

func newBookingEvent(typ string, user *domain.User, room *domain.Room) BookingEvent {
	return BookingEvent{
		Type:       typ,
		UserID:     user.ID,
		RoomID:     room.ID,
		HotelID:    room.HotelID,
		OccurredAt: time.Now().UTC(),
	}
}
