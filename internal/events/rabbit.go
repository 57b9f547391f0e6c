package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

var errPublisherClosed = errors.New("rabbitmq publisher closed")

// Rabbit publishes JSON events to a durable topic exchange. A connection
// lost to a broker restart is redialed on the next publish.
type Rabbit struct {
	url      string
	exchange string

	mu     sync.Mutex // amqp channels are not safe for concurrent publishes
	conn   *amqp.Connection
	ch     *amqp.Channel
	closed bool
}

// NewRabbit dials url and declares exchange.
func NewRabbit(url, exchange string) (*Rabbit, error) {
	r := &Rabbit{url: url, exchange: exchange}
	if err := r.connect(); err != nil {
		return nil, err
	}
	log.Info().Str("exchange", exchange).Msg("rabbitmq publisher ready")
	return r, nil
}

// connect must be called with mu held (or before r is shared).
func (r *Rabbit) connect() error {
	conn, err := amqp.Dial(r.url)
	if err != nil {
		return fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(r.exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("declare exchange %s: %w", r.exchange, err)
	}

	r.conn, r.ch = conn, ch
	go watch(r.exchange, conn.NotifyClose(make(chan *amqp.Error, 1)))
	return nil
}

// watch logs an unexpected connection loss. A clean Close closes the
// channel without an error.
func watch(exchange string, closed <-chan *amqp.Error) {
	if err, ok := <-closed; ok && err != nil {
		log.Warn().Str("exchange", exchange).Str("reason", err.Reason).Int("code", err.Code).
			Msg("rabbitmq connection lost, reconnecting on next publish")
	}
}

func (r *Rabbit) healthy() bool {
	return r.conn != nil && !r.conn.IsClosed() && r.ch != nil && !r.ch.IsClosed()
}

func (r *Rabbit) Publish(ctx context.Context, routingKey string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", routingKey, err)
	}
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return errPublisherClosed
	}

	// 1. --- Redial if the broker went away ---
	if !r.healthy() {
		r.release()
		if err := r.connect(); err != nil {
			return fmt.Errorf("reconnect: %w", err)
		}
		log.Info().Str("exchange", r.exchange).Msg("rabbitmq publisher reconnected")
	}

	// 2. --- Publish, retrying once on a connection that died underneath us ---
	err = r.ch.PublishWithContext(ctx, r.exchange, routingKey, false, false, msg)
	if errors.Is(err, amqp.ErrClosed) {
		r.release()
		if cerr := r.connect(); cerr != nil {
			return fmt.Errorf("reconnect after %v: %w", err, cerr)
		}
		err = r.ch.PublishWithContext(ctx, r.exchange, routingKey, false, false, msg)
	}
	return err
}

// release drops the current connection. mu must be held.
func (r *Rabbit) release() {
	if r.ch != nil {
		_ = r.ch.Close()
	}
	if r.conn != nil {
		_ = r.conn.Close()
	}
	r.ch, r.conn = nil, nil
}

// Close stops the publisher for good; later publishes fail.
func (r *Rabbit) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.release()
}
