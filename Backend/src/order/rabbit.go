package order

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Rabbit publishes order events to a topic exchange.
type Rabbit struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// NewRabbit connects to url and declares exchange. An empty url returns a nil
// *Rabbit, which publishes nothing.
func NewRabbit(url, exchange string) (*Rabbit, error) {
	if url == "" {
		return nil, nil
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	return &Rabbit{conn: conn, ch: ch, exchange: exchange}, nil
}

func (r *Rabbit) Publish(ctx context.Context, key string, body []byte) error {
	if r == nil || r.ch == nil {
		return nil
	}
	return r.ch.PublishWithContext(ctx, r.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
		Timestamp:   time.Now(),
	})
}

func (r *Rabbit) Close() {
	if r == nil {
		return
	}
	if r.ch != nil {
		_ = r.ch.Close()
	}
	if r.conn != nil {
		_ = r.conn.Close()
	}
}
