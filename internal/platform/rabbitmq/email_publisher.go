package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"portfolio-api/internal/mail"
)

// EmailPublisher enqueues outbound mail jobs (currently only the welcome
// message sent after registration) on a durable queue. Delivery is
// fire-and-forget from the caller's point of view.
type EmailPublisher struct {
	conn      *amqp.Connection
	queueName string
}

func NewEmailPublisher(conn *amqp.Connection, queueName string) *EmailPublisher {
	return &EmailPublisher{
		conn:      conn,
		queueName: queueName,
	}
}

func (p *EmailPublisher) Publish(ctx context.Context, msg mail.Message) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open rabbitmq channel failed: %w", err)
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		p.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue failed: %w", err)
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal mail payload failed: %w", err)
	}

	if err := ch.PublishWithContext(
		ctx,
		"",
		p.queueName,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         payload,
			DeliveryMode: amqp.Persistent,
		},
	); err != nil {
		return fmt.Errorf("publish mail job failed: %w", err)
	}
	return nil
}
