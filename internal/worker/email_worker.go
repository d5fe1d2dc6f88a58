package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"portfolio-api/internal/logger"
	"portfolio-api/internal/mail"
)

// Deliverer sends one mail message; satisfied by *mail.Client.
type Deliverer interface {
	Send(ctx context.Context, msg mail.Message) error
}

// EmailWorker drains the welcome-mail queue and delivers through the mail
// provider. Decode and delivery failures are logged and the job is dropped
// without requeue; nothing upstream waits on this pipeline.
type EmailWorker struct {
	conn      *amqp.Connection
	mailer    Deliverer
	queueName string
	log       *logger.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewEmailWorker(conn *amqp.Connection, mailer Deliverer, queueName string, log *logger.Logger) *EmailWorker {
	return &EmailWorker{
		conn:      conn,
		mailer:    mailer,
		queueName: queueName,
		log:       log,
	}
}

func (w *EmailWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	ch, err := w.conn.Channel()
	if err != nil {
		cancel()
		return fmt.Errorf("open worker channel failed: %w", err)
	}

	_, err = ch.QueueDeclare(
		w.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("declare worker queue failed: %w", err)
	}

	deliveries, err := ch.Consume(
		w.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("consume queue failed: %w", err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()

		for {
			select {
			case <-workerCtx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				if err := w.handleDelivery(workerCtx, d.Body); err != nil {
					w.log.Warn().Err(err).Msg("welcome mail dropped")
					_ = d.Nack(false, false)
					continue
				}
				_ = d.Ack(false)
			}
		}
	}()

	return nil
}

func (w *EmailWorker) handleDelivery(ctx context.Context, body []byte) error {
	var msg mail.Message
	if err := json.Unmarshal(body, &msg); err != nil {
		return fmt.Errorf("decode mail job failed: %w", err)
	}
	if err := w.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("deliver mail failed: %w", err)
	}
	return nil
}

func (w *EmailWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
