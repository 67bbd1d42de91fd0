package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/ports"
)

const (
	// handleAttempts — сколько раз пробуем обработать событие, прежде чем пропустить его.
	handleAttempts = 3
	handleBackoff  = 200 * time.Millisecond
)

// Consumer читает события выбора метода из топика и передаёт их в use case.
type Consumer struct {
	r   *kafka.Reader
	uc  ports.ITrainerUseCase
	log *slog.Logger
}

// NewConsumer создаёт консьюмера по конфигу, use case и логгеру. После использования вызови Close().
func NewConsumer(cfg *Config, uc ports.ITrainerUseCase, log *slog.Logger) *Consumer {
	c := New(cfg).Consumer()
	c.uc = uc
	c.log = log
	return c
}

// Run читает сообщения до отмены ctx. Битое сообщение коммитится и пропускается;
// ошибка обработки повторяется handleAttempts раз, после чего сообщение тоже коммитится, чтобы не блокировать партицию.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		msg, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped", "error", err)
			return err
		}

		var ev domain.SelectionEvent
		if err := json.Unmarshal(msg.Value, &ev); err != nil {
			c.log.Warn("kafka unmarshal error, skip", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
		} else if err := c.handle(ctx, ev); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka handle failed, skip", "error", err, "key", string(msg.Key), "offset", msg.Offset)
		}

		if err := c.r.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped (commit)", "error", err)
			return err
		}
	}
}

// handle вызывает use case с повторами и растущей паузой.
func (c *Consumer) handle(ctx context.Context, ev domain.SelectionEvent) error {
	var err error
	for attempt := 1; attempt <= handleAttempts; attempt++ {
		if err = c.uc.HandleSelectionEvent(ctx, ev); err == nil {
			return nil
		}
		if attempt == handleAttempts {
			break
		}
		c.log.Warn("kafka handle error, retry", "attempt", attempt, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * handleBackoff):
		}
	}
	return err
}

// Close закрывает консьюмера.
func (c *Consumer) Close() error {
	return c.r.Close()
}
