package kafka

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/ports"
)

var _ ports.IProducer = (*Producer)(nil)

const (
	headerEventType   = "event-type"
	headerContentType = "content-type"

	selectionEventType = "method_selection.v1"
)

// messageWriter — то, что продюсеру нужно от kafka.Writer.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer публикует события выбора метода в топик.
type Producer struct {
	w     messageWriter
	topic string
}

// NewProducer создаёт продюсера по конфигу. После использования вызови Close().
func NewProducer(cfg *Config) *Producer {
	return New(cfg).Producer()
}

// Send публикует событие: ключ — пара чисел (одна пара всегда в одной партиции), значение — JSON.
func (p *Producer) Send(ctx context.Context, key, value []byte) error {
	err := p.w.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
		Headers: []kafka.Header{
			{Key: headerEventType, Value: []byte(selectionEventType)},
			{Key: headerContentType, Value: []byte("application/json")},
		},
	})
	if err != nil {
		return fmt.Errorf("kafka publish to %q: %w", p.topic, err)
	}
	return nil
}

func (p *Producer) Close() error {
	return p.w.Close()
}
