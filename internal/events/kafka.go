package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Kafka пишет события в топики "<prefix>.appointment.<kind>.v1".
// Ключ сообщения — ID клиента, поэтому события одного клиента идут по порядку.
type Kafka struct {
	w      messageWriter
	prefix string
}

func NewKafka(brokers []string, topicPrefix string) (*Kafka, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka brokers not configured")
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}
	return newKafka(w, topicPrefix), nil
}

func newKafka(w messageWriter, topicPrefix string) *Kafka {
	if topicPrefix == "" {
		topicPrefix = "scheduling"
	}
	return &Kafka{w: w, prefix: topicPrefix}
}

func (k *Kafka) Topic(kind Kind) string {
	return k.prefix + ".appointment." + string(kind) + ".v1"
}

func (k *Kafka) Publish(ctx context.Context, ev AppointmentEvent) error {
	if ev.EventID == "" {
		ev.EventID = uuid.NewString()
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	topic := k.Topic(ev.Kind)
	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(strconv.FormatInt(ev.CustomerID, 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(ev.EventID)},
			{Key: "event_type", Value: []byte(topic)},
		},
	}
	msg.Headers = InjectTraceHeaders(ctx, msg.Headers)

	if err := k.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write %s: %w", topic, err)
	}
	return nil
}

func (k *Kafka) Close() error {
	return k.w.Close()
}

// ReadyCheck проверяет, что первый брокер принимает соединения.
func ReadyCheck(brokers []string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if len(brokers) == 0 {
			return errors.New("kafka brokers not configured")
		}
		dialer := kafka.Dialer{Timeout: 2 * time.Second}
		conn, err := dialer.DialContext(ctx, "tcp", brokers[0])
		if err != nil {
			return err
		}
		_ = conn.Close()
		return nil
	}
}

// InjectTraceHeaders дописывает W3C trace context в заголовки сообщения.
func InjectTraceHeaders(ctx context.Context, headers []kafka.Header) []kafka.Header {
	carrier := &headerCarrier{headers: headers}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	return carrier.headers
}

type headerCarrier struct {
	headers []kafka.Header
}

func (c *headerCarrier) Get(key string) string {
	for _, h := range c.headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c *headerCarrier) Keys() []string {
	keys := make([]string, 0, len(c.headers))
	for _, h := range c.headers {
		keys = append(keys, h.Key)
	}
	return keys
}

func (c *headerCarrier) Set(key, value string) {
	for i := range c.headers {
		if c.headers[i].Key == key {
			c.headers[i].Value = []byte(value)
			return
		}
	}
	c.headers = append(c.headers, kafka.Header{Key: key, Value: []byte(value)})
}

var _ propagation.TextMapCarrier = (*headerCarrier)(nil)
