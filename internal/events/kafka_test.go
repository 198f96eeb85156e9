package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func header(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestKafka_Publish(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	w := &fakeWriter{}
	k := newKafka(w, "")

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	ev := AppointmentEvent{
		Kind:          KindCreated,
		AppointmentID: 42,
		CustomerID:    5,
		Start:         time.Date(2024, 3, 11, 13, 0, 0, 0, time.UTC),
		End:           time.Date(2024, 3, 11, 14, 0, 0, 0, time.UTC),
	}
	if err := k.Publish(ctx, ev); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(w.msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(w.msgs))
	}
	msg := w.msgs[0]
	if msg.Topic != "scheduling.appointment.created.v1" || string(msg.Key) != "5" {
		t.Fatalf("unexpected topic/key: %s %s", msg.Topic, msg.Key)
	}
	if header(msg, "event_id") == "" || header(msg, "event_type") != msg.Topic {
		t.Fatalf("missing event headers: %+v", msg.Headers)
	}
	if tp := header(msg, "traceparent"); tp != "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01" {
		t.Fatalf("unexpected traceparent %q", tp)
	}

	var body AppointmentEvent
	if err := json.Unmarshal(msg.Value, &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.AppointmentID != 42 || body.EventID != header(msg, "event_id") || body.OccurredAt.IsZero() {
		t.Fatalf("unexpected body: %+v", body)
	}

	if err := k.Close(); err != nil || !w.closed {
		t.Fatalf("expected writer closed")
	}
}

func TestKafka_PublishError(t *testing.T) {
	k := newKafka(&fakeWriter{err: errors.New("broker down")}, "core")

	err := k.Publish(context.Background(), AppointmentEvent{Kind: KindDeleted, CustomerID: 1})
	if err == nil {
		t.Fatalf("expected error")
	}
	if k.Topic(KindDeleted) != "core.appointment.deleted.v1" {
		t.Fatalf("unexpected topic %s", k.Topic(KindDeleted))
	}
}

func TestNewKafka_RequiresBrokers(t *testing.T) {
	if _, err := NewKafka(nil, "x"); err == nil {
		t.Fatalf("expected error without brokers")
	}
}
