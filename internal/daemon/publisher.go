package daemon

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/pageforge/pageforge/internal/logfields"
)

const (
	eventStream   = "PAGEFORGE"
	eventSubjects = "pageforge.events.>"
	eventSubject  = "pageforge.events.generation"
)

// GenerationEvent is the message published after each generation run.
type GenerationEvent struct {
	PageName  string    `json:"pageName"`
	PageType  string    `json:"pageType,omitempty"`
	Framework string    `json:"framework,omitempty"`
	Outcome   string    `json:"outcome"`
	TotalSize int       `json:"totalSize"`
	Score     int       `json:"score"`
	Timestamp time.Time `json:"timestamp"`
}

// EventPublisher publishes generation events to a NATS JetStream stream.
type EventPublisher struct {
	conn *nats.Conn
	js   jetstream.JetStream
}

// NewEventPublisher connects to NATS and ensures the event stream exists.
func NewEventPublisher(url string) (*EventPublisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("create JetStream context: %w", err)
	}

	p := &EventPublisher{conn: conn, js: js}
	if err := p.initStream(); err != nil {
		conn.Close()
		return nil, err
	}

	slog.Info("NATS publisher initialized",
		logfields.URL(url),
		slog.String("subject", eventSubject))
	return p, nil
}

// initStream creates or updates the stream carrying generation events.
func (p *EventPublisher) initStream() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := p.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        eventStream,
		Description: "PageForge generation events",
		Subjects:    []string{eventSubjects},
		MaxBytes:    100 * 1024 * 1024,
	})
	if err != nil {
		return fmt.Errorf("ensure event stream: %w", err)
	}
	return nil
}

// PublishGeneration publishes one generation event.
func (p *EventPublisher) PublishGeneration(event GenerationEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	event.Timestamp = time.Now()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal generation event: %w", err)
	}

	if _, err := p.js.Publish(ctx, eventSubject, data); err != nil {
		return fmt.Errorf("publish generation event: %w", err)
	}

	slog.Debug("Published generation event",
		logfields.Page(event.PageName),
		slog.String("outcome", event.Outcome))
	return nil
}

// Close closes the NATS connection.
func (p *EventPublisher) Close() error {
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
