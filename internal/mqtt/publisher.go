package mqtt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/AaronLay10/SaiScope/internal/events"
)

// publisher is what Publisher needs from Client.
type publisher interface {
	Publish(topic string, payload []byte) error
}

// Publisher forwards analysis events to "<prefix>/<event name>" topics. It
// implements events.Sink.
type Publisher struct {
	client publisher
	prefix string
}

// NewPublisher returns a Publisher writing through client.
func NewPublisher(client publisher, prefix string) *Publisher {
	return &Publisher{client: client, prefix: strings.TrimRight(prefix, "/")}
}

// Topic returns the topic an event named name is published to.
func (p *Publisher) Topic(name string) string {
	if p.prefix == "" {
		return name
	}
	return p.prefix + "/" + name
}

// Publish sends e as JSON.
func (p *Publisher) Publish(e events.Event) error {
	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", e.Name, err)
	}
	return p.client.Publish(p.Topic(e.Name), b)
}

var _ events.Sink = (*Publisher)(nil)
