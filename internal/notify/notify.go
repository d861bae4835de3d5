// Package notify publishes session events.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	KindEncoded = "encoded"
	KindDecoded = "decoded"
)

type Event struct {
	Kind        string `json:"kind"`
	SessionID   string `json:"session_id"`
	Name        string `json:"name"`
	BitCount    int    `json:"bit_count"`
	PackedBytes int    `json:"packed_bytes"`
	Checksum    uint64 `json:"checksum,omitempty"`
}

type Notifier interface {
	Notify(ctx context.Context, ev Event) error
	Close()
}

type nop struct{}

// Nop discards every event.
func Nop() Notifier { return nop{} }

func (nop) Notify(context.Context, Event) error { return nil }
func (nop) Close()                              {}

type mqttNotifier struct {
	client mqtt.Client
	topic  string
}

// NewMQTT connects to broker and publishes events as JSON on topic/<kind>.
func NewMQTT(broker, topic, clientID string) (Notifier, error) {
	opt := mqtt.NewClientOptions()
	opt.AddBroker(broker)
	opt.SetClientID(clientID)
	opt.SetConnectTimeout(10 * time.Second)
	client := mqtt.NewClient(opt)
	tok := client.Connect()
	if !tok.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("mqtt connect %s: timed out", broker)
	}
	if err := tok.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect %s: %w", broker, err)
	}
	return &mqttNotifier{client: client, topic: topic}, nil
}

// Topic is the subject an event of the given kind is published under.
func Topic(base, kind string) string { return base + "/" + kind }

func (n *mqttNotifier) Notify(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	tok := n.client.Publish(Topic(n.topic, ev.Kind), 0, false, payload)
	select {
	case <-tok.Done():
		return tok.Error()
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *mqttNotifier) Close() { n.client.Disconnect(250) }
