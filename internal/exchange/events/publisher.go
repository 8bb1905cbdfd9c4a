package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/nats-io/nats.go"
)

const DefaultSubjectPrefix = "exchange.requests"

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Nop is used when NATS is not configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

// conn は *nats.Conn の必要な部分だけ
type conn interface {
	Publish(subj string, data []byte) error
}

type NATSPublisher struct {
	nc     conn
	prefix string
}

func NewNATSPublisher(nc conn, prefix string) *NATSPublisher {
	prefix = strings.TrimSuffix(strings.TrimSpace(prefix), ".")
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return &NATSPublisher{nc: nc, prefix: prefix}
}

// Connect dials NATS and wraps the connection. The caller closes the returned conn.
func Connect(url, prefix string) (*NATSPublisher, *nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("gotyourback-backend"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Printf("[WARN] nats disconnected: %v", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Printf("[INFO] nats reconnected: %s", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return NewNATSPublisher(nc, prefix), nc, nil
}

// Subject: <prefix>.<request_id>
func (p *NATSPublisher) Subject(e Event) string {
	return p.prefix + "." + e.RequestID
}

func (p *NATSPublisher) Publish(ctx context.Context, e Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := p.nc.Publish(p.Subject(e), data); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", e.Kind, err)
	}
	return nil
}
