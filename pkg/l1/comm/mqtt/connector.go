package mqtt

import (
	"context"
	"strings"
	"time"

	"github.com/robomotive/diffbase.go/pkg/l1"
	"github.com/robomotive/diffbase.go/pkg/l1/comm"
)

// DefaultDiscoverTimeout bounds how long Discover listens for
// retained meta announcements.
const DefaultDiscoverTimeout = 500 * time.Millisecond

// Connector discovers and connects to L1 controllers through an
// MQTT broker.
type Connector struct {
	DiscoverTimeout time.Duration

	brokerURL string
}

// NewConnector creates a Connector.
func NewConnector(brokerURL string) (*Connector, error) {
	// Validate the URL up front so misconfiguration fails fast.
	if _, _, err := ParseURL(brokerURL); err != nil {
		return nil, err
	}
	return &Connector{
		DiscoverTimeout: DefaultDiscoverTimeout,
		brokerURL:       brokerURL,
	}, nil
}

// Discover implements Connector. The broker replays each
// controller's retained meta topic; everything seen within the
// timeout is reported.
func (c *Connector) Discover(ctx context.Context) ([]l1.ControllerInfo, error) {
	q, err := OpenQueue(c.brokerURL)
	if err != nil {
		return nil, err
	}
	defer q.Close()

	infoCh := make(chan l1.ControllerInfo, 16)
	q.Sub("+/+/meta", func(topic string, payload []byte) {
		if len(payload) == 0 {
			return
		}
		parts := strings.Split(topic, "/")
		if len(parts) != 3 {
			return
		}
		info := l1.ControllerInfo{Ref: l1.ControllerRef{Type: parts[0], ID: parts[1]}}
		select {
		case infoCh <- info:
		default:
		}
	})

	dur := c.DiscoverTimeout
	if dur == 0 {
		dur = DefaultDiscoverTimeout
	}
	deadline := time.After(dur)
	var res []l1.ControllerInfo
	for {
		select {
		case info := <-infoCh:
			res = append(res, info)
		case <-deadline:
			return res, nil
		case <-ctx.Done():
			return res, ctx.Err()
		}
	}
}

// Connect implements Connector.
func (c *Connector) Connect(ctx context.Context, ref l1.ControllerRef) (l1.ControllerConn, error) {
	q, err := OpenQueue(c.brokerURL)
	if err != nil {
		return nil, err
	}
	conn := &ControllerConn{Queue: q}
	conn.Init(ConnectorSide(q, ref))
	return conn, nil
}

// ControllerConn is a controller connection over MQTT.
type ControllerConn struct {
	comm.ControllerConn
	Queue *Queue
}
