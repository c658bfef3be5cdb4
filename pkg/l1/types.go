package l1

import (
	"context"
	"fmt"
	"strings"

	fx "github.com/robomotive/diffbase.go/pkg/framework"
)

// ControllerRef identifies one robot-side (L1) controller.
type ControllerRef struct {
	// Type is the kind of robot, e.g. "base".
	Type string
	// ID distinguishes devices of the same type.
	ID string
}

// ParseControllerRef parses the "type/id" form.
func ParseControllerRef(s string) (ControllerRef, error) {
	items := strings.SplitN(s, "/", 2)
	if len(items) != 2 || items[0] == "" || items[1] == "" {
		return ControllerRef{}, fmt.Errorf("invalid controller ref %q", s)
	}
	return ControllerRef{Type: items[0], ID: items[1]}, nil
}

// Name renders the ref in its canonical "type/id" form.
func (r ControllerRef) Name() string {
	return r.Type + "/" + r.ID
}

// IsValid reports whether both parts of the ref are set.
func (r ControllerRef) IsValid() bool {
	return r.Type != "" && r.ID != ""
}

// ControllerMeta carries descriptive metadata published alongside a
// controller's registration.
type ControllerMeta struct {
	Description string            `json:"description,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
}

// ControllerInfo is a discovered controller: its ref plus metadata.
type ControllerInfo struct {
	Ref  ControllerRef
	Meta ControllerMeta
}

// Registrar announces an L1 controller to a registry and carries its
// outbound events.
type Registrar interface {
	// SendEvent publishes an event to whoever is listening upstream.
	SendEvent(context.Context, fx.Message) error
}

// Command is a received command waiting to be served.
type Command interface {
	Msg() fx.Message
	// Done replies to the sender. The reply is usually CommandOK,
	// CommandErr, or a query result.
	Done(fx.Message) error
}

// CommandMsg carries a Command through the loop as a message.
type CommandMsg struct {
	Command Command
}

// NewMessage implements Message.
func (m *CommandMsg) NewMessage() fx.Message { return &CommandMsg{} }

// Connector is the upstream (L2) side: it finds controllers and
// opens connections to them.
type Connector interface {
	// Discover enumerates registered controllers.
	Discover(context.Context) ([]ControllerInfo, error)
	// Connect opens a connection to the referenced controller.
	Connect(context.Context, ControllerRef) (ControllerConn, error)
}

// ControllerConn is an open connection to a controller.
type ControllerConn interface {
	// DoCommand sends a command and returns a future for its reply.
	DoCommand(fx.Message) CommandFuture
}

// Result is the outcome of a command.
type Result struct {
	Msg fx.Message
	Err error
}

// CommandFuture resolves to the result of a sent command.
type CommandFuture interface {
	ResultChan() <-chan Result
}
