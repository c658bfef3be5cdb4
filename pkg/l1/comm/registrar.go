package comm

import (
	"context"

	fx "github.com/robomotive/diffbase.go/pkg/framework"
	"github.com/robomotive/diffbase.go/pkg/l1"
	"github.com/robomotive/diffbase.go/pkg/l1/msgs"
)

// Registrar is the controller-side endpoint of a packet transport.
// Inbound commands and events become loop messages; outbound events
// go straight to the transport.
type Registrar struct {
	pipe Pipe
}

// Init wires the Registrar to a packet transport.
func (r *Registrar) Init(rw PacketReadWriter) {
	r.pipe.ReadWriter = rw
	r.pipe.Handler = msgs.HandleTypedMsgFunc(r.handleTypedMsg)
}

func (r *Registrar) handleTypedMsg(ctx context.Context, msg fx.Message, typed *msgs.Typed) error {
	loopCtl := fx.LoopCtlFrom(ctx)
	switch typed.Kind() {
	case msgs.TypeIDKindCommand:
		loopCtl.PostMessage(&l1.CommandMsg{Command: &command{
			seq:  typed.Sequence,
			msg:  msg,
			pipe: &r.pipe,
		}})
	case msgs.TypeIDKindEvent:
		loopCtl.PostMessage(msg)
	default:
		return nil
	}
	loopCtl.TriggerNext()
	return nil
}

// SendEvent implements Registrar.
func (r *Registrar) SendEvent(ctx context.Context, msg fx.Message) error {
	return r.pipe.SendEventMsg(msg)
}

// AddToLoop implements LoopAdder.
func (r *Registrar) AddToLoop(loop *fx.Loop) {
	loop.Add(&r.pipe)
}

// command routes the reply back through the pipe it arrived on.
type command struct {
	seq  uint32
	msg  fx.Message
	pipe *Pipe
}

func (c *command) Msg() fx.Message { return c.msg }

func (c *command) Done(msg fx.Message) error {
	return c.pipe.SendCommandMsg(msg, c.seq)
}

// RegistrarMux fans events out to several registrars, so one
// controller can register with multiple registries at once.
type RegistrarMux struct {
	Registrars []l1.Registrar
}

// Add appends registrars to the mux.
func (r *RegistrarMux) Add(regs ...l1.Registrar) {
	r.Registrars = append(r.Registrars, regs...)
}

// SendEvent implements Registrar. Every registrar gets the event;
// failures are aggregated rather than short-circuited.
func (r *RegistrarMux) SendEvent(ctx context.Context, msg fx.Message) error {
	var errs fx.AggregatedError
	for _, reg := range r.Registrars {
		errs.Add(reg.SendEvent(ctx, msg))
	}
	return errs.Aggregate()
}

// AddToLoop implements LoopAdder.
func (r *RegistrarMux) AddToLoop(loop *fx.Loop) {
	for _, reg := range r.Registrars {
		if adder, ok := reg.(fx.LoopAdder); ok {
			loop.Add(adder)
		}
	}
}

// UnsupportedCommands runs at the lowest priority and rejects any
// command no other controller took.
type UnsupportedCommands struct {
}

// Control implements Controller.
func (c *UnsupportedCommands) Control(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		cmdMsg, ok := mctx.CurrentMessage().(*l1.CommandMsg)
		if !ok {
			return
		}
		mctx.MessageTaken()
		cmdMsg.Command.Done(msgs.NewCommandErr(msgs.ErrUnsupportedCommand))
	}))
	return nil
}

// AddToLoop implements LoopAdder.
func (c *UnsupportedCommands) AddToLoop(loop *fx.Loop) {
	loop.AddController(fx.PrLvIdle, c)
}
