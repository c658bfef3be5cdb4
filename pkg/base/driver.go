package base

import (
	"context"
	"io"

	"github.com/golang/glog"

	fx "github.com/robomotive/diffbase.go/pkg/framework"
	l0 "github.com/robomotive/diffbase.go/pkg/l0/comm"
)

// Driver owns the link to the base firmware. It pumps feedback
// frames into the loop as messages and pushes the current drive
// command down the link once per iteration.
type Driver struct {
	Geometry  Geometry
	Odometer  *Odometer
	Commander *Commander

	stream *l0.Stream
}

// NewDriver creates a Driver over rw, usually a serial port or an
// in-process firmware simulator.
func NewDriver(geom Geometry, rw io.ReadWriter) *Driver {
	d := &Driver{
		Geometry:  geom,
		Odometer:  NewOdometer(geom),
		Commander: NewCommander(geom),
		stream:    l0.NewStream(rw),
	}
	d.stream.Handler = l0.HandleFeedbackFunc(d.handleFeedback)
	return d
}

// AddToLoop implements LoopAdder.
func (d *Driver) AddToLoop(loop *fx.Loop) {
	loop.AddRunnable(d)
	loop.AddController(fx.PrLvActuate, fx.ControlFunc(d.pushCommand))
}

// Run implements Runnable.
func (d *Driver) Run(ctx context.Context) error {
	defer d.Close()
	return d.stream.Run(ctx)
}

// Close closes the underlying link if it supports closing.
func (d *Driver) Close() error {
	if closer, ok := d.stream.ReadWriter.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (d *Driver) handleFeedback(ctx context.Context, sensors *l0.CoreSensors) {
	glog.V(3).Infof("feedback ts=%d lt=%d rt=%d", sensors.Timestamp, sensors.LeftTick, sensors.RightTick)
	loopCtl := fx.LoopCtlFrom(ctx)
	loopCtl.PostMessage(&FeedbackMsg{Sensors: sensors})
	loopCtl.TriggerNext()
}

func (d *Driver) pushCommand(cc fx.ControlContext) error {
	speed, radius := d.Commander.Command()
	return d.stream.Send(&l0.BaseControl{Speed: speed, Radius: radius})
}

// FeedbackMsg wraps a feedback frame as a loop message.
type FeedbackMsg struct {
	Sensors *l0.CoreSensors
}

// NewMessage implements Message.
func (m *FeedbackMsg) NewMessage() fx.Message { return &FeedbackMsg{} }
