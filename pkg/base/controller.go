package base

import (
	"github.com/robomotive/diffbase.go/pkg/base/msgs"
	fx "github.com/robomotive/diffbase.go/pkg/framework"
	"github.com/robomotive/diffbase.go/pkg/l1"
	env "github.com/robomotive/diffbase.go/pkg/l1/env/controller"
	l1msgs "github.com/robomotive/diffbase.go/pkg/l1/msgs"
)

// Controller is the L1 controller for the differential drive base.
// It serves drive commands and queries, and publishes an odometry
// event for every feedback frame from the firmware.
type Controller struct {
	Env    *env.Env
	Driver *Driver
}

// NewController creates a Controller.
func NewController(e *env.Env, d *Driver) *Controller {
	return &Controller{Env: e, Driver: d}
}

// Name implements Named.
func (c *Controller) Name() string {
	return c.Env.Config.Info.Ref.Name()
}

// AddToLoop implements LoopAdder.
func (c *Controller) AddToLoop(loop *fx.Loop) {
	loop.Add(c.Driver)
	loop.AddController(fx.PrLvControl, c)
}

// Control implements Controller.
func (c *Controller) Control(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		switch msg := mctx.CurrentMessage().(type) {
		case *l1.CommandMsg:
			if reply := c.doCommand(msg.Command.Msg()); reply != nil {
				mctx.MessageTaken()
				msg.Command.Done(reply)
			}
		case *FeedbackMsg:
			mctx.MessageTaken()
			delta, rate := c.Driver.Odometer.Update(
				msg.Sensors.Timestamp, msg.Sensors.LeftTick, msg.Sensors.RightTick)
			c.Env.Registrar.SendEvent(cc.Context(), &msgs.BaseOdometry{
				DX:          delta.X,
				DY:          delta.Y,
				DHeading:    delta.Heading,
				RateX:       rate.X,
				RateY:       rate.Y,
				RateHeading: rate.Heading,
			})
		}
	}))
	return nil
}

func (c *Controller) doCommand(msg fx.Message) fx.Message {
	switch m := msg.(type) {
	case *msgs.BaseDrive:
		c.Driver.Commander.SetPointVelocity(m.Linear, m.Angular)
		c.Driver.Commander.ComputeCommand(m.Linear, m.Angular)
		return l1msgs.NewCommandOK()
	case *msgs.BaseRawDrive:
		c.Driver.Commander.SetCommand(float64(m.Speed), float64(m.Radius))
		return l1msgs.NewCommandOK()
	case *msgs.BaseOdomReset:
		c.Driver.Odometer.Reset()
		return l1msgs.NewCommandOK()
	case *msgs.BaseJointStateQuery:
		angleLeft, rateLeft, angleRight, rateRight := c.Driver.Odometer.WheelJointState()
		return &msgs.BaseJointState{
			AngleLeft:  angleLeft,
			RateLeft:   rateLeft,
			AngleRight: angleRight,
			RateRight:  rateRight,
		}
	case *msgs.BaseVelocityQuery:
		linear, angular := c.Driver.Commander.PointVelocity()
		return &msgs.BaseVelocity{Linear: linear, Angular: angular}
	}
	return nil
}
