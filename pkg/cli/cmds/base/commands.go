package base

import (
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robomotive/diffbase.go/pkg/base/msgs"
	"github.com/robomotive/diffbase.go/pkg/cli/sh"
	"github.com/robomotive/diffbase.go/pkg/geo"
)

var (
	// DriveCmd exposes BaseDrive command.
	DriveCmd = ishell.Cmd{
		Name:    "base.drive",
		Aliases: []string{"bd"},
		Help:    "LINEAR(m/s) [ANGULAR(degrees/s)]",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("LINEAR required"))
				return
			}
			var msg msgs.BaseDrive
			val, err := strconv.ParseFloat(c.Args[0], 64)
			if err != nil {
				c.Err(fmt.Errorf("Invalid LINEAR: %v", err))
				return
			}
			msg.Linear = val
			if len(c.Args) > 1 {
				val, err = strconv.ParseFloat(c.Args[1], 64)
				if err != nil {
					c.Err(fmt.Errorf("Invalid ANGULAR: %v", err))
					return
				}
				msg.Angular = geo.AngleFromDegrees(val).Radians()
			}
			sh.DoCommand(c, &msg)
		}),
	}

	// RawDriveCmd exposes BaseRawDrive command.
	RawDriveCmd = ishell.Cmd{
		Name:    "base.raw",
		Aliases: []string{"br"},
		Help:    "SPEED(mm/s) RADIUS(mm)",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("SPEED and RADIUS required"))
				return
			}
			var msg msgs.BaseRawDrive
			speed, err := strconv.ParseInt(c.Args[0], 10, 32)
			if err != nil {
				c.Err(fmt.Errorf("Invalid SPEED: %v", err))
				return
			}
			radius, err := strconv.ParseInt(c.Args[1], 10, 32)
			if err != nil {
				c.Err(fmt.Errorf("Invalid RADIUS: %v", err))
				return
			}
			msg.Speed, msg.Radius = int32(speed), int32(radius)
			sh.DoCommand(c, &msg)
		}),
	}

	// StopCmd stops the base.
	StopCmd = ishell.Cmd{
		Name:    "base.stop",
		Aliases: []string{"bs"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.BaseDrive{})
		}),
	}

	// JointStateCmd exposes BaseJointStateQuery command.
	JointStateCmd = ishell.Cmd{
		Name:    "base.joints",
		Aliases: []string{"bj"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.BaseJointStateQuery{})
		}),
	}

	// VelocityCmd exposes BaseVelocityQuery command.
	VelocityCmd = ishell.Cmd{
		Name:    "base.vel",
		Aliases: []string{"bv"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.BaseVelocityQuery{})
		}),
	}

	// OdomResetCmd exposes BaseOdomReset command.
	OdomResetCmd = ishell.Cmd{
		Name:    "base.reset",
		Aliases: []string{"brst"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.BaseOdomReset{})
		}),
	}
)

func init() {
	sh.AddCmds(
		&DriveCmd,
		&RawDriveCmd,
		&StopCmd,
		&JointStateCmd,
		&VelocityCmd,
		&OdomResetCmd,
	)
}
