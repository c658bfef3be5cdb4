package main

//go-build: CGO_ENABLED=0

import (
	"flag"

	"github.com/robomotive/diffbase.go/pkg/base"
	fx "github.com/robomotive/diffbase.go/pkg/framework"
	"github.com/robomotive/diffbase.go/pkg/l1"
	env "github.com/robomotive/diffbase.go/pkg/l1/env/controller"
)

func init() {
	env.SetControllerType("sim-base", l1.ControllerMeta{Description: "Simulation: differential drive base"})
	env.SetupFlags()
}

func main() {
	flag.Parse()

	env := env.NewConfig().MustNewEnv()
	fw := base.NewFirmware(base.DefaultGeometry)
	driver := base.NewDriver(base.DefaultGeometry, fw)
	ctl := base.NewController(env, driver)

	fx.NewLoop().
		Add(env, fw, ctl).
		RunOrFail()
}
