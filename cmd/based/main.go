package main

//go-build: CGO_ENABLED=0

import (
	"flag"

	"github.com/robomotive/diffbase.go/pkg/base"
	"github.com/robomotive/diffbase.go/pkg/framework"
	"github.com/robomotive/diffbase.go/pkg/l1"
	env "github.com/robomotive/diffbase.go/pkg/l1/env/controller"
)

func init() {
	env.SetControllerType("base", l1.ControllerMeta{Description: "Differential Drive Base"})
	env.SetupFlags()
	base.SetupFlags()
}

func main() {
	flag.Parse()

	env := env.NewConfig().MustNewEnv()
	ctl := base.NewConfig().MustNewController(env)
	framework.NewLoop().Add(env, ctl).RunOrFail()
}
