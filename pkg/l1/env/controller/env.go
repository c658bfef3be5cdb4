package controller

import (
	"flag"
	"fmt"
	"log"
	"os"

	fx "github.com/robomotive/diffbase.go/pkg/framework"
	"github.com/robomotive/diffbase.go/pkg/l1"
	"github.com/robomotive/diffbase.go/pkg/l1/comm"
	"github.com/robomotive/diffbase.go/pkg/l1/comm/mqtt"
	"github.com/robomotive/diffbase.go/pkg/l1/env"
)

// Config identifies this controller and names the registries it
// announces itself to.
type Config struct {
	Info l1.ControllerInfo

	// MQTTBrokerURL is the MQTT registry,
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string
}

var defaultConfig Config

func init() {
	defaultConfig.MQTTBrokerURL = "mqtt://localhost:1883/diffbase/"
	if val := os.Getenv("DIFFBASE_MQTT_URL"); val != "" {
		defaultConfig.MQTTBrokerURL = val
	}
	defaultConfig.Info.Ref.ID = env.MachineID()
}

// SetControllerType names the controller. Call from init in main,
// before flags are parsed, so -type has a sensible default.
func SetControllerType(typ string, meta l1.ControllerMeta) {
	defaultConfig.Info.Ref.Type = typ
	defaultConfig.Info.Meta = meta
}

// SetupFlags registers the controller flags. Call before flag.Parse.
func SetupFlags() {
	ref := &defaultConfig.Info.Ref
	flag.StringVar(&ref.Type, "type", ref.Type, "Controller type")
	flag.StringVar(&ref.ID, "id", ref.ID, "Controller ID")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL")
}

// NewConfig copies the current defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Env bundles what a running controller needs: its identity and the
// registrars carrying its traffic.
type Env struct {
	Config    *Config
	Registrar *comm.RegistrarMux
}

// NewEnv builds the Env, creating a registrar per configured
// registry. At least one registry is required.
func (c *Config) NewEnv() (*Env, error) {
	if !c.Info.Ref.IsValid() {
		return nil, fmt.Errorf("robot type and id must be specified")
	}
	e := &Env{Config: c, Registrar: &comm.RegistrarMux{}}
	if c.MQTTBrokerURL != "" {
		reg, err := mqtt.NewRegistrar(c.MQTTBrokerURL, c.Info)
		if err != nil {
			return nil, fmt.Errorf("create MQTT registrar error: %v", err)
		}
		e.Registrar.Add(reg)
	}
	if len(e.Registrar.Registrars) == 0 {
		return nil, fmt.Errorf("at least one registrar is required")
	}
	return e, nil
}

// MustNewEnv is NewEnv for main funcs.
func (c *Config) MustNewEnv() *Env {
	e, err := c.NewEnv()
	if err != nil {
		log.Fatalln(err)
	}
	return e
}

// AddToLoop implements LoopAdder. Besides the registrars it installs
// the catch-all that rejects unhandled commands.
func (e *Env) AddToLoop(loop *fx.Loop) {
	loop.Add(e.Registrar)
	loop.Add(&comm.UnsupportedCommands{})
}
