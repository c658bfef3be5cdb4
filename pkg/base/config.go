package base

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.bug.st/serial"
	yaml "gopkg.in/yaml.v2"

	env "github.com/robomotive/diffbase.go/pkg/l1/env/controller"
)

// Config defines the configurations for the base controller.
type Config struct {
	// Device is the serial device connected to the base firmware.
	Device string
	// BaudRate is the serial line speed.
	BaudRate int
	// GeometryFile optionally points to a YAML file overriding the
	// factory geometry.
	GeometryFile string

	Geometry Geometry
}

var defaultConfig = Config{
	Device:   "/dev/ttyUSB0",
	BaudRate: 115200,
	Geometry: DefaultGeometry,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Device, "device", defaultConfig.Device, "Serial device of the base firmware.")
	flag.IntVar(&defaultConfig.BaudRate, "baud", defaultConfig.BaudRate, "Serial baud rate.")
	flag.StringVar(&defaultConfig.GeometryFile, "geometry", defaultConfig.GeometryFile, "YAML file with base geometry calibration.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// LoadGeometry loads geometry calibration from a YAML file.
func LoadGeometry(fn string) (Geometry, error) {
	geom := DefaultGeometry
	data, err := os.ReadFile(fn)
	if err != nil {
		return geom, err
	}
	if err = yaml.Unmarshal(data, &geom); err != nil {
		return geom, fmt.Errorf("parse %s: %v", fn, err)
	}
	if err = geom.Validate(); err != nil {
		return geom, fmt.Errorf("invalid geometry in %s: %v", fn, err)
	}
	return geom, nil
}

// NewController creates a Controller over a serial-connected base
// using the config.
func (c *Config) NewController(e *env.Env) (*Controller, error) {
	geom := c.Geometry
	if c.GeometryFile != "" {
		var err error
		if geom, err = LoadGeometry(c.GeometryFile); err != nil {
			return nil, err
		}
	}
	port, err := serial.Open(c.Device, &serial.Mode{BaudRate: c.BaudRate})
	if err != nil {
		return nil, fmt.Errorf("open %s: %v", c.Device, err)
	}
	return NewController(e, NewDriver(geom, port)), nil
}

// MustNewController creates a Controller and fails on error.
func (c *Config) MustNewController(e *env.Env) *Controller {
	ctl, err := c.NewController(e)
	if err != nil {
		log.Fatalln(err)
	}
	return ctl
}
