package connector

import (
	"flag"
	"fmt"
	"net/url"
	"os"

	"github.com/robomotive/diffbase.go/pkg/l1"
	"github.com/robomotive/diffbase.go/pkg/l1/comm/mqtt"
)

// Config holds what the upstream side needs to reach controllers: a
// registry URL and, optionally, a controller to auto-connect.
type Config struct {
	Ref l1.ControllerRef

	// RegistryURL locates the controller registry,
	// e.g. mqtt://host:port/topic-prefix
	RegistryURL string
}

var defaultConfig = Config{
	RegistryURL: envOr("DIFFBASE_REGISTRY_URL", "mqtt://localhost:1883/diffbase/"),
}

func init() {
	if ref, err := l1.ParseControllerRef(os.Getenv("DIFFBASE_ROBOT")); err == nil {
		defaultConfig.Ref = ref
	}
	defaultConfig.Ref.Type = envOr("DIFFBASE_TYPE", defaultConfig.Ref.Type)
	defaultConfig.Ref.ID = envOr("DIFFBASE_ID", defaultConfig.Ref.ID)
}

func envOr(name, fallback string) string {
	if val := os.Getenv(name); val != "" {
		return val
	}
	return fallback
}

// SetupFlags registers the connector flags. Call before flag.Parse.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Ref.Type, "robot-type", defaultConfig.Ref.Type, "Robot type to connect.")
	flag.StringVar(&defaultConfig.Ref.ID, "robot-id", defaultConfig.Ref.ID, "Robot ID to connect.")
	flag.StringVar(&defaultConfig.RegistryURL, "robot-reg", defaultConfig.RegistryURL, "Robot Registry URL.")
}

// NewConfig copies the current defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewConnector builds a Connector for the configured registry.
func (c *Config) NewConnector() (l1.Connector, error) {
	parsedURL, err := url.Parse(c.RegistryURL)
	if err != nil {
		return nil, fmt.Errorf("invalid registry URL: %v", err)
	}
	if parsedURL.Scheme != "mqtt" {
		return nil, fmt.Errorf("unknown registry URL scheme: %q", parsedURL.Scheme)
	}
	return mqtt.NewConnector(c.RegistryURL)
}
