package env

import (
	"os"

	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
)

// MachineID returns a stable identifier for this machine. Platforms
// without a machine ID fall back to the hostname, so a default
// controller ID is always available.
func MachineID() string {
	if id, err := machineid.ID(); err == nil {
		return id
	}
	host, err := os.Hostname()
	if err != nil {
		glog.Warningf("no machine id or hostname: %v", err)
		return "unknown"
	}
	return host
}
