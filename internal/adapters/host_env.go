package adapters

import (
	"os"

	"devshell/internal/ports"
)

type HostEnvAdapter struct{}

func NewHostEnvAdapter() HostEnvAdapter {
	return HostEnvAdapter{}
}

// Snapshot captures the current values of names from the process
// environment.  Unset variables are omitted so the resolver can tell
// "unset" apart from "set to empty".
func (a HostEnvAdapter) Snapshot(names []string) map[string]string {
	values := map[string]string{}
	for _, name := range names {
		if value, ok := os.LookupEnv(name); ok {
			values[name] = value
		}
	}
	return values
}

var _ ports.HostEnvPort = HostEnvAdapter{}
