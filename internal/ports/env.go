package ports

// HostEnvPort reads prior external environment values.  The resolver
// never touches the process environment directly; the app layer snapshots
// the handful of variables the descriptor appends to and injects them.
type HostEnvPort interface {
	Snapshot(names []string) map[string]string
}
