package types

// SnapshotIndexFile is the on-disk inventory of a repository snapshot:
// the package names the snapshot can provide.  Names only; version
// selection belongs to the external package client.
type SnapshotIndexFile struct {
	Snapshot Snapshot `yaml:"snapshot,omitempty"`
	Packages []string `yaml:"packages"`
}
