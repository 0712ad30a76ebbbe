package types

type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// Snapshot pins the package-repository state the descriptor was written
// against.  The pin is opaque to the resolver; it is handed unchanged to
// the external package client.
type Snapshot struct {
	Channel string `yaml:"channel,omitempty"`
	Rev     string `yaml:"rev"`
	SHA256  string `yaml:"sha256,omitempty"`
}

// DescriptorDefaults provides project-level defaults that the CLI and
// application layer use when a value is not explicitly provided via
// flags or environment variables.  Embedding defaults in the descriptor
// eliminates the need for a separate config file or repetitive CLI flags.
type DescriptorDefaults struct {
	Platform      string `yaml:"platform,omitempty"`
	Output        string `yaml:"output,omitempty"`
	SnapshotIndex string `yaml:"snapshot_index,omitempty"`
}

type DependencyGroup struct {
	Name      string         `yaml:"name"`
	Condition GroupCondition `yaml:"condition"`
	Packages  []string       `yaml:"packages"`
}

// EnvRule declares one environment variable of the development shell.
// Rules are evaluated strictly in declaration order; a template rule may
// only reference variables resolved by earlier rules.
type EnvRule struct {
	Name string      `yaml:"name"`
	Kind EnvRuleKind `yaml:"kind"`

	// Value carries the literal string or the template, depending on Kind.
	Value string `yaml:"value,omitempty"`

	// Paths carries the ordered path tokens of a pathlist rule.
	Paths []string `yaml:"paths,omitempty"`

	// Platforms restricts the rule to a subset of platforms.  On other
	// platforms the rule computes the empty string but is still exported,
	// so the variable set stays identical across platforms.
	Platforms []PlatformKind `yaml:"platforms,omitempty"`

	// AppendExternal places the prior external value of the same variable
	// first and appends the computed value with the platform separator.
	// The prior value is never overwritten and never deduplicated.
	AppendExternal bool `yaml:"append_external,omitempty"`
}

type Descriptor struct {
	APIVersion string             `yaml:"api_version"`
	Metadata   Metadata           `yaml:"metadata"`
	Snapshot   Snapshot           `yaml:"snapshot"`
	Defaults   DescriptorDefaults `yaml:"defaults,omitempty"`
	Groups     []DependencyGroup  `yaml:"groups"`
	Env        []EnvRule          `yaml:"env"`
}
