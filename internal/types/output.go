package types

// EnvVar is one resolved environment variable.  Order matters: the
// sequence mirrors rule declaration order so that exported output is
// byte-stable for a given descriptor.
type EnvVar struct {
	Name  string
	Value string
}

// ResolvedDependency is one package of the final dependency set, with
// the group it came from.  Insertion order is the concatenation order
// of the selected groups.
type ResolvedDependency struct {
	Group   string
	Package string
}

// LookupEnv returns the value of name in vars, preserving the semantics
// of a plain map lookup over the ordered slice.
func LookupEnv(vars []EnvVar, name string) (string, bool) {
	for _, v := range vars {
		if v.Name == name {
			return v.Value, true
		}
	}
	return "", false
}
