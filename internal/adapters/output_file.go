package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"devshell/internal/ports"
	"devshell/internal/shared"
	"devshell/internal/types"
)

type OutputFileAdapter struct {
	Dir string
}

func NewOutputFileAdapter(dir string) OutputFileAdapter {
	return OutputFileAdapter{Dir: dir}
}

// WriteEnvScript writes env.sh, one POSIX export line per variable in
// resolution order.  The file is meant to be sourced by the invoking
// shell; this adapter never mutates the process environment itself.
func (a OutputFileAdapter) WriteEnvScript(vars []types.EnvVar) error {
	path, err := a.ensurePath("env.sh")
	if err != nil {
		return err
	}
	var lines []string
	for _, v := range vars {
		lines = append(lines, fmt.Sprintf("export %s=%s", v.Name, shared.ShellQuote(v.Value)))
	}
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644)
}

// WriteDependencyManifest writes deps.manifest as group,package lines.
// Entries keep resolution order: group concatenation order is part of
// the resolver contract, so no sorting happens here.
func (a OutputFileAdapter) WriteDependencyManifest(entries []types.ResolvedDependency) error {
	path, err := a.ensurePath("deps.manifest")
	if err != nil {
		return err
	}
	var lines []string
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%s,%s", entry.Group, entry.Package))
	}
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644)
}

func (a OutputFileAdapter) ensurePath(name string) (string, error) {
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, name), nil
}

var _ ports.OutputPort = OutputFileAdapter{}
