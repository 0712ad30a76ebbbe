package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"devshell/tests/testutil"
)

func TestResolveCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	outDir := t.TempDir()

	cmd := exec.Command("go", "run", "./cmd/devshell", "resolve",
		"--descriptor", "fixtures/descriptor-sample.yaml",
		"--platform", "linux",
		"--snapshot-index", "fixtures/snapshot-index.yaml",
		"--output", outDir,
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	require.FileExists(t, filepath.Join(outDir, "env.sh"))
	require.FileExists(t, filepath.Join(outDir, "deps.manifest"))
}

func TestEnvCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)

	cmd := exec.Command("go", "run", "./cmd/devshell", "env",
		"--descriptor", "fixtures/descriptor-sample.yaml",
		"--platform", "other",
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	require.Contains(t, string(out), "export LLVM_SYS_100_PREFIX=")
}
