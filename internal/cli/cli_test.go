package cli

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	expected := []string{"validate", "resolve", "env", "deps", "inspect"}
	for _, name := range expected {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestResolveCommandFlags(t *testing.T) {
	cmd := newResolveCommand()
	flags := []string{"descriptor", "platform", "output", "snapshot-index"}
	for _, name := range flags {
		flag := cmd.Flags().Lookup(name)
		assert.NotNil(t, flag, "missing flag: %s", name)
	}
}

func TestEnvCommandFlags(t *testing.T) {
	cmd := newEnvCommand()
	assert.NotNil(t, cmd.Flags().Lookup("descriptor"))
	assert.NotNil(t, cmd.Flags().Lookup("platform"))
}

func TestDepsCommandFlags(t *testing.T) {
	cmd := newDepsCommand()
	assert.NotNil(t, cmd.Flags().Lookup("descriptor"))
	assert.NotNil(t, cmd.Flags().Lookup("platform"))
}

func TestValidateCommandFlags(t *testing.T) {
	cmd := newValidateCommand()
	assert.NotNil(t, cmd.Flags().Lookup("descriptor"))
}

func TestInspectCommandFlags(t *testing.T) {
	cmd := newInspectCommand()
	assert.NotNil(t, cmd.Flags().Lookup("descriptor"))
}

// ---------- Exit code mapping ----------

func TestExitCodeForError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "invalid argument",
			err:  errbuilder.New().WithCode(errbuilder.CodeInvalidArgument).WithMsg("unknown platform: windows"),
			want: 2,
		},
		{
			name: "snapshot rev mismatch",
			err:  errbuilder.New().WithCode(errbuilder.CodeFailedPrecondition).WithMsg("snapshot index rev a does not match pinned rev b"),
			want: 3,
		},
		{
			name: "unresolved dependency",
			err:  errbuilder.New().WithCode(errbuilder.CodeNotFound).WithMsg("unresolved external dependency: zig"),
			want: 4,
		},
		{
			name: "missing descriptor",
			err:  errbuilder.New().WithCode(errbuilder.CodeNotFound).WithMsg("descriptor file not found"),
			want: 5,
		},
		{
			name: "template evaluation bug",
			err:  errbuilder.New().WithCode(errbuilder.CodeInternal).WithMsg("template references unresolved variable LIBS (rule LD_LIBRARY_PATH)"),
			want: 5,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, exitCodeForError(tc.err))
		})
	}
}
