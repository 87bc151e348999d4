package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	t.Run("version flag", func(t *testing.T) {
		cmd := NewRootCommand(nil, "1.2.3")
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"--version"})

		require.NoError(t, cmd.Execute())
		assert.Contains(t, out.String(), "1.2.3")
	})

	t.Run("registers subcommands", func(t *testing.T) {
		cmd := NewRootCommand(nil, "dev")

		names := make([]string, 0, len(cmd.Commands()))
		for _, sub := range cmd.Commands() {
			names = append(names, sub.Name())
		}
		assert.Contains(t, names, "sync")
		assert.Contains(t, names, "config")
	})

	t.Run("help succeeds without a container", func(t *testing.T) {
		cmd := NewRootCommand(nil, "dev")
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetArgs([]string{"--help"})

		assert.NoError(t, cmd.Execute())
	})
}
