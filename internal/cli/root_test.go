package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "mapc", cmd.Use)
	assert.Contains(t, cmd.Long, "operator plan")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"file", "folder", "stdin"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	debugFlag := cmd.PersistentFlags().Lookup("debug")
	require.NotNil(t, debugFlag)
	assert.Equal(t, "d", debugFlag.Shorthand)

	jsonFlag := cmd.PersistentFlags().Lookup("json")
	require.NotNil(t, jsonFlag)
	assert.Equal(t, "j", jsonFlag.Shorthand)
	assert.Equal(t, "false", jsonFlag.DefValue)

	suffixFlag := cmd.PersistentFlags().Lookup("outputFolderSuffix")
	require.NotNil(t, suffixFlag)
	assert.Equal(t, "o", suffixFlag.Shorthand)
	assert.Equal(t, "_plan", suffixFlag.DefValue)
}

func TestFileCommandRequiresExactlyOneArg(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"file"})
	err := cmd.Execute()
	require.Error(t, err)
}

func TestStdinCommandRejectsArgs(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"stdin", "unexpected"})
	err := cmd.Execute()
	require.Error(t, err)
}
