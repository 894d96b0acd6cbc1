package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdinCommand_PrintsPlanJSON(t *testing.T) {
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetIn(strings.NewReader(sampleMappingTTL))
	cmd.SetArgs([]string{"stdin"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "\"nodes\"")
	assert.Contains(t, out.String(), "SourceOp")
}

func TestStdinCommand_ParseErrorIsCommandError(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetIn(strings.NewReader("this is not turtle @@@"))
	cmd.SetArgs([]string{"stdin"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
