package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMappingTTL = `
@prefix rml: <http://w3id.org/rml/> .
@prefix ex: <http://example.com/> .

ex:TM1 a rml:TriplesMap ;
  rml:logicalSource ex:LS1 ;
  rml:subjectMap [
    rml:template "http://example.com/person/{id}" ;
    rml:class ex:Person
  ] ;
  rml:predicateObjectMap [
    rml:predicate ex:name ;
    rml:objectMap [ rml:reference "name" ]
  ] .

ex:LS1 rml:source ex:Src1 ;
  rml:iterator "$.people[*]" .

ex:Src1 rml:encoding "UTF-8" .
`

func TestFileCommand_WritesPlanFolder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mapping.ttl")
	require.NoError(t, os.WriteFile(path, []byte(sampleMappingTTL), 0o644))

	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"file", path})
	require.NoError(t, cmd.Execute())

	outDir := filepath.Join(dir, "mapping_plan")
	assert.FileExists(t, filepath.Join(outDir, "plan.json"))
	assert.FileExists(t, filepath.Join(outDir, "plan.dot"))
	assert.Contains(t, out.String(), "compiled")
}

func TestFileCommand_JSONFlagWritesNoFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mapping.ttl")
	require.NoError(t, os.WriteFile(path, []byte(sampleMappingTTL), 0o644))

	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--json", "file", path})
	require.NoError(t, cmd.Execute())

	assert.NoDirExists(t, filepath.Join(dir, "mapping_plan"))
	assert.Contains(t, out.String(), "\"nodes\"")
}

func TestFileCommand_MissingFileIsCommandError(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"file", "/no/such/mapping.ttl"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
