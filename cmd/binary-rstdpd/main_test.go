package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommandPrintsBuildVersion(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, buildVersion+"\n", out.String())
}

func TestRunCommandRejectsNegativeSpeed(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"run", "--speed=-5"})
	root.SetIn(strings.NewReader(""))

	err := root.Execute()
	assert.Error(t, err)
}

func TestRunCommandStopsWhenStdinClosesAndEmitsTickZero(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetIn(strings.NewReader(""))
	root.SetArgs([]string{"run", "--seed", "1"})

	require.NoError(t, root.Execute())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.NotEmpty(t, lines)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, float64(0), first["t"])
}
