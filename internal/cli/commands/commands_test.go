// Package commands_test provides tests for CLI command creation and
// execution against in-memory inputs.
package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFmtCommand(t *testing.T) {
	cmd := NewFmtCommand()

	assert.Equal(t, "fmt [file...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	for _, flag := range []string{"write", "check", "compact"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewLintCommand(t *testing.T) {
	cmd := NewLintCommand()

	assert.Equal(t, "lint [file...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	for _, flag := range []string{"model", "severity", "watch"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewFuncsCommand(t *testing.T) {
	cmd := NewFuncsCommand()

	assert.Equal(t, "funcs [name]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	for _, flag := range []string{"family", "search"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewTokensCommand(t *testing.T) {
	cmd := NewTokensCommand()

	assert.Equal(t, "tokens [file]", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("trivia"), "flag trivia should exist")
}

func TestFmtCommandStdin(t *testing.T) {
	cmd := NewFmtCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader("sum(Sales[Amount])"))

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "SUM(Sales[Amount])\n", buf.String())
}

func TestFmtCommandOptionFlags(t *testing.T) {
	cmd := NewFmtCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader("sum(Sales[Amount])"))
	cmd.SetArgs([]string{"--uppercase-functions=false"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "sum(Sales[Amount])\n", buf.String())
}

func TestFmtCommandWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.dax")
	require.NoError(t, os.WriteFile(path, []byte("sum(Sales[Amount])"), 0o600))

	cmd := NewFmtCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--write", path})

	require.NoError(t, cmd.Execute())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "SUM(Sales[Amount])\n", string(got))
}

func TestFmtCommandCheckFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.dax")
	require.NoError(t, os.WriteFile(path, []byte("sum(Sales[Amount])"), 0o600))

	cmd := NewFmtCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--check", path})

	require.Error(t, cmd.Execute())
}

func TestLintCommandStdin(t *testing.T) {
	cmd := NewLintCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader("SUM(Sales[Amount])"))

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "No issues found")
}

func TestLintCommandReportsErrors(t *testing.T) {
	cmd := NewLintCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader("CALCULATE()"))

	err := cmd.Execute()
	require.Error(t, err, "error-level diagnostics should fail the command")
	assert.Contains(t, buf.String(), "CALCULATE")
}

func TestFuncsCommandShowsSignature(t *testing.T) {
	cmd := NewFuncsCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"sumx"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "SUMX(table, expression)")
}

func TestFuncsCommandListsCatalog(t *testing.T) {
	cmd := NewFuncsCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--search", "DATES"})

	require.NoError(t, cmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "DATESYTD")
	assert.Contains(t, out, "time-intelligence")
	assert.Contains(t, out, "table", "listing should include return types")
}

func TestFuncsCommandUnknown(t *testing.T) {
	cmd := NewFuncsCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"nosuchfn"})

	require.Error(t, cmd.Execute())
}

func TestTokensCommandStdin(t *testing.T) {
	cmd := NewTokensCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader("SUM(Sales[Amount])"))

	require.NoError(t, cmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "IDENT")
	assert.Contains(t, out, "COLUMN_NAME")
	assert.Contains(t, out, "5 token(s)")
}
