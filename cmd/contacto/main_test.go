package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/gcloudgt/contacto/internal/catalog"
	"github.com/gcloudgt/contacto/internal/config"
	"github.com/gcloudgt/contacto/internal/inquiry"
	"github.com/gcloudgt/contacto/internal/intake"
	"github.com/gcloudgt/contacto/internal/mcpserver"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args in an isolated environment and
// returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	reset(rootCmd.PersistentFlags())
	for _, c := range rootCmd.Commands() {
		reset(c.Flags())
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Chdir(dir)
	return dir
}

func TestCatalogCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t, "catalog")
	require.NoError(t, err)
	require.Contains(t, out, "╭")
	require.Contains(t, out, "LABEL")
	require.Contains(t, out, "DESCRIPTION")
	for _, e := range append(catalog.ProjectTypes(), catalog.BudgetRanges()...) {
		require.Contains(t, out, e.ID)
		require.Contains(t, out, e.Label)
	}

	out, err = execute(t, "catalog", "budgets", "--json")
	require.NoError(t, err)
	var entries []catalog.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Equal(t, catalog.BudgetRanges(), entries)

	_, err = execute(t, "catalog", "colors")
	require.Error(t, err)
}

func TestSubmitCommand_NoPersist(t *testing.T) {
	dir := isolate(t)

	out, err := execute(t, "submit", "--no-persist",
		"-t", "web", "-b", "starter", "-n", "Ana", "-e", "ana@x.com", "-m", "Hola")
	require.NoError(t, err)
	require.Contains(t, out, inquiry.SuccessMessage)
	require.NoDirExists(t, filepath.Join(dir, ".contacto"))
}

func TestOpenMCPStore_NoPersist(t *testing.T) {
	dir := isolate(t)

	c := config.Default()
	c.DataDir = filepath.Join(dir, "data")
	c.Persist = false
	store, closeFn, err := openMCPStore(context.Background(), c)
	require.NoError(t, err)
	require.Equal(t, mcpserver.Discard, store)
	require.NoError(t, closeFn())
	require.NoDirExists(t, c.DataDir)

	c.Persist = true
	store, closeFn, err = openMCPStore(context.Background(), c)
	require.NoError(t, err)
	require.IsType(t, &intake.Store{}, store)
	require.NoError(t, closeFn())
	require.DirExists(t, c.DataDir)
}

func TestSubmitCommand_Rejections(t *testing.T) {
	isolate(t)

	_, err := execute(t, "submit", "--no-persist", "-t", "mobile", "-b", "starter")
	require.ErrorIs(t, err, inquiry.ErrUnknownOption)

	_, err = execute(t, "submit", "--no-persist", "-t", "web", "-b", "starter", "-n", "Ana")
	require.True(t, inquiry.IsValidationError(err))
}

func TestSubmitThenListInquiries(t *testing.T) {
	dir := isolate(t)
	dataDir := filepath.Join(dir, "data")
	exportDir := filepath.Join(dir, "export")

	_, err := execute(t, "submit", "--data-dir", dataDir, "--export-dir", exportDir,
		"-t", "ecommerce", "-b", "growth", "-n", "Luis Pérez", "-e", "luis@x.com", "-m", "Tienda en línea")
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(exportDir, "README.md"))

	out, err := execute(t, "inquiries", "--raw", "--data-dir", dataDir)
	require.NoError(t, err)
	require.Contains(t, out, "Luis Pérez")
	require.Contains(t, out, "luis@x.com")
}

func TestSetupCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t, "setup", "--project")
	require.NoError(t, err)
	require.Contains(t, out, config.ProjectPath())
	require.FileExists(t, config.ProjectPath())

	_, err = execute(t, "setup", "--project")
	require.Error(t, err, "existing config is not overwritten")

	_, err = execute(t, "setup", "--project", "--force")
	require.NoError(t, err)
}
