package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dotflik dev")
}

func TestMigrateAndSeedOnSQLite(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DOTFLIK_DATABASE_DRIVER", "sqlite")
	t.Setenv("DOTFLIK_DATABASE_PATH", filepath.Join(dir, "cli.db"))
	t.Setenv("DOTFLIK_ENVIRONMENT", "production")

	_, err := run(t, "migrate", "up")
	require.NoError(t, err)

	fixture := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(fixture, []byte(`
genres: [{id: 1, name: Drama}]
stars: [{id: nm1, name: Someone}]
movies: [{id: tt1, title: Something, year: 2001, director: Someone Else, genres: [1], stars: [nm1]}]
`), 0o600))

	out, err := run(t, "seed", fixture)
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 1 genres, 1 stars, 1 movies")

	_, err = run(t, "seed")
	assert.Error(t, err)
}
