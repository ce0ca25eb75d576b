package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-records-backend/internal/parse"
	"course-records-backend/internal/seed"
	"course-records-backend/internal/store"
)

func TestResolveConfigPath(t *testing.T) {
	t.Cleanup(func() { configFlag = "" })

	t.Setenv("CONFIG_PATH", "")
	configFlag = ""
	assert.Equal(t, defaultConfigPath, resolveConfigPath())

	t.Setenv("CONFIG_PATH", "/etc/recordsd.yaml")
	assert.Equal(t, "/etc/recordsd.yaml", resolveConfigPath())

	configFlag = "local.yaml"
	assert.Equal(t, "local.yaml", resolveConfigPath())
}

func TestShowCommand(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "catalog.txt")
	require.NoError(t, store.NewFileStore(dataPath).Save(context.Background(), seed.Catalog()))

	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("storage:\n  backend: file\n  path: "+dataPath+"\n"), 0o600))

	testCases := []struct {
		format string
		prefix string
	}{
		{format: "text", prefix: "For the CHEM department:\n"},
		{format: "listing", prefix: "VERSION 1\n"},
		{format: "yaml", prefix: "version: 1\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetArgs([]string{"show", "--config", cfgPath, "--format", tc.format})
			t.Cleanup(func() {
				configFlag = ""
				showFormat = "text"
			})

			require.NoError(t, rootCmd.Execute())
			assert.True(t, strings.HasPrefix(out.String(), tc.prefix), out.String())
			assert.Contains(t, out.String(), "Szabolcs Marka")
		})
	}
}

func TestShowCommand_MissingConfig(t *testing.T) {
	rootCmd.SetArgs([]string{"show", "--config", filepath.Join(t.TempDir(), "missing.yaml")})
	t.Cleanup(func() { configFlag = "" })
	assert.Error(t, rootCmd.Execute())
}

func TestShowCommand_UnreadableCatalog(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "catalog.txt")
	require.NoError(t, os.WriteFile(dataPath, []byte("VERSION 1\nCOURSE PHYS 1520 | oops\n"), 0o600))
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log:\n  level: error\nstorage:\n  backend: file\n  path: "+dataPath+"\n"), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"show", "--config", cfgPath})
	t.Cleanup(func() { configFlag = "" })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, parse.ErrMalformedLine)
	assert.Empty(t, out.String())
}
