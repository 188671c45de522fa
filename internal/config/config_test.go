/*
File    : pyparse/internal/config/config_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadParsesYAMLDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pyparse.yaml")
	doc := "version: [2, 7]\ncolor: false\ntab_width: 4\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, [2]int{2, 7}, cfg.Version)
	assert.False(t, cfg.Color)
	assert.Equal(t, 4, cfg.TabWidth)
	assert.Equal(t, 2, cfg.Selector().Major)
	assert.Equal(t, 7, cfg.Selector().Minor)
}
