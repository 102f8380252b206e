package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	want := &Config{
		DictionaryPath:     "/opt/sudachi/system_core.dic",
		SettingsPath:       "/opt/sudachi/sudachi.json",
		UserDictionaryPath: "/home/user/user.dic",
		Mode:               "C",
	}
	require.NoError(t, want.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("dictionary_path: [not scalar"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestOmittedOptionalFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := &Config{DictionaryPath: "/d/system_small.dic"}
	require.NoError(t, cfg.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "user_dictionary_path")

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
