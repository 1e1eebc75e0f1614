package cfg

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	content := `
store: /tmp/folders.db
defaultBackgroundColor: -16777216
verboseFolderString: true
accountURI: content://mail/account/1
`
	config, err := Load(io.NopCloser(strings.NewReader(content)))
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Store:                  "/tmp/folders.db",
		DefaultBackgroundColor: -16777216,
		VerboseFolderString:    true,
		AccountURI:             "content://mail/account/1",
	}, config)
}

func TestLoadEmptyConfig(t *testing.T) {
	config, err := Load(io.NopCloser(strings.NewReader("")))
	require.NoError(t, err)
	assert.Equal(t, newConfig(), config)
}

func TestLoadInvalidConfig(t *testing.T) {
	_, err := Load(io.NopCloser(strings.NewReader("store: \"\"\n")))
	assert.Error(t, err)

	_, err = Load(io.NopCloser(strings.NewReader("store: [not a string\n")))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	config, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultStore, config.Store)
	assert.Equal(t, DefaultBackgroundColor, config.DefaultBackgroundColor)
}

func TestLoadFromFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "folders.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte("store: local.db\n"), 0600))

	config, err := LoadFromFile(fileName)
	require.NoError(t, err)
	assert.Equal(t, "local.db", config.Store)
	assert.Equal(t, DefaultBackgroundColor, config.DefaultBackgroundColor)
}
