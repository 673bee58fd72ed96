package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_Defaults(t *testing.T) {
	env, err := LoadEnv("")
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, env.TitleTimeout)
	assert.Empty(t, env.BaseDir)
	assert.Empty(t, env.Bin)
}

func TestLoadEnv_FromEnvironment(t *testing.T) {
	t.Setenv("GALLERYDL_BASE_DIR", "/srv/galleries")
	t.Setenv("GALLERYDL_BIN", "/usr/local/bin/gallery-dl")
	t.Setenv("GALLERYDL_TITLE_TIMEOUT", "5s")

	env, err := LoadEnv("")
	require.NoError(t, err)

	assert.Equal(t, "/srv/galleries", env.BaseDir)
	assert.Equal(t, "/usr/local/bin/gallery-dl", env.Bin)
	assert.Equal(t, 5*time.Second, env.TitleTimeout)
}

func TestLoadEnv_DotEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("GALLERYDL_BASE_DIR=/from/dotenv\n"), 0o644))

	env, err := LoadEnv(envFile)
	require.NoError(t, err)
	assert.Equal(t, "/from/dotenv", env.BaseDir)

	// godotenv leaks into the process env; clean up for other tests.
	os.Unsetenv("GALLERYDL_BASE_DIR")
}

func TestLoadEnv_MissingFileIsFine(t *testing.T) {
	env, err := LoadEnv(filepath.Join(t.TempDir(), "does-not-exist.env"))
	require.NoError(t, err)
	assert.NotNil(t, env)
}
