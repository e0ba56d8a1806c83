package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("ENV", "test")

	t.Run("defaults", func(t *testing.T) {
		conf, err := NewConfig(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "TEST", conf.Env)
		assert.Equal(t, "Student Management System", conf.AppName)
		assert.Equal(t, EngineSQLite, conf.Database.Engine)
		assert.Equal(t, filepath.Join(os.TempDir(), "student_management_test.db"), conf.Database.Path)
		assert.Equal(t, float32(1200), conf.Window.Width)
		assert.Equal(t, float32(800), conf.Window.Height)
		assert.Equal(t, "noreply@localhost", conf.DefaultFromEmail.Address)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("TEST_DATABASE_ENGINE", "Postgres")
		t.Setenv("TEST_DATABASE_URL", "postgres://localhost/school?sslmode=disable")
		conf, err := NewConfig(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, EnginePostgres, conf.Database.Engine)
		assert.Equal(t, "postgres://localhost/school?sslmode=disable", conf.Database.URL)
	})

	t.Run("dotenv file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config", ".env.test"), []byte("TEST_DEFAULTFROMEMAIL=School <office@school.test>\n"), 0o600))
		t.Cleanup(func() { _ = os.Unsetenv("TEST_DEFAULTFROMEMAIL") })

		conf, err := NewConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "School", conf.DefaultFromEmail.Name)
		assert.Equal(t, "office@school.test", conf.DefaultFromEmail.Address)
	})

	t.Run("unsupported engine", func(t *testing.T) {
		t.Setenv("TEST_DATABASE_ENGINE", "mysql")
		_, err := NewConfig(t.TempDir())
		assert.Error(t, err)
	})
}
