package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMigrationsPath(t *testing.T) {
	for _, dbType := range []string{"postgresql", "mysql"} {
		path, err := getMigrationsPath(dbType)
		require.NoError(t, err)
		assert.Equal(t, dbType, filepath.Base(path))

		entries, err := os.ReadDir(path)
		require.NoError(t, err)
		assert.NotEmpty(t, entries)
	}

	_, err := getMigrationsPath("sqlite")
	assert.Error(t, err)
}

func TestGetTestDSN(t *testing.T) {
	t.Setenv("TEST_POSTGRES_DSN", "postgres://custom")
	t.Setenv("TEST_MYSQL_DSN", "")

	assert.Equal(t, "postgres://custom", GetPostgresTestDSN())
	assert.Equal(t, defaultMySQLTestDSN, GetMySQLTestDSN())
}
