package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "trades",
			Driver:         DriverMySQL,
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("SQLite In Memory", func(t *testing.T) {
		db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		require.NotNil(t, db)

		err = db.Exec("CREATE TABLE probe (id INTEGER PRIMARY KEY)").Error
		assert.NoError(t, err)
	})

	t.Run("Unknown Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.Error(t, err)
		assert.Nil(t, db)
		assert.Contains(t, err.Error(), "unsupported database driver")
	})
}

func TestDialector(t *testing.T) {
	for _, driver := range []string{DriverMySQL, DriverPostgres, DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			d, err := Dialector(Config{Driver: driver, Host: "localhost", Port: 1, Name: "x"})
			require.NoError(t, err)
			assert.Equal(t, driver, d.Name())
		})
	}
}
