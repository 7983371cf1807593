package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"userdesk/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	v.Set("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, ":3007", cfg.Port)
	assert.Equal(t, config.DriverMongo, cfg.StoreDriver)
	assert.Equal(t, "test", cfg.MongoDatabase)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.RabbitMQURL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8088")
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("DATABASE_DSN", "file:test.db")
	t.Setenv("REQUEST_TIMEOUT", "3s")

	cfg, err := config.Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, ":8088", cfg.Port)
	assert.Equal(t, config.DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "file:test.db", cfg.DatabaseDSN)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		set  map[string]any
		want string
	}{
		{name: "mongo without uri", set: map[string]any{"MONGO_URI": ""}, want: "MONGO_URI is required"},
		{name: "postgres without dsn", set: map[string]any{"STORE_DRIVER": "postgres"}, want: "DATABASE_DSN is required"},
		{name: "unknown driver", set: map[string]any{"STORE_DRIVER": "cassandra"}, want: `unknown STORE_DRIVER "cassandra"`},
		{name: "zero timeout", set: map[string]any{"STORE_DRIVER": "memory", "REQUEST_TIMEOUT": "0s"}, want: "REQUEST_TIMEOUT must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			for k, val := range tt.set {
				v.Set(k, val)
			}
			_, err := config.Load(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestListenAddr(t *testing.T) {
	assert.Equal(t, ":3007", config.ListenAddr("3007"))
	assert.Equal(t, ":3007", config.ListenAddr(":3007"))
	assert.Equal(t, "127.0.0.1:9000", config.ListenAddr("127.0.0.1:9000"))
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("USERDESK_TEST_ENV_KEY=from-dotenv\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("USERDESK_TEST_ENV_KEY") })

	require.NoError(t, config.LoadEnvFile(path))
	assert.Equal(t, "from-dotenv", os.Getenv("USERDESK_TEST_ENV_KEY"))

	assert.NoError(t, config.LoadEnvFile(filepath.Join(dir, "missing.env")))
}
