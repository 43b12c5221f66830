package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:                     "8080",
		Env:                      "development",
		DBDriver:                 DriverPostgres,
		DBPassword:               "password",
		DBSSLMode:                "disable",
		DBPath:                   "blogly.db",
		DBMaxOpenConns:           25,
		DBMaxIdleConns:           5,
		DBConnMaxLifetimeMinutes: 5,
		DBSchemaMode:             "hybrid",
		LogLevel:                 "info",
		LogFormat:                "text",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"missing port", func(c *Config) { c.Port = "" }, true},
		{"unknown driver", func(c *Config) { c.DBDriver = "mysql" }, true},
		{"sqlite with path", func(c *Config) { c.DBDriver = DriverSQLite }, false},
		{"sqlite without path", func(c *Config) { c.DBDriver = DriverSQLite; c.DBPath = " " }, true},
		{"zero pool size", func(c *Config) { c.DBMaxOpenConns = 0 }, true},
		{"bad schema mode", func(c *Config) { c.DBSchemaMode = "yolo" }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, true},
		{"production with default password", func(c *Config) { c.Env = "production" }, true},
		{"production with strong password", func(c *Config) {
			c.Env = "production"
			c.DBPassword = "s3cure-and-long"
			c.DBSSLMode = "require"
		}, false},
		{"production with database url", func(c *Config) {
			c.Env = "prod"
			c.DatabaseURL = "postgres://blogly@db/blogly"
		}, false},
		{"production auto schema", func(c *Config) {
			c.Env = "production"
			c.DBPassword = "s3cure-and-long"
			c.DBSchemaMode = "auto"
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("APP_ENV", "development")

	c, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, DriverPostgres, c.DBDriver)
	assert.Equal(t, "blogly", c.DBName)
	assert.Equal(t, "hybrid", c.DBSchemaMode)
	assert.Equal(t, "text", c.LogFormat)
	assert.False(t, c.SeedOnStart)
}

func TestLoadConfig_EnvironmentOverridesAndNormalization(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("APP_ENV", "test")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "  SQLite ")
	t.Setenv("DB_PATH", "/tmp/blogly-test.db")
	t.Setenv("LOG_LEVEL", "DEBUG")

	c, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "test", c.Env)
	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, DriverSQLite, c.DBDriver)
	assert.Equal(t, "/tmp/blogly-test.db", c.DBPath)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestLoadConfig_ProductionDefaultsToJSONLogs(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PASSWORD", "not-the-default")
	t.Setenv("DB_SSLMODE", "require")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "json", c.LogFormat)
	assert.True(t, c.IsProdLike())
}
