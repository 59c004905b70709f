package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.ProgramID = testProgramID
	cfg.Server.HTTPAddress = "localhost:8080"
	cfg.Adapter.HTTPAddress = "http://copro:7000"
	return cfg
}

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "from-env"}},
		&StructuredConfig{App: App{Version: "from-flags", LogLevel: "error"}},
	)
	b.withDefaults()
	b.configs[0].App.ProgramID = testProgramID
	b.configs[0].Server.HTTPAddress = "localhost:1"
	b.configs[0].Adapter.HTTPAddress = "copro:1"

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.Version)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, DefaultMaxTransactionAge, cfg.Ledger.MaxTransactionAge)
}

func TestWithFlagArgs_AppendsConfig(t *testing.T) {
	b := newConfigBuilder().withFlagArgs([]string{"-a", "localhost:8080"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "localhost:8080", b.configs[0].Server.HTTPAddress)
}

func TestWithFlagArgs_RecordsError(t *testing.T) {
	b := newConfigBuilder().withFlagArgs([]string{"-unknown"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")

	b := newConfigBuilder().withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
}

func TestWithJSON_NoOpWhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_LoadsFile(t *testing.T) {
	path := writeFile(t, `{"workers": {"monitor_interval": "7s"}}`)
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, 7*time.Second, b.configs[1].Workers.MonitorInterval)
}

func TestWithJSON_RecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()
	assert.Error(t, b.err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StructuredConfig)
		want   error
	}{
		{"valid", func(*StructuredConfig) {}, nil},
		{"plaintext without coprocessor", func(c *StructuredConfig) {
			c.App.BalanceScheme = "plaintext"
			c.Adapter.HTTPAddress = ""
		}, nil},
		{"missing program id", func(c *StructuredConfig) { c.App.ProgramID = "" }, ErrInvalidAppConfigs},
		{"short program id", func(c *StructuredConfig) { c.App.ProgramID = "abc" }, ErrInvalidAppConfigs},
		{"unknown scheme", func(c *StructuredConfig) { c.App.BalanceScheme = "fhe" }, ErrInvalidAppConfigs},
		{"zero rent", func(c *StructuredConfig) { c.Ledger.LamportsPerByteYear = 0 }, ErrInvalidLedgerConfigs},
		{"unknown driver", func(c *StructuredConfig) { c.Storage.Driver = "mongo" }, ErrInvalidStorageConfigs},
		{"postgres without dsn", func(c *StructuredConfig) { c.Storage.Driver = DriverPostgres }, ErrInvalidStorageConfigs},
		{"no listeners", func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"confidential without coprocessor", func(c *StructuredConfig) { c.Adapter.HTTPAddress = "" }, ErrInvalidAdapterConfigs},
		{"zero monitor interval", func(c *StructuredConfig) { c.Workers.MonitorInterval = 0 }, ErrInvalidWorkerConfigs},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
