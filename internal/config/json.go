package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		ProgramID     string `json:"program_id"`
		BalanceScheme string `json:"balance_scheme"`
		Version       string `json:"version"`
		LogLevel      string `json:"log_level"`
	} `json:"app,omitempty"`

	Ledger struct {
		LamportsPerByteYear    uint64   `json:"lamports_per_byte_year"`
		MaxTransactionAge      Duration `json:"max_transaction_age"`
		SeenSignatureCacheSize int      `json:"seen_signature_cache_size"`
		DerivationCacheSize    int      `json:"derivation_cache_size"`
		MaxRetries             uint64   `json:"max_retries"`
		AirdropEnabled         bool     `json:"airdrop_enabled"`
	} `json:"ledger,omitempty"`

	Storage struct {
		Driver string `json:"driver"`
		DB     struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		TokenSignKey   string   `json:"token_sign_key"`
		TokenIssuer    string   `json:"token_issuer"`
		TokenDuration  Duration `json:"token_duration"`
	} `json:"adapter,omitempty"`

	Workers struct {
		MonitorInterval Duration `json:"monitor_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			ProgramID:     jsonCfg.App.ProgramID,
			BalanceScheme: jsonCfg.App.BalanceScheme,
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
		},
		Ledger: Ledger{
			LamportsPerByteYear:    jsonCfg.Ledger.LamportsPerByteYear,
			MaxTransactionAge:      time.Duration(jsonCfg.Ledger.MaxTransactionAge),
			SeenSignatureCacheSize: jsonCfg.Ledger.SeenSignatureCacheSize,
			DerivationCacheSize:    jsonCfg.Ledger.DerivationCacheSize,
			MaxRetries:             jsonCfg.Ledger.MaxRetries,
			AirdropEnabled:         jsonCfg.Ledger.AirdropEnabled,
		},
		Storage: Storage{
			Driver: jsonCfg.Storage.Driver,
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			TokenSignKey:   jsonCfg.Adapter.TokenSignKey,
			TokenIssuer:    jsonCfg.Adapter.TokenIssuer,
			TokenDuration:  time.Duration(jsonCfg.Adapter.TokenDuration),
		},
		Workers: Workers{
			MonitorInterval: time.Duration(jsonCfg.Workers.MonitorInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
