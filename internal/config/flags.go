package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line arguments into a partial config.
//
// Flags:
//
//	-a              HTTP server address in format [host]:[port]
//	-grpc-address   gRPC server address in format [host]:[port]
//	-program-id     base58 program id
//	-scheme         balance scheme (confidential|plaintext)
//	-log-level      zerolog level
//	-storage        storage driver (memory|postgres|sqlite)
//	-d              database DSN or SQLite file
//	-c/-config      json file path with configs
//	-coprocessor    coprocessor base URL
//	-token-sign-key coprocessor token signing key
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-monitor-interval vault monitor interval
//	-airdrop        enable the development faucet
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("confidential-vault", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var programID, scheme, logLevel string
	var driver, databaseDSN string
	var jsonConfigPath string
	var coprocessorAddress, tokenSignKey string
	var requestTimeout, monitorInterval time.Duration
	var airdrop bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&programID, "program-id", "", "Program id (base58)")
	fs.StringVar(&scheme, "scheme", "", "Balance scheme: confidential or plaintext")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&driver, "storage", "", "Storage driver: memory, postgres or sqlite")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&coprocessorAddress, "coprocessor", "", "Coprocessor base URL")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Coprocessor token signing key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&monitorInterval, "monitor-interval", 0, "Vault monitor interval")
	fs.BoolVar(&airdrop, "airdrop", false, "Enable the development faucet")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			ProgramID:     programID,
			BalanceScheme: scheme,
			LogLevel:      logLevel,
		},
		Ledger: Ledger{
			AirdropEnabled: airdrop,
		},
		Storage: Storage{
			Driver: driver,
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:  coprocessorAddress,
			TokenSignKey: tokenSignKey,
		},
		Workers: Workers{
			MonitorInterval: monitorInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
