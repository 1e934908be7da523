package config

import (
	"flag"
	"os"
	"strings"
)

// ClientConfig holds the configuration settings for the CLI client.
type ClientConfig struct {
	ServerAddr    string // Server address (http(s)://...)
	ClientTimeout int    // HTTP client timeout (in seconds)
	Key           string // Key for body hash generation
	PackageID     string // Calculation package to run
	PropertyType  string // office, retail, industrial, multifamily, mixed-use
	InputPath     string // Property data JSON file
	OutputPath    string // Optional path to write the full result JSON
}

// NewClientConfig creates and returns a new ClientConfig by parsing flags
// and environment variables.
func NewClientConfig() *ClientConfig {
	cfg := &ClientConfig{}
	flag.StringVar(&cfg.ServerAddr, "a", "http://localhost:8080", "HTTP server address (must include http(s)://)")
	flag.IntVar(&cfg.ClientTimeout, "timeout", 10, "client timeout (seconds)")
	flag.StringVar(&cfg.Key, "k", "", "Hash key string")
	flag.StringVar(&cfg.PackageID, "p", "", "package id, e.g. office-basic")
	flag.StringVar(&cfg.PropertyType, "t", "", "property type")
	flag.StringVar(&cfg.InputPath, "f", "", "path to property data JSON file")
	flag.StringVar(&cfg.OutputPath, "o", "", "write full result JSON to this path")
	flag.Parse()

	readClientEnvironment(cfg)

	if !strings.HasPrefix(cfg.ServerAddr, "http://") && !strings.HasPrefix(cfg.ServerAddr, "https://") {
		cfg.ServerAddr = "http://" + cfg.ServerAddr
	}

	return cfg
}

func readClientEnvironment(cfg *ClientConfig) {
	if addr := os.Getenv("ADDRESS"); addr != "" {
		cfg.ServerAddr = addr
	}

	if key := os.Getenv("KEY"); key != "" {
		cfg.Key = key
	}
}
