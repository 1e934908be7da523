// Package config provides application configuration structures and helpers.
// Precedence, lowest first: defaults, JSON config file, flags, environment.
package config

import (
	"flag"
	"log"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/calc"
)

// ServerConfig holds the configuration settings for the server.
type ServerConfig struct {
	Addr            string // Server address
	Logger          *zap.SugaredLogger
	StoreInterval   int     // Interval for snapshotting analyses to file (in seconds)
	FileStoragePath string  // Path to the file for analysis snapshots
	Restore         bool    // Whether to restore analyses from file on startup
	DatabaseDsn     string  // Data Source Name for PostgreSQL
	Key             string  // Key for body hash verification
	TrustedSubnet   string  // CIDR, ex. "192.168.1.0/24"
	RateLimit       float64 // Analyze requests per second; 0 disables limiting
	Thresholds      calc.Policy
}

// NewServerConfig creates and returns a new ServerConfig by parsing the
// config file, flags and environment variables.
func NewServerConfig() *ServerConfig {
	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{"stdout", "server.log"}
	logger := zap.Must(logCfg.Build())

	// 0) defaults
	cfg := &ServerConfig{
		Addr:            "localhost:8080",
		StoreInterval:   300,
		FileStoragePath: "./tmp/analyses-db.json",
		Restore:         true,
		Thresholds:      calc.DefaultPolicy(),
	}

	// 1) flags
	var fAddr strFlag
	fAddr.v = cfg.Addr
	var fStoreI intFlag
	fStoreI.v = cfg.StoreInterval
	var fFile strFlag
	fFile.v = cfg.FileStoragePath
	var fRestore boolFlag
	fRestore.v = cfg.Restore
	var fDSN strFlag
	var fKey strFlag
	var fConf strFlag // -c / -config
	var fTrustedSubnet strFlag
	var fRateLimit f64Flag

	flag.Var(&fAddr, "a", "HTTP server address")
	flag.Var(&fStoreI, "i", "store interval (seconds)")
	flag.Var(&fFile, "f", "path to analyses snapshot file")
	flag.Var(&fRestore, "r", "restore from file")
	flag.Var(&fDSN, "d", "DB connection string")
	flag.Var(&fKey, "k", "Hash key string")
	flag.Var(&fConf, "c", "Path to JSON config file")
	flag.Var(&fConf, "config", "Path to JSON config file (alias)")
	flag.Var(&fTrustedSubnet, "t", "trusted subnet")
	flag.Var(&fRateLimit, "l", "analyze rate limit (requests/second)")
	flag.Parse()

	cfg.Addr = fAddr.v
	cfg.StoreInterval = fStoreI.v
	cfg.FileStoragePath = fFile.v
	cfg.Restore = fRestore.v
	cfg.DatabaseDsn = fDSN.v
	cfg.Key = fKey.v
	cfg.TrustedSubnet = fTrustedSubnet.v
	cfg.RateLimit = fRateLimit.v

	// 2) JSON (lowest priority, fills whatever flags left unset)
	if fConf.v == "" {
		if v := os.Getenv("CONFIG"); v != "" {
			fConf.v = v
		}
	}

	if fConf.v != "" {
		if js, err := loadServerJSON(fConf.v); err == nil {
			if js.Address != nil && !fAddr.set {
				cfg.Addr = *js.Address
			}
			if js.Restore != nil && !fRestore.set {
				cfg.Restore = *js.Restore
			}
			if js.StoreInterval != nil && !fStoreI.set {
				if sec, err := parseDurationSeconds(*js.StoreInterval); err == nil {
					cfg.StoreInterval = sec
				}
			}
			if js.StoreFile != nil && !fFile.set {
				cfg.FileStoragePath = *js.StoreFile
			}
			if js.DatabaseDSN != nil && !fDSN.set {
				cfg.DatabaseDsn = *js.DatabaseDSN
			}
			if js.TrustedSubnet != nil && !fTrustedSubnet.set {
				cfg.TrustedSubnet = *js.TrustedSubnet
			}
			if js.RateLimit != nil && !fRateLimit.set {
				cfg.RateLimit = *js.RateLimit
			}
			applyThresholds(&cfg.Thresholds, js.Thresholds)
		} else {
			log.Printf("failed to load config file %s: %v", fConf.v, err)
		}
	}

	// 3) environment
	readServerEnvironment(cfg)

	cfg.Logger = logger.Sugar()
	return cfg
}

func applyThresholds(pol *calc.Policy, t *thresholdsJSON) {
	if t == nil {
		return
	}
	if t.CapRateWarnAbove != nil {
		pol.CapRateWarnAbove = *t.CapRateWarnAbove
	}
	if t.DSCRWarnBelow != nil {
		pol.DSCRWarnBelow = *t.DSCRWarnBelow
	}
	if t.LTVMax != nil {
		pol.LTVMax = *t.LTVMax
	}
	if t.VacancyWarnAbove != nil {
		pol.VacancyWarnAbove = *t.VacancyWarnAbove
	}
	if t.BreakEvenWarnAbove != nil {
		pol.BreakEvenWarnAbove = *t.BreakEvenWarnAbove
	}
	if t.OpExRatioWarnAbove != nil {
		pol.OpExRatioWarnAbove = *t.OpExRatioWarnAbove
	}
}

func readServerEnvironment(cfg *ServerConfig) {
	if addr := os.Getenv("ADDRESS"); addr != "" {
		cfg.Addr = addr
	}

	storeIntervalEnv := os.Getenv("STORE_INTERVAL")
	if storeIntervalEnv != "" {
		v, err := strconv.Atoi(storeIntervalEnv)
		if err == nil {
			cfg.StoreInterval = v
		} else {
			log.Printf("invalid STORE_INTERVAL env var: %v", err)
		}
	}

	if fsp := os.Getenv("FILE_STORAGE_PATH"); fsp != "" {
		cfg.FileStoragePath = fsp
	}

	if dbDsn := os.Getenv("DATABASE_DSN"); dbDsn != "" {
		cfg.DatabaseDsn = dbDsn
	}

	restoreEnv := os.Getenv("RESTORE")
	if restoreEnv != "" {
		v, err := strconv.ParseBool(restoreEnv)
		if err == nil {
			cfg.Restore = v
		} else {
			log.Printf("invalid RESTORE env var: %v", err)
		}
	}

	if key := os.Getenv("KEY"); key != "" {
		cfg.Key = key
	}

	if trustedSubnet := os.Getenv("TRUSTED_SUBNET"); trustedSubnet != "" {
		cfg.TrustedSubnet = trustedSubnet
	}

	rateLimitEnv := os.Getenv("RATE_LIMIT")
	if rateLimitEnv != "" {
		v, err := strconv.ParseFloat(rateLimitEnv, 64)
		if err == nil {
			cfg.RateLimit = v
		} else {
			log.Printf("invalid RATE_LIMIT env var: %v", err)
		}
	}
}
