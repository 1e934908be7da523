package config

import (
	"encoding/json"
	"os"
	"time"
)

type serverJSON struct {
	Address       *string         `json:"address"`
	Restore       *bool           `json:"restore"`
	StoreInterval *string         `json:"store_interval"` // "300s"
	StoreFile     *string         `json:"store_file"`
	DatabaseDSN   *string         `json:"database_dsn"`
	TrustedSubnet *string         `json:"trusted_subnet"`
	RateLimit     *float64        `json:"rate_limit"`
	Thresholds    *thresholdsJSON `json:"thresholds"`
}

// thresholdsJSON overrides individual sanity policy constants.
type thresholdsJSON struct {
	CapRateWarnAbove   *float64 `json:"cap_rate_warn_above"`
	DSCRWarnBelow      *float64 `json:"dscr_warn_below"`
	LTVMax             *float64 `json:"ltv_max"`
	VacancyWarnAbove   *float64 `json:"vacancy_warn_above"`
	BreakEvenWarnAbove *float64 `json:"break_even_warn_above"`
	OpExRatioWarnAbove *float64 `json:"opex_ratio_warn_above"`
}

func loadServerJSON(path string) (*serverJSON, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg serverJSON
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parseDurationSeconds(s string) (int, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	return int(d / time.Second), nil
}
