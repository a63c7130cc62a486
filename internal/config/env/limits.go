package env

import (
	"fmt"
	"os"
	"strconv"

	"lucky_wheel/internal/config"
	"lucky_wheel/pkg/ether"
)

const (
	spinRatePerSecEnvName = "SPIN_RATE_PER_SEC"
	spinRateBurstEnvName  = "SPIN_RATE_BURST"
	maxDepositEnvName     = "MAX_DEPOSIT"

	defaultSpinRatePerSec = 5
	defaultSpinRateBurst  = 10
	defaultMaxDeposit     = "1"
)

type limitsConfig struct {
	spinRatePerSec float64
	spinRateBurst  int
	maxDeposit     int64
}

func NewLimitsConfig() (config.LimitsConfig, error) {
	cfg := &limitsConfig{
		spinRatePerSec: defaultSpinRatePerSec,
		spinRateBurst:  defaultSpinRateBurst,
		maxDeposit:     ether.MustParse(defaultMaxDeposit),
	}

	if raw := os.Getenv(spinRatePerSecEnvName); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("invalid %s: %q", spinRatePerSecEnvName, raw)
		}
		cfg.spinRatePerSec = v
	}

	if raw := os.Getenv(spinRateBurstEnvName); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("invalid %s: %q", spinRateBurstEnvName, raw)
		}
		cfg.spinRateBurst = v
	}

	if raw := os.Getenv(maxDepositEnvName); raw != "" {
		v, err := ether.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", maxDepositEnvName, err)
		}
		cfg.maxDeposit = v
	}

	return cfg, nil
}

func (c *limitsConfig) SpinRatePerSec() float64 { return c.spinRatePerSec }
func (c *limitsConfig) SpinRateBurst() int      { return c.spinRateBurst }
func (c *limitsConfig) MaxDeposit() int64       { return c.maxDeposit }
