package env

import (
	"errors"
	"fmt"
	"os"

	"lucky_wheel/internal/config"
)

const (
	randomSourceEnvName = "RANDOM_SOURCE"
	serverSeedEnvName   = "SERVER_SEED"
)

type randomConfig struct {
	source     string
	serverSeed string
}

func NewRandomConfig() (config.RandomConfig, error) {
	cfg := &randomConfig{
		source:     os.Getenv(randomSourceEnvName),
		serverSeed: os.Getenv(serverSeedEnvName),
	}

	switch cfg.source {
	case "":
		cfg.source = config.RandomCrypto
	case config.RandomCrypto:
	case config.RandomHMAC:
		if len(cfg.serverSeed) == 0 {
			return nil, errors.New("server seed is required for hmac random source")
		}
	default:
		return nil, fmt.Errorf("unknown random source %q", cfg.source)
	}

	return cfg, nil
}

func (c *randomConfig) Source() string     { return c.source }
func (c *randomConfig) ServerSeed() string { return c.serverSeed }
