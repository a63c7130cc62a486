package env

import (
	"fmt"
	"os"

	"lucky_wheel/internal/config"
	"lucky_wheel/pkg/address"

	"github.com/sirupsen/logrus"
)

const (
	storageDriverEnvName = "STORAGE_DRIVER"
	ownerAddressEnvName  = "OWNER_ADDRESS"
	logLevelEnvName      = "LOG_LEVEL"
)

type appConfig struct {
	storageDriver string
	ownerAddress  string
	logLevel      logrus.Level
}

func NewAppConfig() (config.AppConfig, error) {
	cfg := &appConfig{
		storageDriver: os.Getenv(storageDriverEnvName),
		logLevel:      logrus.InfoLevel,
	}

	switch cfg.storageDriver {
	case "":
		cfg.storageDriver = config.StoragePostgres
	case config.StoragePostgres, config.StorageMemory:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.storageDriver)
	}

	// Без владельца эндпоинты казны недоступны никому
	if raw := os.Getenv(ownerAddressEnvName); raw != "" {
		owner, err := address.Normalize(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid owner address: %w", err)
		}
		cfg.ownerAddress = owner
	}

	if raw := os.Getenv(logLevelEnvName); raw != "" {
		level, err := logrus.ParseLevel(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		cfg.logLevel = level
	}

	return cfg, nil
}

func (c *appConfig) StorageDriver() string  { return c.storageDriver }
func (c *appConfig) OwnerAddress() string   { return c.ownerAddress }
func (c *appConfig) LogLevel() logrus.Level { return c.logLevel }
