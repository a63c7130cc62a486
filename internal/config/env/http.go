package env

import (
	"os"

	"lucky_wheel/internal/config"
)

const (
	httpAddrEnvName = "HTTP_ADDR"
	defaultHTTPAddr = ":8080"
)

type httpConfig struct {
	address string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	addr := os.Getenv(httpAddrEnvName)
	if len(addr) == 0 {
		addr = defaultHTTPAddr
	}

	return &httpConfig{address: addr}, nil
}

func (c *httpConfig) Address() string {
	return c.address
}
