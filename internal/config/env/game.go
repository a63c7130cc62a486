package env

import (
	"fmt"
	"os"

	"lucky_wheel/internal/config"
	"lucky_wheel/internal/model"
	servModel "lucky_wheel/internal/service/wheel/model"
	"lucky_wheel/pkg/ether"

	"gopkg.in/yaml.v3"
)

const gameConfigPathEnvName = "GAME_CONFIG_PATH"

type gameConfig struct {
	paytable servModel.Paytable
}

type yamlPrize struct {
	Tier   string `yaml:"tier"`
	Weight int    `yaml:"weight"`
	Payout string `yaml:"payout"`
}

type yamlGame struct {
	SpinCost string      `yaml:"spin_cost"`
	Prizes   []yamlPrize `yaml:"prizes"`
}

// NewGameConfig таблица выплат из GAME_CONFIG_PATH, без него - значения контракта
func NewGameConfig() (config.GameConfig, error) {
	path := os.Getenv(gameConfigPathEnvName)
	if len(path) == 0 {
		return &gameConfig{paytable: servModel.DefaultPaytable()}, nil
	}
	return NewGameConfigFromYAML(path)
}

func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read game config: %w", err)
	}
	return parseGameConfig(data)
}

func parseGameConfig(data []byte) (config.GameConfig, error) {
	var raw yamlGame
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	cost, err := ether.Parse(raw.SpinCost)
	if err != nil {
		return nil, fmt.Errorf("spin_cost: %w", err)
	}

	paytable := servModel.Paytable{SpinCost: cost}
	for i, p := range raw.Prizes {
		tier, ok := model.ParsePrizeTier(p.Tier)
		if !ok {
			return nil, fmt.Errorf("prizes[%d]: unknown tier %q", i, p.Tier)
		}

		payout := int64(0)
		if p.Payout != "" {
			if payout, err = ether.Parse(p.Payout); err != nil {
				return nil, fmt.Errorf("prizes[%d].payout: %w", i, err)
			}
		}

		paytable.Prizes = append(paytable.Prizes, servModel.Prize{Tier: tier, Weight: p.Weight, Payout: payout})
	}

	if err = paytable.Validate(); err != nil {
		return nil, err
	}

	return &gameConfig{paytable: paytable}, nil
}

func (c *gameConfig) Paytable() servModel.Paytable {
	return c.paytable
}
