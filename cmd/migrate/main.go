package main

import (
	"flag"

	"lucky_wheel/internal/config"
	"lucky_wheel/internal/config/env"
	"lucky_wheel/internal/db"

	"github.com/sirupsen/logrus"
)

func main() {
	down := flag.Bool("down", false, "roll back all migrations")
	envFile := flag.String("env", ".env", "path to .env file")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := config.Load(*envFile); err != nil {
		logrus.WithError(err).Warn("error loading .env file")
	}

	cfg, err := env.NewPGConfig()
	if err != nil {
		logrus.WithError(err).Fatal("database config")
	}

	if err = db.Migrate(cfg.DSN(), *down); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}
}
