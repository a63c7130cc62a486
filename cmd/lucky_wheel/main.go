package main

import (
	"lucky_wheel/internal/app"

	"github.com/sirupsen/logrus"
)

func main() {
	a := app.NewApp()
	if err := a.Run(); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
