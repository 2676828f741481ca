package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Settings struct {
	APIBase       string        `envconfig:"API_BASE" default:"https://codeforces.com/api"`
	HTTPTimeout   time.Duration `envconfig:"HTTP_TIMEOUT" default:"0s"`
	Address       string        `envconfig:"ADDRESS" default:"127.0.0.1:8080"`
	LogDir        string        `envconfig:"LOG_DIR" default:"./logs"`
	HistoryDriver string        `envconfig:"HISTORY_DRIVER"`
	HistoryDSN    string        `envconfig:"HISTORY_DSN"`
	CookieKey     string        `envconfig:"COOKIE_KEY"`
}

var Site Settings

func InitSettings() error {
	return envconfig.Process("CFPREDICT", &Site)
}
