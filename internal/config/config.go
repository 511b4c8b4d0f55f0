package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	TelegramBot TelegramBot
	SleeperAPI  SleeperAPI
	Pool        Pool
	Server      Server
}

type TelegramBot struct {
	Enabled bool   `envconfig:"TELEGRAM_ENABLED" default:"true"`
	Token   string `envconfig:"TELEGRAM_TOKEN"`
	ChatID  int64  `envconfig:"CHAT_ID"`
}

type SleeperAPI struct {
	BaseURL    string        `envconfig:"SLEEPER_BASE_URL" default:"https://api.sleeper.app/v1"`
	Season     string        `envconfig:"SEASON" required:"true"`
	ScoringKey string        `envconfig:"SCORING_KEY" default:"pts_ppr"`
	Timeout    time.Duration `envconfig:"SLEEPER_TIMEOUT" default:"30s"`
}

type Pool struct {
	RosterFile      string        `envconfig:"ROSTER_FILE" required:"true"`
	AliasFile       string        `envconfig:"ALIAS_FILE"`
	RoundsFile      string        `envconfig:"ROUNDS_FILE"`
	RefreshInterval time.Duration `envconfig:"REFRESH_INTERVAL" default:"5m"`
	Timezone        string        `envconfig:"TIMEZONE" default:"America/Chicago"`
}

type Server struct {
	Addr string `envconfig:"HTTP_ADDR" default:":80"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
