package main

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/kylycht/converter/model"
	"github.com/kylycht/converter/service/nbrb"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPPort     string             `yaml:"http_port" env:"HTTP_PORT" validate:"required"`
	HostPage     string             `yaml:"host_page" env:"HOST_PAGE" validate:"required"`
	LogLevel     string             `yaml:"log_level" env:"LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn error"`
	ExchangeURL  string             `yaml:"exchange_url" env:"EXCHANGE_URL" validate:"required,url"`
	Periodicity  int                `yaml:"periodicity" env:"EXCHANGE_PERIODICITY" validate:"oneof=0 1"`
	BaseCurrency string             `yaml:"base_currency" env:"BASE_CURRENCY" validate:"len=3"`
	FetchTimeout time.Duration      `yaml:"fetch_timeout" env:"FETCH_TIMEOUT" validate:"gte=0"`
	RPS          float64            `yaml:"requests_per_second" env:"EXCHANGE_RPS" validate:"gte=0"`
	Burst        int                `yaml:"burst" env:"EXCHANGE_BURST" validate:"gte=0"`
	MaxInFlight  int64              `yaml:"max_in_flight" env:"EXCHANGE_MAX_IN_FLIGHT" validate:"gte=0"`
	DBUsername   string             `yaml:"db_username" env:"DB_USERNAME"`
	DBPassword   string             `yaml:"db_password" env:"DB_PASSWORD"`
	DBPort       string             `yaml:"db_port" env:"DB_PORT"`
	DBHost       string             `yaml:"db_host" env:"DB_HOST"`
	DBName       string             `yaml:"db_name" env:"DB_NAME" validate:"required_with=DBHost"`
	Widgets      []model.WidgetSpec `yaml:"widgets" validate:"dive"`
}

func defaultConfig() Config {
	return Config{
		HTTPPort:     ":3000",
		HostPage:     "index.html",
		LogLevel:     "info",
		ExchangeURL:  nbrb.DefaultBaseURL,
		BaseCurrency: nbrb.DefaultBase,
		RPS:          1,
		Burst:        10,
		MaxInFlight:  5,
		Widgets: []model.WidgetSpec{
			{Name: "main", Root: "#root", Currencies: []string{"USD", "EUR", "RUB"}},
		},
	}
}

// LoadConfig reads yaml file at path on top of defaults,
// applies environment overrides and validates the result.
// Missing file leaves defaults in place
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	content, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, err
	default:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
