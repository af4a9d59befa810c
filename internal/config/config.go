package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

// TimeZone — дефолтная таймзона приложения.
// Используется логгером и парсингом дат без явного смещения.
// Для расчетов движка всегда берется таймзона организации, а не эта.
var TimeZone = time.UTC

type ConfigBasicClient struct {
	Username string
	Password string
}

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"UTC"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	// Platform — core API платформы, откуда загружаются корты, брони и блокировки
	Platform struct {
		URL      string `env:"PLATFORM_URL"`
		Username string `env:"PLATFORM_USERNAME"`
		Password string `env:"PLATFORM_PASSWORD"`
	}

	Auth struct {
		BasicClientsString string `env:"AUTH_BASIC_CLIENTS" envDefault:"booking_engine:booking_engine"`
		BasicClients       []ConfigBasicClient
	}

	RabbitMq struct {
		Enabled bool   `env:"RABBITMQ_ENABLED"`
		AmqpUri string `env:"RABBITMQ_URL"`
		Queue   string `env:"RABBITMQ_QUEUE" envDefault:"booking-engine.cache"`
	}

	Cache struct {
		Enabled    bool `env:"CACHE_ENABLED"`
		CourtsSize int  `env:"CACHE_COURTS_SIZE" envDefault:"1000"`
		SlotsSize  int  `env:"CACHE_SLOTS_SIZE" envDefault:"1000"`
	}

	Booking struct {
		// За сколько дней вперед разрешено бронировать
		WindowDays int `env:"BOOKING_WINDOW_DAYS" envDefault:"14"`
		// Минимальный зазор между подтвержденными бронями, в минутах
		BufferMinutes int `env:"BOOKING_BUFFER_MINUTES" envDefault:"0"`
		// Ширина слота по умолчанию для выдачи расписания
		SlotIntervalMinutes int `env:"BOOKING_SLOT_INTERVAL_MINUTES" envDefault:"60"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Приведение окружения к нижнему регистру для унификации
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	// Загружаем дефолтную таймзону, при ошибке остаемся на UTC
	if loc, err := time.LoadLocation(cfg.App.Timezone); err == nil {
		TimeZone = loc
	}

	// Разбор пар логин:пароль для basic auth
	if cfg.Auth.BasicClients == nil {
		cfg.Auth.BasicClients = []ConfigBasicClient{}
	}
	clientPairs := strings.Split(cfg.Auth.BasicClientsString, ",")
	for _, pair := range clientPairs {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			cfg.Auth.BasicClients = append(cfg.Auth.BasicClients, ConfigBasicClient{
				Username: parts[0],
				Password: parts[1],
			})
		}
	}

	// Без RabbitMQ нет событий инвалидации, поэтому кэш принудительно выключаем
	if !cfg.RabbitMq.Enabled {
		cfg.Cache.Enabled = false
	}

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
