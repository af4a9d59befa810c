package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	inhttp "github.com/suchimauz/court-booking-engine/internal/adapters/in/http"
	"github.com/suchimauz/court-booking-engine/internal/adapters/in/rabbitmq"
	"github.com/suchimauz/court-booking-engine/internal/adapters/out/cache"
	"github.com/suchimauz/court-booking-engine/internal/adapters/out/logger"
	"github.com/suchimauz/court-booking-engine/internal/adapters/out/platform"
	"github.com/suchimauz/court-booking-engine/internal/config"
	"github.com/suchimauz/court-booking-engine/internal/core/ports/out"
	"github.com/suchimauz/court-booking-engine/internal/core/services/booking_validator_service"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Вне локального окружения debug-логи не пишем
	minLevel := out.LogLevelInfo
	if cfg.IsLocal() {
		minLevel = out.LogLevelDebug
	}

	mainLogger, err := logger.NewConsoleLogger(cfg.App.Timezone, minLevel)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"rabbitmqEnabled": cfg.RabbitMq.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
	})

	// Настройка Gin в зависимости от окружения
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Инициализация адаптеров
	platformAdapter := platform.NewPlatformAdapter(cfg, mainLogger.WithModule("PlatformAdapter"))

	var cacheAdapter out.CachePort
	if cfg.Cache.Enabled {
		adapter, err := cache.NewCacheAdapter(cfg, mainLogger.WithModule("CacheAdapter"))
		if err != nil {
			log.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		cacheAdapter = adapter
	}

	// Инициализация сервиса
	validatorService := booking_validator_service.NewBookingValidatorService(
		platformAdapter,
		cacheAdapter,
		mainLogger.WithModule("BookingValidatorService"),
		cfg,
	)

	// Настройка HTTP сервера
	router := gin.Default()
	controller := inhttp.NewBookingValidatorController(validatorService, cfg)
	controller.RegisterRoutes(router)

	// Слушатель событий платформы только если включен RabbitMQ
	if cfg.RabbitMq.Enabled {
		listener, err := rabbitmq.NewResourceListener(
			validatorService,
			cfg,
			mainLogger.WithModule("RabbitMQListener"),
		)
		if err != nil {
			log.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if err := listener.Start(ctx); err != nil {
			log.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		defer func() {
			if err := listener.Stop(); err != nil {
				log.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			log.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	log.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})
}
