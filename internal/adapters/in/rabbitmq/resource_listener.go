package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/court-booking-engine/internal/config"
	"github.com/suchimauz/court-booking-engine/internal/core/ports/in"
	"github.com/suchimauz/court-booking-engine/internal/core/ports/out"
)

// ResourceListener слушает события изменения ресурсов платформы
// и дергает инвалидацию кэшей, чтобы валидация видела свежие данные.
type ResourceListener struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	useCase in.BookingValidatorUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

// Ключ маршрутизации: <source>.<receiver>.<resourceType>.<hitType>
type ResourceMessageRoutingKey struct {
	Source       string
	Receiver     string
	ResourceType string
	HitType      string
}

const (
	HitTypeStore      = "store"
	HitTypeInvalidate = "invalidate"
)

type ResourceMessage struct {
	ID      uuid.UUID `json:"id"`
	CourtID uuid.UUID `json:"courtId,omitempty"`
	OrgID   uuid.UUID `json:"orgId,omitempty"`
}

func parseRoutingKey(routingKey string) (*ResourceMessageRoutingKey, error) {
	parts := strings.Split(routingKey, ".")
	if len(parts) != 4 {
		return nil, fmt.Errorf("unexpected routing key format: %s", routingKey)
	}

	return &ResourceMessageRoutingKey{
		Source:       parts[0],
		Receiver:     parts[1],
		ResourceType: parts[2],
		HitType:      parts[3],
	}, nil
}

func NewResourceListener(useCase in.BookingValidatorUseCase, cfg *config.Config, logger out.LoggerPort) (*ResourceListener, error) {
	if !cfg.RabbitMq.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMq.AmqpUri)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
			"url":   cfg.RabbitMq.AmqpUri,
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &ResourceListener{
		conn:    conn,
		channel: channel,
		useCase: useCase,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (l *ResourceListener) Start(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMq.Queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				if err := l.processMessage(ctx, msg); err != nil {
					l.logger.Error("rabbitmq.message.process_failed", out.LogFields{
						"routingKey": msg.RoutingKey,
						"error":      err.Error(),
					})
					msg.Nack(false, false)
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	return nil
}

func (l *ResourceListener) processMessage(ctx context.Context, msg amqp.Delivery) error {
	routingKey, err := parseRoutingKey(msg.RoutingKey)
	if err != nil {
		return err
	}

	// Store-события тоже ведут к инвалидации: проще пересчитать сетку,
	// чем аккуратно обновлять закэшированные слоты на месте
	if routingKey.HitType != HitTypeStore && routingKey.HitType != HitTypeInvalidate {
		return fmt.Errorf("unexpected hit type: %s", routingKey.HitType)
	}

	var message ResourceMessage
	if len(msg.Body) > 0 {
		if err := json.Unmarshal(msg.Body, &message); err != nil {
			return err
		}
	}

	l.logger.Debug("rabbitmq.message.received", out.LogFields{
		"resourceType": routingKey.ResourceType,
		"hitType":      routingKey.HitType,
		"resourceId":   message.ID,
	})

	return l.useCase.HandleResourceEvent(ctx, in.ResourceEvent{
		ResourceType: routingKey.ResourceType,
		ResourceID:   message.ID,
		CourtID:      message.CourtID,
		OrgID:        message.OrgID,
	})
}

func (l *ResourceListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}
