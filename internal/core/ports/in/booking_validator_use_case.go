package in

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/court-booking-engine/internal/core/domain"
)

// ValidateBookingRequest — проверяемая заявка на бронь.
// CoachID и ExcludeBookingID равны uuid.Nil, если не заданы.
// ExcludeBookingID исключает бронь из проверок при редактировании на месте.
type ValidateBookingRequest struct {
	OrgID            uuid.UUID
	CourtID          uuid.UUID
	Interval         domain.TimeInterval
	CoachID          uuid.UUID
	ExcludeBookingID uuid.UUID
}

const (
	ResourceTypeBooking          = "booking"
	ResourceTypeMaintenanceBlock = "maintenanceblock"
	ResourceTypeCourt            = "court"
	ResourceTypeOrganization     = "organization"
	ResourceTypeAll              = "_all_"
)

// ResourceEvent — событие изменения ресурса платформы.
// Приходит из шины событий и ведет к инвалидации кэшей.
type ResourceEvent struct {
	ResourceType string
	ResourceID   uuid.UUID
	CourtID      uuid.UUID
	OrgID        uuid.UUID
}

type BookingValidatorUseCase interface {
	// Проверка заявки на бронь по всем бизнес-правилам
	ValidateBooking(ctx context.Context, req ValidateBookingRequest) (*domain.ValidationResult, []domain.DebugInfo, error)

	// Сетка слотов корта на день с отметками занятости
	GetDaySlots(ctx context.Context, orgID uuid.UUID, courtID uuid.UUID, date time.Time, intervalMinutes int) ([]domain.Slot, error)

	// Обработка события изменения ресурса платформы
	HandleResourceEvent(ctx context.Context, event ResourceEvent) error
}
