package out

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/court-booking-engine/internal/core/domain"
)

type CachePort interface {
	// Кэширование конфигурации кортов
	GetCourt(ctx context.Context, courtID uuid.UUID) (*domain.Court, bool)
	StoreCourt(ctx context.Context, court domain.Court)
	InvalidateCourt(ctx context.Context, courtID uuid.UUID)

	// Кэширование локации организации
	GetOrgLocation(ctx context.Context, orgID uuid.UUID) (*domain.OrgLocation, bool)
	StoreOrgLocation(ctx context.Context, location domain.OrgLocation)
	InvalidateOrgLocation(ctx context.Context, orgID uuid.UUID)

	// Кэширование сетки слотов на день по корту
	GetDaySlots(ctx context.Context, courtID uuid.UUID, date time.Time) ([]domain.Slot, bool)
	StoreDaySlots(ctx context.Context, courtID uuid.UUID, date time.Time, slots []domain.Slot)
	InvalidateDaySlots(ctx context.Context, courtID uuid.UUID)

	// Полный сброс, используется обработчиком событий "_all_"
	InvalidateAll(ctx context.Context)
}
