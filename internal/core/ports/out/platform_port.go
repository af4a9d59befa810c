package out

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/court-booking-engine/internal/core/domain"
)

// PlatformPort — доступ к core API платформы бронирования.
// Движок валидации сам не ходит в хранилище, все кандидаты загружаются здесь.
type PlatformPort interface {
	// Конфигурация кортов и организации
	GetCourt(ctx context.Context, courtID uuid.UUID) (*domain.Court, error)
	GetOrgLocation(ctx context.Context, orgID uuid.UUID) (*domain.OrgLocation, error)

	// Кандидаты для проверок пересечений.
	// Интервал запроса должен покрывать проверяемый интервал плюс буфер.
	GetCourtBookings(ctx context.Context, courtID uuid.UUID, startDate, endDate time.Time) ([]domain.Booking, error)
	GetCoachBookings(ctx context.Context, coachID uuid.UUID, startDate, endDate time.Time) ([]domain.Booking, error)
	GetMaintenanceBlocks(ctx context.Context, courtID uuid.UUID, startDate, endDate time.Time) ([]domain.MaintenanceBlock, error)
}

// PlatformBundleResponse — конверт списочных ответов core API
type PlatformBundleResponse struct {
	Total int `json:"total"`
	Entry []struct {
		Resource json.RawMessage `json:"resource"`
	} `json:"entry"`
}
