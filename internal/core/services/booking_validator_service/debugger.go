package booking_validator_service

import (
	"sync"

	"github.com/suchimauz/court-booking-engine/internal/core/domain"
)

type BookingValidatorServiceDebug struct {
	mu   sync.Mutex
	data []domain.DebugInfo
}

func (d *BookingValidatorServiceDebug) AddDebugInfo(info domain.DebugInfo) {
	d.mu.Lock()
	d.data = append(d.data, info)
	d.mu.Unlock()
}
