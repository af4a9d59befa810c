package domain

import (
	"github.com/google/uuid"
)

// OrgLocation — координаты и таймзона организации.
// Нужна расчету заката и интерпретации строк "HH:MM" как абсолютных моментов.
type OrgLocation struct {
	OrgID     uuid.UUID `json:"orgId"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timezone  string    `json:"timezone"`
}
