package domain

import (
	"github.com/google/uuid"
)

type SlotStatus string

const (
	SlotStatusFree     SlotStatus = "free"
	SlotStatusOccupied SlotStatus = "occupied"
)

type Slot struct {
	Interval   TimeInterval `json:"interval"`
	Week       DayOfWeek    `json:"week"`
	Status     SlotStatus   `json:"status"`
	BookingIDS []uuid.UUID  `json:"bookings,omitempty"`
}
