package domain

import (
	"slices"

	"github.com/google/uuid"
)

// MaintenanceBlock закрывает один или несколько кортов на интервал.
// У блока нет статуса, он всегда действует на своем интервале.
type MaintenanceBlock struct {
	ID       uuid.UUID    `json:"id"`
	OrgID    uuid.UUID    `json:"orgId"`
	CourtIDs []uuid.UUID  `json:"courtIds"`
	Interval TimeInterval `json:"interval"`
	Reason   string       `json:"reason"`
}

func (b MaintenanceBlock) AppliesTo(courtID uuid.UUID) bool {
	return slices.Contains(b.CourtIDs, courtID)
}
