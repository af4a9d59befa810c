package domain

import (
	"time"
)

// TimeInterval — полуоткрытый интервал [Start, End).
// Интервал, который заканчивается ровно в момент начала другого,
// пересечением не считается, поэтому брони "впритык" допустимы.
type TimeInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// IsOrdered проверяет, что конец интервала строго позже начала.
// Движок не предполагает этот инвариант, а проверяет его явно.
func (i TimeInterval) IsOrdered() bool {
	return i.End.After(i.Start)
}

// DurationMinutes возвращает длительность интервала в целых минутах
func (i TimeInterval) DurationMinutes() int {
	return int(i.End.Sub(i.Start) / time.Minute)
}
