package domain

import (
	"time"

	"github.com/google/uuid"
)

type DayOfWeek string

const (
	DayOfWeekMon DayOfWeek = "mon"
	DayOfWeekTue DayOfWeek = "tue"
	DayOfWeekWed DayOfWeek = "wed"
	DayOfWeekThu DayOfWeek = "thu"
	DayOfWeekFri DayOfWeek = "fri"
	DayOfWeekSat DayOfWeek = "sat"
	DayOfWeekSun DayOfWeek = "sun"
)

var DaysOfWeekMap = map[time.Weekday]DayOfWeek{
	time.Monday:    DayOfWeekMon,
	time.Tuesday:   DayOfWeekTue,
	time.Wednesday: DayOfWeekWed,
	time.Thursday:  DayOfWeekThu,
	time.Friday:    DayOfWeekFri,
	time.Saturday:  DayOfWeekSat,
	time.Sunday:    DayOfWeekSun,
}

// OpenHours — часы работы корта в пределах одного дня.
// Время хранится строками "HH:MM" как в конфигурации платформы,
// в абсолютные отметки переводится один раз на входе в движок.
type OpenHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

type Court struct {
	ID          uuid.UUID `json:"id"`
	OrgID       uuid.UUID `json:"orgId"`
	Name        string    `json:"name"`
	HasLighting bool      `json:"hasLighting"`
	// Дни, которых нет в мапе, считаются выходными
	WeeklyOpenHours map[DayOfWeek]OpenHours `json:"weeklyOpenHours"`
	// Переопределение времени заката, пустая строка — не задано
	SunsetCutoffOverride string `json:"sunsetCutoffOverride,omitempty"`
}

// OpenHoursFor — единственная точка вопроса "работает ли корт в этот день недели"
func (c *Court) OpenHoursFor(weekday time.Weekday) (OpenHours, bool) {
	hours, ok := c.WeeklyOpenHours[DaysOfWeekMap[weekday]]
	return hours, ok
}
