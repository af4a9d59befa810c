package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/suchimauz/court-booking-engine/internal/config"
)

// ErrMalformedTimeString — строка времени не соответствует формату "HH:MM".
// Это ошибка конфигурации, она не попадает в список нарушений валидации.
var ErrMalformedTimeString = errors.New("malformed time string, expected HH:MM")

// ParseClock разбирает строку "HH:MM" в часы и минуты.
// Требуются ровно две цифры в каждой части, час 00-23, минута 00-59.
func ParseClock(clock string) (int, int, error) {
	if len(clock) != 5 || clock[2] != ':' {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTimeString, clock)
	}

	var hour, minute int
	for _, idx := range []int{0, 1, 3, 4} {
		if clock[idx] < '0' || clock[idx] > '9' {
			return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTimeString, clock)
		}
	}
	hour = int(clock[0]-'0')*10 + int(clock[1]-'0')
	minute = int(clock[3]-'0')*10 + int(clock[4]-'0')

	if hour > 23 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTimeString, clock)
	}

	return hour, minute, nil
}

// CombineDateAndClock собирает абсолютный момент из календарной даты
// и строки "HH:MM" в указанной таймзоне. Секунды и миллисекунды нулевые.
func CombineDateAndClock(date time.Time, clock string, loc *time.Location) (time.Time, error) {
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}

	localDate := date.In(loc)
	return time.Date(localDate.Year(), localDate.Month(), localDate.Day(), hour, minute, 0, 0, loc), nil
}

// ToLocal проецирует абсолютный момент в календарь и часы таймзоны
func ToLocal(t time.Time, loc *time.Location) time.Time {
	return t.In(loc)
}

// FormatClock форматирует момент как "HH:MM" в указанной таймзоне
func FormatClock(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("15:04")
}

// EndOfDay возвращает последний момент календарного дня (23:59:59.999) в таймзоне
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	localDate := t.In(loc)
	return time.Date(localDate.Year(), localDate.Month(), localDate.Day(), 23, 59, 59, 999000000, loc)
}

// StartCurrentDay возвращает начало текущего дня, таймзона остается прежней
func StartCurrentDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartNextDay возвращает начало следующего дня, таймзона остается прежней
func StartNextDay(t time.Time) time.Time {
	newDate := t.AddDate(0, 0, 1)
	return time.Date(newDate.Year(), newDate.Month(), newDate.Day(), 0, 0, 0, 0, newDate.Location())
}

// ParseDate парсит дату из строки в формате RFC3339, если не удается,
// то пробует дату со временем без таймзоны, затем дату без времени
func ParseDate(str string) (time.Time, error) {
	parsedDate, err := time.Parse(time.RFC3339, str)
	if err != nil {
		location := config.TimeZone
		parsedDate, err = time.ParseInLocation("2006-01-02T15:04:05", str, location)
		if err != nil {
			parsedDate, err = time.ParseInLocation("2006-01-02", str, location)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse date: %v", err)
			}
		}
	}

	return parsedDate, nil
}
