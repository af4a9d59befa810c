package utils

import "fmt"

// FormatDuration форматирует длительность в минутах как "XhYm".
// Нулевой остаток минут скрывается, нулевые часы скрываются, 0 минут — "0m".
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}
