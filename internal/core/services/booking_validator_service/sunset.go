package booking_validator_service

import (
	"math"
	"time"

	"github.com/suchimauz/court-booking-engine/internal/utils"
)

// EstimateSunset вычисляет приблизительное местное время заката по упрощенной
// формуле солнечного склонения. Точность порядка ±10 минут, этого достаточно
// для отсечки бронирований на кортах без освещения. Если закат нужен точнее,
// компонент заменяется целиком на астрономическую библиотеку, подкручивать
// формулу бессмысленно — погрешность структурная.
func EstimateSunset(date time.Time, latitude, longitude float64, loc *time.Location) time.Time {
	localDate := date.In(loc)

	dayOfYear := float64(localDate.YearDay())
	declination := 0.409 * math.Sin(2*math.Pi*dayOfYear/365-1.39)

	latitudeRad := latitude * math.Pi / 180
	cosHourAngle := -math.Tan(latitudeRad) * math.Tan(declination)

	// Полярный день или полярная ночь — заката в этот день нет,
	// возвращаем конец суток как значение "отсечка не наступает"
	if cosHourAngle < -1 || cosHourAngle > 1 {
		return utils.EndOfDay(localDate, loc)
	}

	hourAngle := math.Acos(cosHourAngle)
	sunsetHour := 12 + hourAngle*12/math.Pi - longitude/15

	hour := int(sunsetHour)
	minute := int(math.Round((sunsetHour - float64(hour)) * 60))

	// time.Date нормализует перенос минут и отрицательные часы
	return time.Date(localDate.Year(), localDate.Month(), localDate.Day(), hour, minute, 0, 0, loc)
}
