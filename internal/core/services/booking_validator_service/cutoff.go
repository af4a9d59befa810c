package booking_validator_service

import (
	"time"

	"github.com/suchimauz/court-booking-engine/internal/core/domain"
	"github.com/suchimauz/court-booking-engine/internal/utils"
)

// resolveCutoff определяет последнее допустимое время окончания брони на дату.
// Корт с освещением отсечки не имеет. Иначе берется переопределение из
// конфигурации корта, а при его отсутствии — расчетный закат.
// Ошибка возможна только на кривой строке переопределения, это ошибка
// конфигурации и она не попадает в список нарушений.
func resolveCutoff(date time.Time, court *domain.Court, location domain.OrgLocation, loc *time.Location) (time.Time, bool, error) {
	if court.HasLighting {
		return time.Time{}, false, nil
	}

	if court.SunsetCutoffOverride != "" {
		cutoff, err := utils.CombineDateAndClock(date, court.SunsetCutoffOverride, loc)
		if err != nil {
			return time.Time{}, false, err
		}
		return cutoff, true, nil
	}

	return EstimateSunset(date, location.Latitude, location.Longitude, loc), true, nil
}
