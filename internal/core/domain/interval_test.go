package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func datetime(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func TestTimeInterval_Overlaps(t *testing.T) {
	base := TimeInterval{
		Start: datetime(2026, 1, 5, 10, 0),
		End:   datetime(2026, 1, 5, 11, 0),
	}

	// Встык — не пересечение, интервалы полуоткрытые
	backToBack := TimeInterval{
		Start: datetime(2026, 1, 5, 11, 0),
		End:   datetime(2026, 1, 5, 12, 0),
	}
	assert.False(t, base.Overlaps(backToBack))
	assert.False(t, backToBack.Overlaps(base))

	overlapping := TimeInterval{
		Start: datetime(2026, 1, 5, 10, 59),
		End:   datetime(2026, 1, 5, 11, 1),
	}
	assert.True(t, base.Overlaps(overlapping))

	contained := TimeInterval{
		Start: datetime(2026, 1, 5, 10, 15),
		End:   datetime(2026, 1, 5, 10, 45),
	}
	assert.True(t, base.Overlaps(contained))

	before := TimeInterval{
		Start: datetime(2026, 1, 5, 8, 0),
		End:   datetime(2026, 1, 5, 9, 0),
	}
	assert.False(t, base.Overlaps(before))
}

func TestTimeInterval_OverlapsSymmetry(t *testing.T) {
	intervals := []TimeInterval{
		{Start: datetime(2026, 1, 5, 9, 0), End: datetime(2026, 1, 5, 10, 0)},
		{Start: datetime(2026, 1, 5, 9, 30), End: datetime(2026, 1, 5, 10, 30)},
		{Start: datetime(2026, 1, 5, 10, 0), End: datetime(2026, 1, 5, 11, 0)},
		{Start: datetime(2026, 1, 5, 12, 0), End: datetime(2026, 1, 5, 13, 0)},
	}

	for _, a := range intervals {
		for _, b := range intervals {
			assert.Equal(t, a.Overlaps(b), b.Overlaps(a))
		}
	}
}

func TestTimeInterval_IsOrdered(t *testing.T) {
	ordered := TimeInterval{
		Start: datetime(2026, 1, 5, 10, 0),
		End:   datetime(2026, 1, 5, 11, 0),
	}
	assert.True(t, ordered.IsOrdered())

	reversed := TimeInterval{
		Start: datetime(2026, 1, 5, 11, 0),
		End:   datetime(2026, 1, 5, 10, 0),
	}
	assert.False(t, reversed.IsOrdered())

	empty := TimeInterval{
		Start: datetime(2026, 1, 5, 10, 0),
		End:   datetime(2026, 1, 5, 10, 0),
	}
	assert.False(t, empty.IsOrdered())
}

func TestTimeInterval_DurationMinutes(t *testing.T) {
	interval := TimeInterval{
		Start: datetime(2026, 1, 5, 10, 0),
		End:   datetime(2026, 1, 5, 12, 30),
	}
	assert.Equal(t, 150, interval.DurationMinutes())
}

func TestBookingStatus_Predicates(t *testing.T) {
	assert.True(t, BookingStatusConfirmed.ActiveForConflictCheck())
	assert.True(t, BookingStatusPendingPayment.ActiveForConflictCheck())
	assert.False(t, BookingStatusCanceled.ActiveForConflictCheck())
	assert.False(t, BookingStatusRefunded.ActiveForConflictCheck())

	// Буфер держат только подтвержденные брони
	assert.True(t, BookingStatusConfirmed.CountsForBuffer())
	assert.False(t, BookingStatusPendingPayment.CountsForBuffer())
	assert.False(t, BookingStatusCanceled.CountsForBuffer())
}
