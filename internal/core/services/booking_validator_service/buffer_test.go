package booking_validator_service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/suchimauz/court-booking-engine/internal/core/domain"
)

func TestRespectsBuffer_ZeroIsNoOp(t *testing.T) {
	proposed := domain.TimeInterval{
		Start: datetime(2026, 1, 5, 10, 0),
		End:   datetime(2026, 1, 5, 11, 0),
	}
	// Бронь ровно на том же месте, но буфер нулевой — проверка всегда проходит
	existing := []domain.Booking{
		booking(testCourtID, domain.BookingStatusConfirmed, [2]int{10, 0}, [2]int{11, 0}),
	}

	assert.True(t, respectsBuffer(proposed, testCourtID, 0, existing, uuid.Nil))
}

func TestRespectsBuffer_TooSoonAfter(t *testing.T) {
	// Существующая бронь кончается в 11:00, буфер 15 минут —
	// начинать можно не раньше 11:15
	existing := []domain.Booking{
		booking(testCourtID, domain.BookingStatusConfirmed, [2]int{10, 0}, [2]int{11, 0}),
	}

	tooSoon := domain.TimeInterval{
		Start: datetime(2026, 1, 5, 11, 10),
		End:   datetime(2026, 1, 5, 12, 0),
	}
	assert.False(t, respectsBuffer(tooSoon, testCourtID, 15, existing, uuid.Nil))

	// Начало ровно в конец брони — тоже внутри буферной зоны
	atEnd := domain.TimeInterval{
		Start: datetime(2026, 1, 5, 11, 0),
		End:   datetime(2026, 1, 5, 12, 0),
	}
	assert.False(t, respectsBuffer(atEnd, testCourtID, 15, existing, uuid.Nil))

	// Ровно конец+буфер — уже допустимо, зона полуоткрытая
	atBoundary := domain.TimeInterval{
		Start: datetime(2026, 1, 5, 11, 15),
		End:   datetime(2026, 1, 5, 12, 0),
	}
	assert.True(t, respectsBuffer(atBoundary, testCourtID, 15, existing, uuid.Nil))
}

func TestRespectsBuffer_TooCloseBefore(t *testing.T) {
	// Существующая бронь начинается в 10:00, буфер 15 минут —
	// закончить нужно не позже 09:45
	existing := []domain.Booking{
		booking(testCourtID, domain.BookingStatusConfirmed, [2]int{10, 0}, [2]int{11, 0}),
	}

	tooClose := domain.TimeInterval{
		Start: datetime(2026, 1, 5, 9, 0),
		End:   datetime(2026, 1, 5, 9, 50),
	}
	assert.False(t, respectsBuffer(tooClose, testCourtID, 15, existing, uuid.Nil))

	// Конец встык к началу брони — внутри буферной зоны
	atStart := domain.TimeInterval{
		Start: datetime(2026, 1, 5, 9, 0),
		End:   datetime(2026, 1, 5, 10, 0),
	}
	assert.False(t, respectsBuffer(atStart, testCourtID, 15, existing, uuid.Nil))

	// Ровно начало-буфер — допустимо
	atBoundary := domain.TimeInterval{
		Start: datetime(2026, 1, 5, 9, 0),
		End:   datetime(2026, 1, 5, 9, 45),
	}
	assert.True(t, respectsBuffer(atBoundary, testCourtID, 15, existing, uuid.Nil))
}

func TestRespectsBuffer_OnlyConfirmedCount(t *testing.T) {
	proposed := domain.TimeInterval{
		Start: datetime(2026, 1, 5, 11, 0),
		End:   datetime(2026, 1, 5, 12, 0),
	}

	// Неоплаченная бронь буфер не держит
	pending := []domain.Booking{
		booking(testCourtID, domain.BookingStatusPendingPayment, [2]int{10, 0}, [2]int{11, 0}),
	}
	assert.True(t, respectsBuffer(proposed, testCourtID, 15, pending, uuid.Nil))

	// Чужой корт не считается
	otherCourt := []domain.Booking{
		booking(uuid.New(), domain.BookingStatusConfirmed, [2]int{10, 0}, [2]int{11, 0}),
	}
	assert.True(t, respectsBuffer(proposed, testCourtID, 15, otherCourt, uuid.Nil))
}

func TestRespectsBuffer_ExcludesEditedBooking(t *testing.T) {
	edited := booking(testCourtID, domain.BookingStatusConfirmed, [2]int{10, 0}, [2]int{11, 0})

	proposed := domain.TimeInterval{
		Start: datetime(2026, 1, 5, 11, 0),
		End:   datetime(2026, 1, 5, 12, 0),
	}

	assert.False(t, respectsBuffer(proposed, testCourtID, 15, []domain.Booking{edited}, uuid.Nil))
	assert.True(t, respectsBuffer(proposed, testCourtID, 15, []domain.Booking{edited}, edited.ID))
}
