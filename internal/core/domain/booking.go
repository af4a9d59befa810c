package domain

import (
	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPendingPayment BookingStatus = "pending_payment"
	BookingStatusConfirmed      BookingStatus = "confirmed"
	BookingStatusCanceled       BookingStatus = "canceled"
	BookingStatusRefunded       BookingStatus = "refunded"
)

// ActiveForConflictCheck сообщает, участвует ли бронь с таким статусом
// в проверках пересечений (по корту и по тренеру).
// Отмененные и возвращенные брони не блокируют расписание.
func (s BookingStatus) ActiveForConflictCheck() bool {
	return s == BookingStatusConfirmed || s == BookingStatusPendingPayment
}

// CountsForBuffer сообщает, участвует ли бронь в проверке буфера.
// Буфер считается только от подтвержденных броней, неоплаченные не учитываются.
// TODO: подтвердить у продукта, что pending_payment намеренно не держит буфер
func (s BookingStatus) CountsForBuffer() bool {
	return s == BookingStatusConfirmed
}

type Booking struct {
	ID       uuid.UUID     `json:"id"`
	OrgID    uuid.UUID     `json:"orgId"`
	CourtID  uuid.UUID     `json:"courtId"`
	Interval TimeInterval  `json:"interval"`
	Status   BookingStatus `json:"status"`
	// CoachID равен uuid.Nil, если тренер к брони не привязан
	CoachID uuid.UUID `json:"coachId,omitempty"`
}
