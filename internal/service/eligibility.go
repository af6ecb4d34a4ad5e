package service

import (
    "context"
    "errors"

    "github.com/iliyamo/hotel-room-booking/internal/model"
    "github.com/iliyamo/hotel-room-booking/internal/repository"
)

// EligibilityChecker decides whether a user may hold a hotel booking:
// they must be enrolled, their ticket must be paid, and the ticket
// type must be in-person with a hotel included.  The check is read
// only.  Every failure surfaces as KindForbidden with a reason naming
// which rule broke.
type EligibilityChecker struct {
    enrollments EnrollmentStore
    tickets     TicketStore
}

// NewEligibilityChecker constructs an EligibilityChecker over the given stores.
func NewEligibilityChecker(enrollments EnrollmentStore, tickets TicketStore) *EligibilityChecker {
    if enrollments == nil || tickets == nil {
        panic("nil store passed to NewEligibilityChecker")
    }
    return &EligibilityChecker{enrollments: enrollments, tickets: tickets}
}

// HotelTicket returns the user's hotel-eligible ticket, or a Forbidden
// error when any rule fails.  Rules are evaluated in order: enrollment
// exists, ticket exists and is paid, ticket type allows a hotel stay.
func (e *EligibilityChecker) HotelTicket(ctx context.Context, userID uint64) (*model.Ticket, error) {
    enr, err := e.enrollments.GetByUserID(ctx, userID)
    if err != nil {
        if errors.Is(err, repository.ErrEnrollmentNotFound) {
            return nil, forbidden(ReasonNoEnrollment)
        }
        return nil, internal("enrollment lookup", err)
    }
    t, err := e.tickets.GetByEnrollmentID(ctx, enr.ID)
    if err != nil {
        if errors.Is(err, repository.ErrTicketNotFound) {
            return nil, forbidden(ReasonTicketNotPaid)
        }
        return nil, internal("ticket lookup", err)
    }
    if t.Status == model.TicketStatusReserved {
        return nil, forbidden(ReasonTicketNotPaid)
    }
    if !t.Type.HotelEligible() {
        return nil, forbidden(ReasonTicketNotHotelEligible)
    }
    return t, nil
}
