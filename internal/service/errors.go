// Package service implements the booking decision engine: the ordered
// eligibility, capacity and ownership checks that decide whether a
// reservation request succeeds.
package service

import (
    "errors"
    "fmt"
)

// Kind classifies a booking failure for the HTTP boundary.  The set is
// deliberately closed and coarse: handlers map a kind to a status code
// and never inspect messages.
type Kind int

const (
    // KindInternal marks unanticipated failures (store connectivity,
    // broken invariants).  It is the zero value so an unclassified
    // error is never mistaken for a domain decision.
    KindInternal Kind = iota
    // KindForbidden marks requests that are understood but not
    // authorized right now (ineligible ticket, full room, duplicate
    // booking, ownership mismatch, bad room id).
    KindForbidden
    // KindNotFound marks references to entities that do not exist
    // (the caller's booking on Get, the target room on mutations).
    KindNotFound
)

// Reason codes identify the individual detection sites behind the
// coarse kinds.  They exist for logging and tests; clients only ever
// see the kind's status code.
const (
    ReasonNoEnrollment           = "no_enrollment"
    ReasonTicketNotPaid          = "ticket_not_paid"
    ReasonTicketNotHotelEligible = "ticket_not_hotel_eligible"
    ReasonInvalidRoomID          = "invalid_room_id"
    ReasonRoomNotFound           = "room_not_found"
    ReasonRoomFull               = "room_full"
    ReasonBookingExists          = "booking_exists"
    ReasonBookingNotFound        = "booking_not_found"
    ReasonBookingMismatch        = "booking_mismatch"
)

// Error is a tagged booking failure.  Kind drives the HTTP mapping,
// Reason names the detection site and Err optionally wraps the cause.
type Error struct {
    Kind   Kind
    Reason string
    Err    error
}

// Error implements the error interface.
func (e *Error) Error() string {
    if e.Err != nil {
        return fmt.Sprintf("booking: %s: %v", e.Reason, e.Err)
    }
    return "booking: " + e.Reason
}

// Unwrap exposes the wrapped cause to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Err }

func forbidden(reason string) error { return &Error{Kind: KindForbidden, Reason: reason} }

func notFound(reason string) error { return &Error{Kind: KindNotFound, Reason: reason} }

func internal(reason string, err error) error {
    return &Error{Kind: KindInternal, Reason: reason, Err: err}
}

// KindOf extracts the failure kind from an error returned by the
// booking service.  Errors that are not *Error count as internal.
func KindOf(err error) Kind {
    var e *Error
    if errors.As(err, &e) {
        return e.Kind
    }
    return KindInternal
}

// ReasonOf extracts the reason code, or "" for foreign errors.
func ReasonOf(err error) string {
    var e *Error
    if errors.As(err, &e) {
        return e.Reason
    }
    return ""
}
