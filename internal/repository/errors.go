// Package repository defines error values shared across the data access
// layer. These sentinels let the service layer distinguish failure
// scenarios without inspecting driver errors: a missing row becomes a
// typed "not found" value and a violated uniqueness constraint on
// bookings.user_id becomes ErrBookingExists.
package repository

import "errors"

// ErrEnrollmentNotFound is returned when a user has no enrollment row.
var ErrEnrollmentNotFound = errors.New("enrollment not found")

// ErrTicketNotFound is returned when an enrollment has no ticket.
var ErrTicketNotFound = errors.New("ticket not found")

// ErrHotelNotFound is returned when a hotel id resolves to no row.
var ErrHotelNotFound = errors.New("hotel not found")

// ErrRoomNotFound is returned when a room id resolves to no row.
var ErrRoomNotFound = errors.New("room not found")

// ErrBookingNotFound is returned when a user holds no booking.
var ErrBookingNotFound = errors.New("booking not found")

// ErrBookingExists is returned when an insert hits the UNIQUE index on
// bookings.user_id, meaning the user already holds a booking.
var ErrBookingExists = errors.New("booking already exists")
