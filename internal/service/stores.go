package service

import (
    "context"
    "database/sql"

    "github.com/iliyamo/hotel-room-booking/internal/model"
    "github.com/iliyamo/hotel-room-booking/internal/repository"
)

// The booking engine depends on narrow store interfaces rather than the
// concrete repositories, so it stays unit-testable without a live
// database.  The repository package satisfies all of them.

// EnrollmentStore resolves users to their event enrollment.
type EnrollmentStore interface {
    GetByUserID(ctx context.Context, userID uint64) (*model.Enrollment, error)
}

// TicketStore resolves enrollments to their ticket, type included.
type TicketStore interface {
    GetByEnrollmentID(ctx context.Context, enrollmentID uint64) (*model.Ticket, error)
}

// RoomStore reads room inventory.  The Tx variant locks the room row
// so capacity checks serialize per room.
type RoomStore interface {
    GetRoomByID(ctx context.Context, roomID uint64) (*model.Room, error)
    GetRoomByIDTx(ctx context.Context, tx *sql.Tx, roomID uint64) (*model.Room, error)
}

// BookingStore reads and mutates booking rows.
type BookingStore interface {
    GetWithRoomByUserID(ctx context.Context, userID uint64) (*repository.BookingWithRoom, error)
    GetByUserIDTx(ctx context.Context, tx *sql.Tx, userID uint64) (*model.Booking, error)
    CountByRoomTx(ctx context.Context, tx *sql.Tx, roomID uint64) (uint32, error)
    CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error
    UpdateRoomTx(ctx context.Context, tx *sql.Tx, bookingID, roomID uint64) error
}
