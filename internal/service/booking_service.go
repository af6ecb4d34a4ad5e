package service

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/hotel-room-booking/internal/model"
    "github.com/iliyamo/hotel-room-booking/internal/repository"
)

// BookingService is the booking decision engine.  It orchestrates the
// eligibility checker and capacity allocator around the booking store
// to authorize get/create/replace operations on a user's single
// booking.  Mutations run their read-check-write sequence inside one
// transaction with the target room row locked, and the UNIQUE index on
// bookings.user_id backstops the one-booking-per-user invariant.
type BookingService struct {
    db          *sql.DB
    eligibility *EligibilityChecker
    capacity    *CapacityAllocator
    rooms       RoomStore
    bookings    BookingStore
}

// NewBookingService constructs the engine.  The db handle is used only
// to open transactions; all reads and writes go through the stores.
func NewBookingService(db *sql.DB, enrollments EnrollmentStore, tickets TicketStore, rooms RoomStore, bookings BookingStore) *BookingService {
    if db == nil || rooms == nil || bookings == nil {
        panic("nil dependency passed to NewBookingService")
    }
    return &BookingService{
        db:          db,
        eligibility: NewEligibilityChecker(enrollments, tickets),
        capacity:    NewCapacityAllocator(bookings),
        rooms:       rooms,
        bookings:    bookings,
    }
}

// Get returns the caller's booking with the public fields of its room.
// KindNotFound is returned when the user holds no booking.
func (s *BookingService) Get(ctx context.Context, userID uint64) (*repository.BookingWithRoom, error) {
    bw, err := s.bookings.GetWithRoomByUserID(ctx, userID)
    if err != nil {
        if errors.Is(err, repository.ErrBookingNotFound) {
            return nil, notFound(ReasonBookingNotFound)
        }
        return nil, internal("booking lookup", err)
    }
    return bw, nil
}

// Create reserves a room for the caller and returns the new booking id.
// Checks run in order and short-circuit on the first failure:
//
//  1. roomID must be positive (Forbidden: a malformed request is a
//     caller error, not a missing entity).
//  2. The caller must hold a paid, in-person, hotel-inclusive ticket
//     (Forbidden).
//  3. The room must exist (NotFound).
//  4. The room must have a free slot (Forbidden).
//  5. The caller must not already hold a booking (Forbidden).
//
// Steps 3-5 and the insert share a transaction; the room row is locked
// before the occupancy count so concurrent creates against the same
// room serialize instead of overbooking it.
func (s *BookingService) Create(ctx context.Context, userID uint64, roomID int64) (uint64, error) {
    if roomID <= 0 {
        return 0, forbidden(ReasonInvalidRoomID)
    }
    if _, err := s.eligibility.HotelTicket(ctx, userID); err != nil {
        return 0, err
    }

    tx, err := s.db.BeginTx(ctx, nil)
    if err != nil {
        return 0, internal("begin tx", err)
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    room, err := s.rooms.GetRoomByIDTx(ctx, tx, uint64(roomID))
    if err != nil {
        if errors.Is(err, repository.ErrRoomNotFound) {
            return 0, notFound(ReasonRoomNotFound)
        }
        return 0, internal("room lookup", err)
    }
    ok, err := s.capacity.HasSpaceTx(ctx, tx, room)
    if err != nil {
        return 0, err
    }
    if !ok {
        return 0, forbidden(ReasonRoomFull)
    }
    if _, err := s.bookings.GetByUserIDTx(ctx, tx, userID); err == nil {
        return 0, forbidden(ReasonBookingExists)
    } else if !errors.Is(err, repository.ErrBookingNotFound) {
        return 0, internal("duplicate check", err)
    }

    b := &model.Booking{UserID: userID, RoomID: room.ID}
    if err := s.bookings.CreateTx(ctx, tx, b); err != nil {
        // The unique index catches the create/create race the
        // pre-check above cannot see.
        if errors.Is(err, repository.ErrBookingExists) {
            return 0, forbidden(ReasonBookingExists)
        }
        return 0, internal("booking insert", err)
    }
    if err := tx.Commit(); err != nil {
        return 0, internal("commit", err)
    }
    committed = true
    return b.ID, nil
}

// Replace moves the caller's existing booking to another room and
// returns the booking id, which never changes.  Checks in order:
//
//  1. The caller must already hold a booking (Forbidden).
//  2. The held booking's id must equal bookingID, so a caller cannot
//     reference someone else's booking (Forbidden).
//  3. roomID must resolve to an existing room (NotFound).
//  4. The target room must have a free slot (Forbidden).  Occupancy
//     is compared raw: the caller's own booking counts when it
//     already sits in the target room, and the slot being vacated in
//     another room is not credited.
//
// The whole sequence shares one transaction; the caller's booking row
// and the target room row are both locked.
func (s *BookingService) Replace(ctx context.Context, userID, bookingID uint64, roomID int64) (uint64, error) {
    tx, err := s.db.BeginTx(ctx, nil)
    if err != nil {
        return 0, internal("begin tx", err)
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    held, err := s.bookings.GetByUserIDTx(ctx, tx, userID)
    if err != nil {
        if errors.Is(err, repository.ErrBookingNotFound) {
            return 0, forbidden(ReasonBookingNotFound)
        }
        return 0, internal("booking lookup", err)
    }
    if held.ID != bookingID {
        return 0, forbidden(ReasonBookingMismatch)
    }
    if roomID <= 0 {
        return 0, notFound(ReasonRoomNotFound)
    }
    room, err := s.rooms.GetRoomByIDTx(ctx, tx, uint64(roomID))
    if err != nil {
        if errors.Is(err, repository.ErrRoomNotFound) {
            return 0, notFound(ReasonRoomNotFound)
        }
        return 0, internal("room lookup", err)
    }
    ok, err := s.capacity.HasSpaceTx(ctx, tx, room)
    if err != nil {
        return 0, err
    }
    if !ok {
        return 0, forbidden(ReasonRoomFull)
    }
    if err := s.bookings.UpdateRoomTx(ctx, tx, held.ID, room.ID); err != nil {
        return 0, internal("booking update", err)
    }
    if err := tx.Commit(); err != nil {
        return 0, internal("commit", err)
    }
    committed = true
    return held.ID, nil
}
