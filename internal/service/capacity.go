package service

import (
    "context"
    "database/sql"

    "github.com/iliyamo/hotel-room-booking/internal/model"
)

// CapacityAllocator decides whether a room can take one more booking.
// A room has space iff its current occupancy is strictly below its
// capacity; a room at exactly capacity is full.
type CapacityAllocator struct {
    bookings BookingStore
}

// NewCapacityAllocator constructs a CapacityAllocator over the booking store.
func NewCapacityAllocator(bookings BookingStore) *CapacityAllocator {
    if bookings == nil {
        panic("nil store passed to NewCapacityAllocator")
    }
    return &CapacityAllocator{bookings: bookings}
}

// HasSpaceTx reports whether the room has a free slot.  It must run
// inside a transaction that already holds the room's row lock, so the
// occupancy count cannot move before the caller's insert or update
// commits.
func (a *CapacityAllocator) HasSpaceTx(ctx context.Context, tx *sql.Tx, room *model.Room) (bool, error) {
    occupancy, err := a.bookings.CountByRoomTx(ctx, tx, room.ID)
    if err != nil {
        return false, internal("occupancy count", err)
    }
    return occupancy < room.Capacity, nil
}
