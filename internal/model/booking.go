package model

import "time"

// Booking records which room a user currently holds.  At most one
// booking exists per user; the invariant is backed by a UNIQUE index
// on bookings.user_id and re-checked by the booking service before
// every insert.  Bookings are never deleted here, only retargeted to
// another room.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the booking (unique).
//  RoomID    – room currently held.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Booking struct {
    ID        uint64    // bookings.id
    UserID    uint64    // bookings.user_id
    RoomID    uint64    // bookings.room_id
    CreatedAt time.Time // bookings.created_at
    UpdatedAt time.Time // bookings.updated_at
}
