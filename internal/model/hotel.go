package model

import "time"

// Hotel describes a partner hotel offered to event attendees.  Hotels
// and their rooms are provisioned out of band; this service only
// reads them.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – hotel display name.
//  Image     – URL of the hotel's cover image.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Hotel struct {
    ID        uint64    // hotels.id
    Name      string    // hotels.name
    Image     string    // hotels.image
    CreatedAt time.Time // hotels.created_at
    UpdatedAt time.Time // hotels.updated_at
}

// Room is a bookable room inside a hotel.  Capacity is the maximum
// number of concurrent bookings the room admits; it is never mutated
// by this service.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – room number or label.
//  Capacity  – maximum simultaneous bookings.
//  HotelID   – hotel the room belongs to.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Room struct {
    ID        uint64    // rooms.id
    Name      string    // rooms.name
    Capacity  uint32    // rooms.capacity
    HotelID   uint64    // rooms.hotel_id
    CreatedAt time.Time // rooms.created_at
    UpdatedAt time.Time // rooms.updated_at
}
