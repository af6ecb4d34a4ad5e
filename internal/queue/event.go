// Package queue defines message payloads exchanged over the message broker.
package queue

// Event type values carried in BookingEvent.Type.
const (
    EventBookingCreated     = "booking.created"
    EventBookingRoomChanged = "booking.room_changed"
)

// BookingEvent is published after a booking has been created or moved
// to another room.  It carries enough information for downstream
// consumers to log, notify, or trigger analytics without querying the
// primary database.
type BookingEvent struct {
    Type           string `json:"type"`
    BookingID      uint64 `json:"booking_id"`
    UserID         uint64 `json:"user_id"`
    RoomID         uint64 `json:"room_id"`
    PreviousRoomID uint64 `json:"previous_room_id,omitempty"`
    RoomName       string `json:"room_name"`
    HotelID        uint64 `json:"hotel_id"`
    OccurredAt     string `json:"occurred_at"`
}
