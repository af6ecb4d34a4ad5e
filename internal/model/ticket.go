package model

import "time"

// Ticket status values as stored in the `tickets` table.  A ticket in
// the RESERVED state has been picked but not paid for; only PAID
// tickets can back a hotel booking.
const (
    TicketStatusReserved = "RESERVED" // picked, awaiting payment
    TicketStatusPaid     = "PAID"     // payment confirmed
)

// Ticket is a user's proof of event registration.  It belongs to an
// enrollment and references a ticket type whose flags decide whether
// the holder may book a hotel room.
//
// Fields:
//  ID           – primary key identifier.
//  EnrollmentID – enrollment this ticket was issued for.
//  TicketTypeID – foreign key into ticket_types.
//  Status       – payment state (RESERVED or PAID).
//  Type         – the resolved ticket type, populated by joins.
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last update timestamp.
type Ticket struct {
    ID           uint64     // tickets.id
    EnrollmentID uint64     // tickets.enrollment_id
    TicketTypeID uint64     // tickets.ticket_type_id
    Status       string     // tickets.status
    Type         TicketType // joined ticket_types row
    CreatedAt    time.Time  // tickets.created_at
    UpdatedAt    time.Time  // tickets.updated_at
}

// TicketType categorizes tickets.  The two boolean flags drive hotel
// eligibility: a holder may book a room only when the type is not
// remote and includes a hotel stay.
//
// Fields:
//  ID            – primary key identifier.
//  Name          – display name of the type.
//  PriceCents    – ticket price in cents.
//  IsRemote      – true for online attendance.
//  IncludesHotel – true when the ticket covers a hotel stay.
//  CreatedAt     – creation timestamp.
//  UpdatedAt     – last update timestamp.
type TicketType struct {
    ID            uint64    // ticket_types.id
    Name          string    // ticket_types.name
    PriceCents    uint32    // ticket_types.price_cents
    IsRemote      bool      // ticket_types.is_remote
    IncludesHotel bool      // ticket_types.includes_hotel
    CreatedAt     time.Time // ticket_types.created_at
    UpdatedAt     time.Time // ticket_types.updated_at
}

// HotelEligible reports whether this ticket type allows its holder to
// reserve a hotel room: in-person attendance with a hotel included.
func (t TicketType) HotelEligible() bool {
    return !t.IsRemote && t.IncludesHotel
}
