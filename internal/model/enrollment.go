package model

import "time"

// Enrollment links an application user to their event registration.
// Exactly one enrollment exists per registered user; a user without
// an enrollment has never completed registration and therefore can
// hold no ticket and no booking.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – user who registered for the event.
//  Name      – attendee name as entered during registration.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Enrollment struct {
    ID        uint64    // enrollments.id
    UserID    uint64    // enrollments.user_id
    Name      string    // enrollments.name
    CreatedAt time.Time // enrollments.created_at
    UpdatedAt time.Time // enrollments.updated_at
}
