package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/hotel-room-booking/internal/model"
)

// TicketRepo provides read access to tickets and their types.  Ticket
// purchase and payment are handled by an external service; here the
// ticket is only consulted for its payment status and type flags.
type TicketRepo struct {
    db *sql.DB
}

// NewTicketRepo returns a new TicketRepo bound to the given database.
func NewTicketRepo(db *sql.DB) *TicketRepo { return &TicketRepo{db: db} }

// GetByEnrollmentID returns the ticket issued for an enrollment, with
// its ticket type joined in so callers can evaluate the is_remote and
// includes_hotel flags without a second query.  ErrTicketNotFound is
// returned when the enrollment has no ticket.
func (r *TicketRepo) GetByEnrollmentID(ctx context.Context, enrollmentID uint64) (*model.Ticket, error) {
    const q = `SELECT t.id, t.enrollment_id, t.ticket_type_id, t.status, t.created_at, t.updated_at,
                      tt.id, tt.name, tt.price_cents, tt.is_remote, tt.includes_hotel, tt.created_at, tt.updated_at
               FROM tickets t
               JOIN ticket_types tt ON tt.id = t.ticket_type_id
               WHERE t.enrollment_id = ?`
    var t model.Ticket
    err := r.db.QueryRowContext(ctx, q, enrollmentID).Scan(
        &t.ID, &t.EnrollmentID, &t.TicketTypeID, &t.Status, &t.CreatedAt, &t.UpdatedAt,
        &t.Type.ID, &t.Type.Name, &t.Type.PriceCents, &t.Type.IsRemote, &t.Type.IncludesHotel,
        &t.Type.CreatedAt, &t.Type.UpdatedAt,
    )
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrTicketNotFound
        }
        return nil, err
    }
    return &t, nil
}
