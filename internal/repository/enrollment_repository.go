package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/hotel-room-booking/internal/model"
)

// EnrollmentRepo provides read access to event enrollments.  Enrollments
// are created by the registration flow, which lives outside this
// service; the booking service only looks them up to decide hotel
// eligibility.
type EnrollmentRepo struct {
    db *sql.DB
}

// NewEnrollmentRepo returns a new EnrollmentRepo bound to the given database.
func NewEnrollmentRepo(db *sql.DB) *EnrollmentRepo { return &EnrollmentRepo{db: db} }

// GetByUserID returns the enrollment belonging to the given user.  A
// user has at most one enrollment; ErrEnrollmentNotFound is returned
// when none exists.
func (r *EnrollmentRepo) GetByUserID(ctx context.Context, userID uint64) (*model.Enrollment, error) {
    const q = `SELECT id, user_id, name, created_at, updated_at FROM enrollments WHERE user_id = ?`
    var e model.Enrollment
    err := r.db.QueryRowContext(ctx, q, userID).Scan(&e.ID, &e.UserID, &e.Name, &e.CreatedAt, &e.UpdatedAt)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrEnrollmentNotFound
        }
        return nil, err
    }
    return &e, nil
}
