package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/go-sql-driver/mysql"

    "github.com/iliyamo/hotel-room-booking/internal/model"
)

// mysqlDuplicateEntry is the MySQL error number for a violated UNIQUE
// constraint (ER_DUP_ENTRY).
const mysqlDuplicateEntry = 1062

// BookingRepo manages persistence for bookings.  The bookings table
// carries a UNIQUE index on user_id; CreateTx translates a violation
// of that index into ErrBookingExists so the constraint, not the
// application pre-check, is the final authority on the one-booking-
// per-user invariant.
type BookingRepo struct {
    db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying sql.DB.  It allows callers to begin
// transactions spanning multiple repositories.
func (r *BookingRepo) DB() *sql.DB { return r.db }

// RoomPublic carries the public fields of a room as exposed in API
// responses.  Timestamps stay internal.
type RoomPublic struct {
    ID       uint64 `json:"id"`
    Name     string `json:"name"`
    Capacity uint32 `json:"capacity"`
    HotelID  uint64 `json:"hotelId"`
}

// BookingWithRoom is a booking joined with the public fields of the
// room it holds.  It is the projection returned to customers; internal
// timestamps and foreign keys are stripped.
type BookingWithRoom struct {
    ID   uint64     `json:"id"`
    Room RoomPublic `json:"Room"`
}

// GetWithRoomByUserID returns the caller's booking together with its
// room.  ErrBookingNotFound is returned when the user holds none.
func (r *BookingRepo) GetWithRoomByUserID(ctx context.Context, userID uint64) (*BookingWithRoom, error) {
    const q = `SELECT b.id, rm.id, rm.name, rm.capacity, rm.hotel_id
               FROM bookings b
               JOIN rooms rm ON rm.id = b.room_id
               WHERE b.user_id = ?`
    var bw BookingWithRoom
    err := r.db.QueryRowContext(ctx, q, userID).Scan(
        &bw.ID, &bw.Room.ID, &bw.Room.Name, &bw.Room.Capacity, &bw.Room.HotelID,
    )
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrBookingNotFound
        }
        return nil, err
    }
    return &bw, nil
}

// GetByUserIDTx returns the caller's booking inside the given
// transaction, locking the row so a concurrent Replace on the same
// booking serializes behind it.  ErrBookingNotFound is returned when
// the user holds none.
func (r *BookingRepo) GetByUserIDTx(ctx context.Context, tx *sql.Tx, userID uint64) (*model.Booking, error) {
    const q = `SELECT id, user_id, room_id, created_at, updated_at FROM bookings WHERE user_id = ? FOR UPDATE`
    var b model.Booking
    err := tx.QueryRowContext(ctx, q, userID).Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrBookingNotFound
        }
        return nil, err
    }
    return &b, nil
}

// CountByRoomTx returns the current occupancy of a room within the
// caller's transaction.  Callers must have locked the room row first
// so the count cannot move under them.
func (r *BookingRepo) CountByRoomTx(ctx context.Context, tx *sql.Tx, roomID uint64) (uint32, error) {
    const q = `SELECT COUNT(*) FROM bookings WHERE room_id = ?`
    var n uint32
    if err := tx.QueryRowContext(ctx, q, roomID).Scan(&n); err != nil {
        return 0, err
    }
    return n, nil
}

// CreateTx inserts a new booking within the caller's transaction and
// populates the generated ID on the given record.  A duplicate-entry
// error on the user_id index is returned as ErrBookingExists.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
    const q = `INSERT INTO bookings (user_id, room_id) VALUES (?, ?)`
    res, err := tx.ExecContext(ctx, q, b.UserID, b.RoomID)
    if err != nil {
        var me *mysql.MySQLError
        if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
            return ErrBookingExists
        }
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    b.ID = uint64(id)
    return nil
}

// UpdateRoomTx repoints an existing booking at a new room within the
// caller's transaction.  The booking id never changes.
func (r *BookingRepo) UpdateRoomTx(ctx context.Context, tx *sql.Tx, bookingID, roomID uint64) error {
    const q = `UPDATE bookings SET room_id = ? WHERE id = ?`
    res, err := tx.ExecContext(ctx, q, roomID, bookingID)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    // RowsAffected is 0 when the booking vanished between lock and
    // update; treat it the same as a missing booking.
    if n == 0 {
        // MySQL also reports 0 when the row already points at the
        // target room; re-check existence before failing.
        const check = `SELECT id FROM bookings WHERE id = ?`
        var id uint64
        if err := tx.QueryRowContext(ctx, check, bookingID).Scan(&id); err != nil {
            if errors.Is(err, sql.ErrNoRows) {
                return ErrBookingNotFound
            }
            return err
        }
    }
    return nil
}
