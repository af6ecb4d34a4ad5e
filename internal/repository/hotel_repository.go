package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/hotel-room-booking/internal/model"
)

// HotelRepo provides read access to hotels and rooms.  Inventory is
// provisioned out of band; this repository never mutates it.
type HotelRepo struct {
    db *sql.DB
}

// NewHotelRepo returns a new HotelRepo bound to the given database.
func NewHotelRepo(db *sql.DB) *HotelRepo { return &HotelRepo{db: db} }

// ListHotels returns all hotels ordered by id.  An empty slice is
// returned when no hotels exist.
func (r *HotelRepo) ListHotels(ctx context.Context) ([]model.Hotel, error) {
    const q = `SELECT id, name, image, created_at, updated_at FROM hotels ORDER BY id`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    hotels := make([]model.Hotel, 0)
    for rows.Next() {
        var h model.Hotel
        if err := rows.Scan(&h.ID, &h.Name, &h.Image, &h.CreatedAt, &h.UpdatedAt); err != nil {
            return nil, err
        }
        hotels = append(hotels, h)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return hotels, nil
}

// ListRoomsByHotel returns all rooms of a hotel ordered by name.  It
// verifies that the hotel exists first and returns ErrHotelNotFound
// otherwise, so handlers can distinguish an unknown hotel from a hotel
// with no rooms.
func (r *HotelRepo) ListRoomsByHotel(ctx context.Context, hotelID uint64) ([]model.Room, error) {
    const check = `SELECT id FROM hotels WHERE id = ?`
    var id uint64
    if err := r.db.QueryRowContext(ctx, check, hotelID).Scan(&id); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrHotelNotFound
        }
        return nil, err
    }
    const q = `SELECT id, name, capacity, hotel_id, created_at, updated_at FROM rooms WHERE hotel_id = ? ORDER BY name`
    rows, err := r.db.QueryContext(ctx, q, hotelID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    rooms := make([]model.Room, 0)
    for rows.Next() {
        var rm model.Room
        if err := rows.Scan(&rm.ID, &rm.Name, &rm.Capacity, &rm.HotelID, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
            return nil, err
        }
        rooms = append(rooms, rm)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return rooms, nil
}

// GetRoomByID retrieves a single room.  ErrRoomNotFound is returned
// when the id resolves to no row.
func (r *HotelRepo) GetRoomByID(ctx context.Context, roomID uint64) (*model.Room, error) {
    const q = `SELECT id, name, capacity, hotel_id, created_at, updated_at FROM rooms WHERE id = ?`
    var rm model.Room
    err := r.db.QueryRowContext(ctx, q, roomID).Scan(&rm.ID, &rm.Name, &rm.Capacity, &rm.HotelID, &rm.CreatedAt, &rm.UpdatedAt)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrRoomNotFound
        }
        return nil, err
    }
    return &rm, nil
}

// GetRoomByIDTx is like GetRoomByID but runs inside the caller's
// transaction and takes a row lock on the room.  Locking the room row
// serializes concurrent capacity checks targeting the same room, which
// is what keeps a near-full room from being overbooked.
func (r *HotelRepo) GetRoomByIDTx(ctx context.Context, tx *sql.Tx, roomID uint64) (*model.Room, error) {
    const q = `SELECT id, name, capacity, hotel_id, created_at, updated_at FROM rooms WHERE id = ? FOR UPDATE`
    var rm model.Room
    err := tx.QueryRowContext(ctx, q, roomID).Scan(&rm.ID, &rm.Name, &rm.Capacity, &rm.HotelID, &rm.CreatedAt, &rm.UpdatedAt)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrRoomNotFound
        }
        return nil, err
    }
    return &rm, nil
}
