package repository

import (
    "context"
    "regexp"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func newHotelMock(t *testing.T) (*HotelRepo, sqlmock.Sqlmock) {
    t.Helper()
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    t.Cleanup(func() { _ = db.Close() })
    return NewHotelRepo(db), mock
}

func TestGetRoomByID(t *testing.T) {
    repo, mock := newHotelMock(t)
    now := time.Now()
    mock.ExpectQuery(regexp.QuoteMeta("FROM rooms WHERE id = ?")).
        WithArgs(uint64(5)).
        WillReturnRows(sqlmock.NewRows([]string{"id", "name", "capacity", "hotel_id", "created_at", "updated_at"}).
            AddRow(5, "101", 3, 2, now, now))

    rm, err := repo.GetRoomByID(context.Background(), 5)
    require.NoError(t, err)
    assert.Equal(t, uint64(5), rm.ID)
    assert.Equal(t, uint32(3), rm.Capacity)
    assert.Equal(t, uint64(2), rm.HotelID)
}

func TestGetRoomByIDNotFound(t *testing.T) {
    repo, mock := newHotelMock(t)
    mock.ExpectQuery(regexp.QuoteMeta("FROM rooms WHERE id = ?")).
        WithArgs(uint64(99)).
        WillReturnRows(sqlmock.NewRows([]string{"id", "name", "capacity", "hotel_id", "created_at", "updated_at"}))

    _, err := repo.GetRoomByID(context.Background(), 99)
    assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestListRoomsByHotelUnknownHotel(t *testing.T) {
    repo, mock := newHotelMock(t)
    mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM hotels WHERE id = ?")).
        WithArgs(uint64(9)).
        WillReturnRows(sqlmock.NewRows([]string{"id"}))

    _, err := repo.ListRoomsByHotel(context.Background(), 9)
    assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestListRoomsByHotel(t *testing.T) {
    repo, mock := newHotelMock(t)
    now := time.Now()
    mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM hotels WHERE id = ?")).
        WithArgs(uint64(2)).
        WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
    mock.ExpectQuery(regexp.QuoteMeta("FROM rooms WHERE hotel_id = ?")).
        WithArgs(uint64(2)).
        WillReturnRows(sqlmock.NewRows([]string{"id", "name", "capacity", "hotel_id", "created_at", "updated_at"}).
            AddRow(5, "101", 3, 2, now, now).
            AddRow(6, "102", 2, 2, now, now))

    rooms, err := repo.ListRoomsByHotel(context.Background(), 2)
    require.NoError(t, err)
    require.Len(t, rooms, 2)
    assert.Equal(t, "101", rooms[0].Name)
    assert.NoError(t, mock.ExpectationsWereMet())
}
