package repository

import (
    "context"
    "regexp"
    "testing"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/go-sql-driver/mysql"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/hotel-room-booking/internal/model"
)

func newMock(t *testing.T) (*BookingRepo, sqlmock.Sqlmock) {
    t.Helper()
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    t.Cleanup(func() { _ = db.Close() })
    return NewBookingRepo(db), mock
}

func TestGetWithRoomByUserID(t *testing.T) {
    repo, mock := newMock(t)
    rows := sqlmock.NewRows([]string{"id", "id", "name", "capacity", "hotel_id"}).
        AddRow(7, 5, "101", 3, 2)
    mock.ExpectQuery(regexp.QuoteMeta("FROM bookings b")).WithArgs(uint64(1)).WillReturnRows(rows)

    bw, err := repo.GetWithRoomByUserID(context.Background(), 1)
    require.NoError(t, err)
    assert.Equal(t, uint64(7), bw.ID)
    assert.Equal(t, RoomPublic{ID: 5, Name: "101", Capacity: 3, HotelID: 2}, bw.Room)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWithRoomByUserIDNotFound(t *testing.T) {
    repo, mock := newMock(t)
    mock.ExpectQuery(regexp.QuoteMeta("FROM bookings b")).
        WithArgs(uint64(1)).
        WillReturnRows(sqlmock.NewRows([]string{"id", "id", "name", "capacity", "hotel_id"}))

    _, err := repo.GetWithRoomByUserID(context.Background(), 1)
    assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCountByRoomTx(t *testing.T) {
    repo, mock := newMock(t)
    mock.ExpectBegin()
    mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM bookings WHERE room_id = ?")).
        WithArgs(uint64(5)).
        WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

    tx, err := repo.DB().Begin()
    require.NoError(t, err)
    n, err := repo.CountByRoomTx(context.Background(), tx, 5)
    require.NoError(t, err)
    assert.Equal(t, uint32(2), n)
}

func TestCreateTx(t *testing.T) {
    repo, mock := newMock(t)
    mock.ExpectBegin()
    mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings (user_id, room_id) VALUES (?, ?)")).
        WithArgs(uint64(1), uint64(5)).
        WillReturnResult(sqlmock.NewResult(42, 1))

    tx, err := repo.DB().Begin()
    require.NoError(t, err)
    b := &model.Booking{UserID: 1, RoomID: 5}
    require.NoError(t, repo.CreateTx(context.Background(), tx, b))
    assert.Equal(t, uint64(42), b.ID)
}

func TestCreateTxDuplicateEntry(t *testing.T) {
    repo, mock := newMock(t)
    mock.ExpectBegin()
    mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
        WithArgs(uint64(1), uint64(5)).
        WillReturnError(&mysql.MySQLError{Number: mysqlDuplicateEntry, Message: "Duplicate entry '1' for key 'bookings.uq_bookings_user'"})

    tx, err := repo.DB().Begin()
    require.NoError(t, err)
    err = repo.CreateTx(context.Background(), tx, &model.Booking{UserID: 1, RoomID: 5})
    assert.ErrorIs(t, err, ErrBookingExists)
}

func TestUpdateRoomTx(t *testing.T) {
    repo, mock := newMock(t)
    mock.ExpectBegin()
    mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET room_id = ? WHERE id = ?")).
        WithArgs(uint64(5), uint64(7)).
        WillReturnResult(sqlmock.NewResult(0, 1))

    tx, err := repo.DB().Begin()
    require.NoError(t, err)
    assert.NoError(t, repo.UpdateRoomTx(context.Background(), tx, 7, 5))
}

func TestUpdateRoomTxSameRoomIsFine(t *testing.T) {
    // MySQL reports 0 affected rows when the value is unchanged; the
    // update still succeeds as long as the booking exists.
    repo, mock := newMock(t)
    mock.ExpectBegin()
    mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET room_id = ? WHERE id = ?")).
        WithArgs(uint64(5), uint64(7)).
        WillReturnResult(sqlmock.NewResult(0, 0))
    mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM bookings WHERE id = ?")).
        WithArgs(uint64(7)).
        WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

    tx, err := repo.DB().Begin()
    require.NoError(t, err)
    assert.NoError(t, repo.UpdateRoomTx(context.Background(), tx, 7, 5))
}

func TestUpdateRoomTxVanishedBooking(t *testing.T) {
    repo, mock := newMock(t)
    mock.ExpectBegin()
    mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET room_id = ? WHERE id = ?")).
        WithArgs(uint64(5), uint64(7)).
        WillReturnResult(sqlmock.NewResult(0, 0))
    mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM bookings WHERE id = ?")).
        WithArgs(uint64(7)).
        WillReturnRows(sqlmock.NewRows([]string{"id"}))

    tx, err := repo.DB().Begin()
    require.NoError(t, err)
    err = repo.UpdateRoomTx(context.Background(), tx, 7, 5)
    assert.ErrorIs(t, err, ErrBookingNotFound)
}
