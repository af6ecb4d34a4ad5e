package handler

import (
    "context"
    "encoding/json"
    "io"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-room-booking/internal/queue"
    "github.com/iliyamo/hotel-room-booking/internal/repository"
    "github.com/iliyamo/hotel-room-booking/internal/service"
)

// kindStatus is the explicit mapping from booking failure kinds to
// HTTP status codes.  Anything outside the map is an internal failure
// and becomes a 500.
var kindStatus = map[service.Kind]int{
    service.KindNotFound:  http.StatusNotFound,
    service.KindForbidden: http.StatusForbidden,
}

// BookingHandler exposes the booking decision engine over HTTP.  All
// methods assume that JWT authentication has already been performed by
// middleware and may return 401 Unauthorized if the user ID cannot be
// extracted from the context.
type BookingHandler struct {
    Bookings *service.BookingService // the decision engine
    Hotels   *repository.HotelRepo   // room lookups for event payloads
    Publish  func(ctx context.Context, ev queue.BookingEvent) error // nil disables events
}

// NewBookingHandler constructs a BookingHandler wired to the real
// broker publisher.  Both dependencies must be non-nil.
func NewBookingHandler(bookings *service.BookingService, hotels *repository.HotelRepo) *BookingHandler {
    if bookings == nil || hotels == nil {
        panic("nil dependency passed to NewBookingHandler")
    }
    return &BookingHandler{
        Bookings: bookings,
        Hotels:   hotels,
        Publish:  queue.PublishBookingEvent,
    }
}

// GetBooking handles GET /booking.  It returns the caller's booking
// with the public fields of its room, 404 when none exists, and 403
// for any other domain failure.
func (h *BookingHandler) GetBooking(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    bw, err := h.Bookings.Get(c.Request().Context(), userID)
    if err != nil {
        return h.bookingError(c, err)
    }
    return c.JSON(http.StatusOK, bw)
}

// CreateBooking handles POST /booking.  The body is either a JSON
// object {"roomId": n} or a bare JSON number.  On success it returns
// the new booking's id only.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    roomID := readRoomID(c)
    id, err := h.Bookings.Create(c.Request().Context(), userID, roomID)
    if err != nil {
        return h.bookingError(c, err)
    }
    h.publishEvent(c, queue.BookingEvent{
        Type:      queue.EventBookingCreated,
        BookingID: id,
        UserID:    userID,
        RoomID:    uint64(roomID),
    })
    return c.JSON(http.StatusOK, echo.Map{"id": id})
}

// ReplaceBooking handles PUT /booking/:bookingId.  It moves the
// caller's booking to another room; the booking id never changes.  A
// malformed bookingId path segment is rejected with a deliberate 400
// rather than leaking an internal failure.
func (h *BookingHandler) ReplaceBooking(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    bookingID, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
    if err != nil || bookingID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
    }
    roomID := readRoomID(c)

    // Remember the room being vacated for the change event; the read
    // is best effort and a miss only degrades the event payload.
    var previousRoomID uint64
    if bw, err := h.Bookings.Get(c.Request().Context(), userID); err == nil {
        previousRoomID = bw.Room.ID
    }

    id, err := h.Bookings.Replace(c.Request().Context(), userID, bookingID, roomID)
    if err != nil {
        return h.bookingError(c, err)
    }
    h.publishEvent(c, queue.BookingEvent{
        Type:           queue.EventBookingRoomChanged,
        BookingID:      id,
        UserID:         userID,
        RoomID:         uint64(roomID),
        PreviousRoomID: previousRoomID,
    })
    return c.JSON(http.StatusOK, echo.Map{"id": id})
}

// readRoomID extracts the target room id from the request body.  Both
// accepted shapes decode to the raw id; anything unreadable maps to 0,
// which the engine rejects as a caller error.
func readRoomID(c echo.Context) int64 {
    raw, err := io.ReadAll(c.Request().Body)
    if err != nil {
        return 0
    }
    var body struct {
        RoomID int64 `json:"roomId"`
    }
    if err := json.Unmarshal(raw, &body); err == nil && body.RoomID != 0 {
        return body.RoomID
    }
    var bare int64
    if err := json.Unmarshal(raw, &bare); err == nil {
        return bare
    }
    return 0
}

// bookingError translates an engine failure into the two-bucket HTTP
// contract.  The reason code is logged at the boundary so distinct
// detection sites stay distinguishable even though clients only see
// the status.
func (h *BookingHandler) bookingError(c echo.Context, err error) error {
    if status, ok := kindStatus[service.KindOf(err)]; ok {
        c.Logger().Infof("booking denied: reason=%s status=%d", service.ReasonOf(err), status)
        return c.JSON(status, echo.Map{"error": http.StatusText(status)})
    }
    c.Logger().Errorf("booking failed: %v", err)
    return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}

// publishEvent completes the event payload with room details and hands
// it to the publisher on a background goroutine.  Event delivery is
// best effort and never affects the response.
func (h *BookingHandler) publishEvent(c echo.Context, ev queue.BookingEvent) {
    if h.Publish == nil {
        return
    }
    if room, err := h.Hotels.GetRoomByID(c.Request().Context(), ev.RoomID); err == nil {
        ev.RoomName = room.Name
        ev.HotelID = room.HotelID
    }
    ev.OccurredAt = time.Now().UTC().Format(time.RFC3339)
    publish := h.Publish
    go func() {
        ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        _ = publish(ctx, ev)
    }()
}
