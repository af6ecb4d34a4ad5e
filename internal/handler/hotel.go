package handler

import (
    "errors"
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-room-booking/internal/repository"
)

// HotelHandler exposes read-only hotel browsing for attendees picking
// a room.  Inventory is provisioned out of band, so these endpoints
// only ever read.  They are unauthenticated and sit behind the
// response cache.
type HotelHandler struct {
    Hotels *repository.HotelRepo
}

// NewHotelHandler constructs a HotelHandler.  The repository must be non-nil.
func NewHotelHandler(hotels *repository.HotelRepo) *HotelHandler {
    if hotels == nil {
        panic("nil repository passed to NewHotelHandler")
    }
    return &HotelHandler{Hotels: hotels}
}

// hotelResponse is the sanitized projection of a hotel for public
// consumption.  Timestamps stay internal.
type hotelResponse struct {
    ID    uint64 `json:"id"`
    Name  string `json:"name"`
    Image string `json:"image"`
}

// roomResponse is the sanitized projection of a room.
type roomResponse struct {
    ID       uint64 `json:"id"`
    Name     string `json:"name"`
    Capacity uint32 `json:"capacity"`
    HotelID  uint64 `json:"hotelId"`
}

// GetHotels handles GET /hotels.  It returns all partner hotels.
func (h *HotelHandler) GetHotels(c echo.Context) error {
    hotels, err := h.Hotels.ListHotels(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]hotelResponse, 0, len(hotels))
    for _, ht := range hotels {
        out = append(out, hotelResponse{ID: ht.ID, Name: ht.Name, Image: ht.Image})
    }
    return c.JSON(http.StatusOK, out)
}

// GetHotelRooms handles GET /hotels/:id/rooms.  It returns the rooms
// of one hotel, 404 when the hotel does not exist.
func (h *HotelHandler) GetHotelRooms(c echo.Context) error {
    hotelID, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || hotelID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
    }
    rooms, err := h.Hotels.ListRoomsByHotel(c.Request().Context(), hotelID)
    if err != nil {
        if errors.Is(err, repository.ErrHotelNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]roomResponse, 0, len(rooms))
    for _, rm := range rooms {
        out = append(out, roomResponse{ID: rm.ID, Name: rm.Name, Capacity: rm.Capacity, HotelID: rm.HotelID})
    }
    return c.JSON(http.StatusOK, out)
}
