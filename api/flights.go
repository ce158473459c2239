package api

import (
	"net/http"
	"strings"

	"github.com/Domenick1991/flightbooking/internal/service/booking"
	"github.com/Domenick1991/flightbooking/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service  flights.FlightUseCase
	bookings booking.BookingUseCase
}

type seatMapQuery struct {
	Passengers int    `form:"passengers" binding:"required,gt=0"`
	Selected   string `form:"selected"`
}

type toggleSeatRequest struct {
	Passengers int      `json:"passengers" binding:"required,gt=0"`
	Selected   []string `json:"selectedSeatIds"`
	SeatID     string   `json:"seatId" binding:"required"`
}

type toggleSeatResponse struct {
	*booking.ToggleResult
	Error string `json:"error,omitempty"`
}

func NewFlightHandler(service flights.FlightUseCase, bookings booking.BookingUseCase) *FlightHandler {
	return &FlightHandler{service: service, bookings: bookings}
}

// Register mounts the flight routes; airports live next to them on the same
// group.
func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/airports", h.airports)
	router.GET("/flights", h.search)
	router.GET("/flights/:id", h.get)
	router.GET("/flights/:id/seats", h.seatMap)
	router.POST("/flights/:id/seats/toggle", h.toggleSeat)
}

func (h *FlightHandler) airports(c *gin.Context) {
	airports, err := h.service.Airports(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airports)
}

func (h *FlightHandler) search(c *gin.Context) {
	flights, err := h.service.Search(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) seatMap(c *gin.Context) {
	var q seatMapQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.bookings.SeatMap(c.Request.Context(), booking.SeatMapInput{
		FlightID:       c.Param("id"),
		PassengerTotal: q.Passengers,
		Selected:       splitSeats(q.Selected),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *FlightHandler) toggleSeat(c *gin.Context) {
	var req toggleSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.bookings.ToggleSeat(c.Request.Context(), booking.ToggleSeatInput{
		FlightID:       c.Param("id"),
		PassengerTotal: req.Passengers,
		Selected:       req.Selected,
		SeatID:         req.SeatID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	if res.LimitReached {
		c.JSON(http.StatusConflict, toggleSeatResponse{ToggleResult: res, Error: "all passengers already have a seat"})
		return
	}
	c.JSON(http.StatusOK, toggleSeatResponse{ToggleResult: res})
}

func splitSeats(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
