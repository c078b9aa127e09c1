package api

import (
	"net/http"

	reqdto "mindcare-booking/internal/handler/dto/request"
	resdto "mindcare-booking/internal/handler/dto/response"
	"mindcare-booking/internal/handler/httperr"
	"mindcare-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
}

func NewBookingHandler(cmds commands.BookingCommands) *BookingHandler {
	return &BookingHandler{cmds: cmds}
}

// @Summary Book a slot
// @Description Reserve one free start time of a window. Losing a race returns 409 with code slot_unavailable.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Window ID"
// @Param request body reqdto.BookSlotRequest true "Slot start time (HH:MM)"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /windows/{id}/bookings [post]
func (h *BookingHandler) Book(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	windowID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.BookSlotRequest
	if !bindJSON(c, &req) {
		return
	}
	at, err := req.ToDomain()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := h.cmds.BookSlot(c.Request.Context(), actor, windowID, at)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/reservations/"+res.ID().String())
	c.JSON(http.StatusCreated, resdto.FromReservation(res))
}
