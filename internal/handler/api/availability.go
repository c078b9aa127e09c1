package api

import (
	"net/http"

	reqdto "mindcare-booking/internal/handler/dto/request"
	resdto "mindcare-booking/internal/handler/dto/response"
	"mindcare-booking/internal/handler/httperr"
	"mindcare-booking/internal/usecase/commands"
	"mindcare-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	cmds commands.AvailabilityCommands
	q    queries.AvailabilityQueries
}

func NewAvailabilityHandler(cmds commands.AvailabilityCommands, q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{cmds: cmds, q: q}
}

// @Summary Create availability window
// @Description Publish a bookable window on a date for the calling professional
// @Tags windows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.WindowRequest true "Window"
// @Success 201 {object} resdto.WindowResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /windows [post]
func (h *AvailabilityHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.WindowRequest
	if !bindJSON(c, &req) {
		return
	}
	spec, err := req.ToDomain()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	w, err := h.cmds.CreateWindow(c.Request.Context(), actor, spec)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/windows/"+w.ID().String())
	c.JSON(http.StatusCreated, resdto.FromWindow(w))
}

// @Summary Update availability window
// @Description Reschedule or reprice a window that holds no active reservation
// @Tags windows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Window ID"
// @Param request body reqdto.WindowRequest true "Window"
// @Success 200 {object} resdto.WindowResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /windows/{id} [put]
func (h *AvailabilityHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.WindowRequest
	if !bindJSON(c, &req) {
		return
	}
	spec, err := req.ToDomain()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	w, err := h.cmds.UpdateWindow(c.Request.Context(), actor, id, spec)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWindow(w))
}

// @Summary Delete availability window
// @Tags windows
// @Security BearerAuth
// @Param id path string true "Window ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /windows/{id} [delete]
func (h *AvailabilityHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteWindow(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get availability window
// @Tags windows
// @Produce json
// @Param id path string true "Window ID"
// @Success 200 {object} resdto.WindowResponse
// @Failure 404 {object} httperr.Response
// @Router /windows/{id} [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetWindow(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromWindowView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List a professional's windows
// @Tags windows
// @Produce json
// @Param id path string true "Professional ID"
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Success 200 {array} resdto.WindowResponse
// @Failure 400 {object} httperr.Response
// @Router /professionals/{id}/windows [get]
func (h *AvailabilityHandler) ListByProfessional(c *gin.Context) {
	professionalID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var query reqdto.ListWindowsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	views, err := h.q.ListWindows(c.Request.Context(), professionalID, filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromWindowViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Free slots of a window
// @Description Start times still bookable; the answer may be slightly stale
// @Tags windows
// @Produce json
// @Param id path string true "Window ID"
// @Success 200 {object} resdto.FreeSlotsResponse
// @Failure 404 {object} httperr.Response
// @Router /windows/{id}/slots [get]
func (h *AvailabilityHandler) FreeSlots(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.FreeSlots(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFreeSlotsView(view))
}
