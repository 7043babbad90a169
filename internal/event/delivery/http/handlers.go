package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "eventask/pkg/errors"
	"eventask/pkg/response"
)

// Create godoc
// @Summary     Create an event
// @Description Creates a calendar event. An optional RRULE makes it recurring.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Event data"
// @Success     200  {object} itemResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.respondError(c, "uc.Create", err)
		return
	}

	response.OK(c, h.newItemResp(output.Event))
}

// List godoc
// @Summary     List events
// @Description Returns a paginated list of events, optionally filtered by time range and task.
// @Tags        Events
// @Produce     json
// @Param       from    query string false "Range start (RFC 3339)"
// @Param       to      query string false "Range end (RFC 3339)"
// @Param       task_id query string false "Filter by task ID"
// @Param       limit   query int    false "Page size (default: 20)"
// @Param       offset  query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.respondError(c, "uc.List", err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get event detail
// @Tags        Events
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.respondError(c, "uc.Detail", err)
		return
	}

	response.OK(c, h.newItemResp(output.Event))
}

// Update godoc
// @Summary     Update an event
// @Description Partially updates an event. Moving only the start keeps the duration.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Event ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.respondError(c, "uc.Update", err)
		return
	}

	response.OK(c, h.newItemResp(output.Event))
}

// Delete godoc
// @Summary     Delete an event
// @Tags        Events
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.respondError(c, "uc.Delete", err)
		return
	}

	response.OK(c, nil)
}

func (h *handler) respondError(c *gin.Context, op string, err error) {
	mapped := h.mapError(err)
	if mapped == pkgErrors.ErrInternalServerError {
		h.l.Errorf(c.Request.Context(), "%s: %v", op, err)
		response.InternalError(c, err)
		return
	}
	response.Error(c, mapped, nil)
}
