package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "eventask/pkg/errors"
	"eventask/pkg/response"
)

const icsContentType = "text/calendar; charset=utf-8"

// Month godoc
// @Summary     Month grid
// @Description Returns the 42-day grid of a month (zero-based month) with events attached to the day they start on.
// @Description Without month/year the anchor ("today", "next month", "in 2 months", YYYY-MM-DD) selects the month.
// @Tags        Calendar
// @Produce     json
// @Param       month  query int    false "Zero-based month (0-11)"
// @Param       year   query int    false "Year"
// @Param       anchor query string false "Relative anchor"
// @Success     200 {object} monthResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar [GET]
func (h *handler) Month(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processMonthReq(c)
	if err != nil {
		h.respondError(c, "processMonthReq", err)
		return
	}

	output, err := h.uc.Month(ctx, input)
	if err != nil {
		h.respondError(c, "uc.Month", err)
		return
	}

	response.OK(c, h.newMonthResp(output))
}

// ExportICS godoc
// @Summary     Export month as iCalendar
// @Description Downloads every event of the month grid as a text/calendar file.
// @Tags        Calendar
// @Produce     text/calendar
// @Param       month  query int    false "Zero-based month (0-11)"
// @Param       year   query int    false "Year"
// @Param       anchor query string false "Relative anchor"
// @Success     200 {file} file
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/ics [GET]
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processMonthReq(c)
	if err != nil {
		h.respondError(c, "processMonthReq", err)
		return
	}

	output, err := h.uc.ExportICS(ctx, input)
	if err != nil {
		h.respondError(c, "uc.ExportICS", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	c.Data(http.StatusOK, icsContentType, output.Content)
}

// respondError reports HTTP errors as-is and maps domain errors. Anything
// unmapped is logged and hidden behind a 500.
func (h *handler) respondError(c *gin.Context, op string, err error) {
	if he, ok := pkgErrors.AsHTTPError(err); ok {
		response.Error(c, he, nil)
		return
	}
	mapped := h.mapError(err)
	if mapped == pkgErrors.ErrInternalServerError {
		h.l.Errorf(c.Request.Context(), "%s: %v", op, err)
		response.InternalError(c, err)
		return
	}
	response.Error(c, mapped, nil)
}
