package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventask/internal/calendar"
	pkgErrors "eventask/pkg/errors"
)

// processMonthReq binds the query and resolves it to a month. Explicit
// month/year win over the anchor; neither means the current month.
func (h *handler) processMonthReq(c *gin.Context) (calendar.MonthInput, error) {
	var req monthReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return calendar.MonthInput{}, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := req.validate(); err != nil {
		return calendar.MonthInput{}, err
	}
	if req.explicit() {
		return req.toInput(), nil
	}
	return h.uc.Resolve(c.Request.Context(), req.Anchor)
}
