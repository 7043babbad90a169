package http

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "eventask/pkg/errors"
	"eventask/pkg/response"
)

const trailEvent = "trail"

// Navigate godoc
// @Summary     Record a navigation
// @Description Applies one navigation to the session trail. The label is derived from the path when omitted.
// @Tags        Breadcrumbs
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string      false "Session ID (issued when absent)"
// @Param       body         body   navigateReq true  "Navigation"
// @Success     200 {object} trailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/breadcrumbs/navigate [POST]
func (h *handler) Navigate(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := h.sessionID(c)

	req, err := h.processNavigateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Navigate(ctx, req.toInput(sessionID))
	if err != nil {
		h.respondError(c, "uc.Navigate", err)
		return
	}

	response.OK(c, h.newTrailResp(output))
}

// Trail godoc
// @Summary     Current trail
// @Tags        Breadcrumbs
// @Produce     json
// @Param       X-Session-ID header string false "Session ID (issued when absent)"
// @Success     200 {object} trailResp
// @Router      /api/v1/breadcrumbs [GET]
func (h *handler) Trail(c *gin.Context) {
	output, err := h.uc.Trail(c.Request.Context(), h.sessionID(c))
	if err != nil {
		h.respondError(c, "uc.Trail", err)
		return
	}

	response.OK(c, h.newTrailResp(output))
}

// Reset godoc
// @Summary     Reset trail
// @Tags        Breadcrumbs
// @Produce     json
// @Param       X-Session-ID header string false "Session ID (issued when absent)"
// @Success     200 {object} trailResp
// @Router      /api/v1/breadcrumbs [DELETE]
func (h *handler) Reset(c *gin.Context) {
	output, err := h.uc.Reset(c.Request.Context(), h.sessionID(c))
	if err != nil {
		h.respondError(c, "uc.Reset", err)
		return
	}

	response.OK(c, h.newTrailResp(output))
}

// Stream godoc
// @Summary     Stream trail changes
// @Description Server-sent events: the current trail first, then one "trail" event per change.
// @Tags        Breadcrumbs
// @Produce     text/event-stream
// @Param       X-Session-ID header string false "Session ID (issued when absent)"
// @Success     200 {object} trailResp
// @Router      /api/v1/breadcrumbs/stream [GET]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := h.sessionID(c)

	updates, cancel, err := h.uc.Subscribe(ctx, sessionID)
	if err != nil {
		h.respondError(c, "uc.Subscribe", err)
		return
	}
	defer cancel()

	current, err := h.uc.Trail(ctx, sessionID)
	if err != nil {
		h.respondError(c, "uc.Trail", err)
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent(trailEvent, h.newTrailResp(current))
	c.Writer.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	h.l.Debugf(ctx, "breadcrumb.http.Stream: session %s subscribed", sessionID)
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case trail, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent(trailEvent, newTrailResp(sessionID, trail))
			return true
		case <-ticker.C:
			_, _ = io.WriteString(w, ": keep-alive\n\n")
			return true
		}
	})
	h.l.Debugf(ctx, "breadcrumb.http.Stream: session %s unsubscribed", sessionID)
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
