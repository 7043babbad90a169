package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader carries the breadcrumb session of a client.
const SessionHeader = "X-Session-ID"

// sessionID returns the client's session, issuing a new one when the header
// is absent. The session is always echoed back.
func (h *handler) sessionID(c *gin.Context) string {
	id := c.GetHeader(SessionHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Header(SessionHeader, id)
	return id
}

func (h *handler) processNavigateReq(c *gin.Context) (navigateReq, error) {
	var req navigateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
