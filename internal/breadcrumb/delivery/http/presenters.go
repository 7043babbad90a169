package http

import (
	"eventask/internal/breadcrumb"
)

// --- Request DTOs ---

type navigateReq struct {
	Path   string `json:"path"   binding:"required,max=2048"`
	Search string `json:"search" binding:"max=2048"`
	Label  string `json:"label"  binding:"max=255"`
}

func (r navigateReq) toInput(sessionID string) breadcrumb.NavigateInput {
	return breadcrumb.NavigateInput{
		SessionID: sessionID,
		Pathname:  r.Path,
		Search:    r.Search,
		Label:     r.Label,
	}
}

// --- Response DTOs ---

type itemResp struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

type trailResp struct {
	SessionID string     `json:"session_id"`
	Items     []itemResp `json:"items"`
}

func newTrailResp(sessionID string, trail breadcrumb.Trail) trailResp {
	items := make([]itemResp, len(trail))
	for i, it := range trail {
		items[i] = itemResp{Path: it.Path, Label: it.Label}
	}
	return trailResp{SessionID: sessionID, Items: items}
}

func (h *handler) newTrailResp(out breadcrumb.TrailOutput) trailResp {
	return newTrailResp(out.SessionID, out.Trail)
}
