package breadcrumb

// --- UseCase Inputs ---

// NavigateInput records a navigation for a session. An empty Label is
// derived from Pathname and Search.
type NavigateInput struct {
	SessionID string
	Pathname  string
	Search    string
	Label     string
}

// --- UseCase Outputs ---

type TrailOutput struct {
	SessionID string
	Trail     Trail
}
