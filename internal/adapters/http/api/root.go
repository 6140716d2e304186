package api

import "net/http"

// RootHandler redirects the bare domain to the project page.
type RootHandler struct {
	projectURL string
}

// NewRootHandler creates a new root handler.
func NewRootHandler(projectURL string) *RootHandler {
	return &RootHandler{projectURL: projectURL}
}

// HandleRoot handles GET / requests.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.projectURL, http.StatusFound)
}
