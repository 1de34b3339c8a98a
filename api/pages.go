package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"staffdesk/internal/nav"
	"staffdesk/internal/session"
)

// PagesHandler exposes the navigation state machine over HTTP: a client asks
// for a page and learns which view to activate, or where the guards
// redirected it. The endpoint is open; identity comes from an optional
// bearer token resolved with the session-restore rule, so a missing,
// invalid, or stale token simply means unauthenticated.
type PagesHandler struct {
	router    *nav.Router
	guard     *session.Guard
	jwtSecret string
}

func NewPagesHandler(router *nav.Router, g *session.Guard, jwtSecret string) *PagesHandler {
	return &PagesHandler{router: router, guard: g, jwtSecret: jwtSecret}
}

type pageResponse struct {
	Path     string `json:"path"`
	View     string `json:"view"`
	Redirect string `json:"redirect,omitempty"`
	Notice   string `json:"notice,omitempty"`
}

// dispatchRecorder collects the view activation and notices of one dispatch.
type dispatchRecorder struct {
	view   string
	notice string
}

func (d *dispatchRecorder) Activate(view string)  { d.view = view }
func (d *dispatchRecorder) Notify(message string) { d.notice = message }

func (h *PagesHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	path := nav.PathHome
	if page := mux.Vars(r)["page"]; page != "" {
		path = "#/" + page
	}

	var sess *session.Session
	if header := r.Header.Get("Authorization"); header != "" {
		if email, ok := emailFromBearer(header, h.jwtSecret); ok {
			s, err := h.guard.SessionFor(r.Context(), email)
			if err != nil {
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			sess = s
		}
	}

	rec := &dispatchRecorder{}
	final := h.router.Dispatch(path, sess, rec, rec)

	resp := pageResponse{Path: final, View: rec.view, Notice: rec.notice}
	if final != path {
		resp.Redirect = final
	}
	writeJSON(w, resp, http.StatusOK)
}
