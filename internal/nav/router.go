// Package nav models client navigation as a small state machine: states are
// named views, transitions are fragment paths, and two guard predicates
// (requires-authentication, requires-admin) run in a fixed order before any
// handler.
package nav

import (
	"staffdesk/internal/session"
)

// Fragment paths, the sole navigation keys.
const (
	PathHome        = "#/"
	PathRegister    = "#/register"
	PathLogin       = "#/login"
	PathVerifyEmail = "#/verify-email"
	PathProfile     = "#/profile"
	PathMyRequests  = "#/my-requests"
	PathEmployees   = "#/employees"
	PathAccounts    = "#/accounts"
	PathDepartments = "#/departments"
)

// View names, one per path.
const (
	ViewHome        = "home"
	ViewRegister    = "register"
	ViewLogin       = "login"
	ViewVerifyEmail = "verify-email"
	ViewProfile     = "profile"
	ViewMyRequests  = "my-requests"
	ViewEmployees   = "employees"
	ViewAccounts    = "accounts"
	ViewDepartments = "departments"
)

// AccessDeniedNotice is surfaced when the admin guard redirects a
// non-admin away from an admin path.
const AccessDeniedNotice = "Access denied"

// Renderer activates exactly one named view per dispatch.
type Renderer interface {
	Activate(view string)
}

// Notifier receives transient notices, fire and forget.
type Notifier interface {
	Notify(message string)
}

// Router maps fragment paths to views. The route table is fixed; unknown
// paths fall through to the home view rather than a not-found state.
type Router struct {
	views     map[string]string
	protected map[string]bool
	adminOnly map[string]bool
}

func NewRouter() *Router {
	return &Router{
		views: map[string]string{
			PathHome:        ViewHome,
			PathRegister:    ViewRegister,
			PathLogin:       ViewLogin,
			PathVerifyEmail: ViewVerifyEmail,
			PathProfile:     ViewProfile,
			PathMyRequests:  ViewMyRequests,
			PathEmployees:   ViewEmployees,
			PathAccounts:    ViewAccounts,
			PathDepartments: ViewDepartments,
		},
		protected: map[string]bool{
			PathProfile:    true,
			PathMyRequests: true,
		},
		adminOnly: map[string]bool{
			PathEmployees:   true,
			PathAccounts:    true,
			PathDepartments: true,
		},
	}
}

// Dispatch resolves path through the guards and activates the resulting
// view. It returns the path that was ultimately dispatched: the requested
// path when no guard fired, the redirect target otherwise.
//
// Guard order is fixed: the authentication guard on protected paths runs
// before the admin guard on admin-only paths.
func (rt *Router) Dispatch(path string, sess *session.Session, view Renderer, notices Notifier) string {
	if path == "" {
		path = PathHome
	}

	if rt.protected[path] && sess == nil {
		return rt.Dispatch(PathLogin, sess, view, notices)
	}

	if rt.adminOnly[path] && !sess.IsAdmin() {
		if notices != nil {
			notices.Notify(AccessDeniedNotice)
		}
		return rt.Dispatch(PathHome, sess, view, notices)
	}

	name, ok := rt.views[path]
	if !ok {
		name = ViewHome
	}
	view.Activate(name)
	return path
}
