package api

import (
	"github.com/gorilla/mux"

	"staffdesk/internal/config"
	"staffdesk/internal/nav"
	"staffdesk/internal/repository/statetree"
	"staffdesk/internal/session"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, repo *statetree.Repo, guard *session.Guard, router *nav.Router) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(repo, guard, cfg.JWTSecret, cfg.TokenDuration)
	profileHandler := NewProfileHandler(repo, guard, authHandler)
	accountsHandler := NewAccountsHandler(repo)
	departmentsHandler := NewDepartmentsHandler(repo)
	employeesHandler := NewEmployeesHandler(repo)
	requestsHandler := NewRequestsHandler(repo)
	pagesHandler := NewPagesHandler(router, guard, cfg.JWTSecret)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/v1/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/v1/auth/verify", authHandler.Verify).Methods("POST")
	r.HandleFunc("/v1/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/app", pagesHandler.Navigate).Methods("GET")
	r.HandleFunc("/app/{page}", pagesHandler.Navigate).Methods("GET")

	// API v1 protected routes
	apiV1 := r.PathPrefix("/v1").Subrouter()
	apiV1.Use(AuthMiddleware(cfg.JWTSecret, guard))

	apiV1.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	apiV1.HandleFunc("/profile", profileHandler.Get).Methods("GET")
	apiV1.HandleFunc("/profile", profileHandler.Update).Methods("PUT")
	apiV1.HandleFunc("/requests", requestsHandler.List).Methods("GET")
	apiV1.HandleFunc("/requests", requestsHandler.Create).Methods("POST")
	apiV1.HandleFunc("/requests/{index}", requestsHandler.Update).Methods("PUT")
	apiV1.HandleFunc("/requests/{index}", requestsHandler.Delete).Methods("DELETE")

	// Admin-only routes
	admin := apiV1.NewRoute().Subrouter()
	admin.Use(RequireAdmin)

	admin.HandleFunc("/accounts", accountsHandler.List).Methods("GET")
	admin.HandleFunc("/accounts", accountsHandler.Create).Methods("POST")
	admin.HandleFunc("/accounts/{email}", accountsHandler.Update).Methods("PUT")
	admin.HandleFunc("/accounts/{email}", accountsHandler.Delete).Methods("DELETE")
	admin.HandleFunc("/departments", departmentsHandler.List).Methods("GET")
	admin.HandleFunc("/departments", departmentsHandler.Create).Methods("POST")
	admin.HandleFunc("/departments/{id}", departmentsHandler.Update).Methods("PUT")
	admin.HandleFunc("/departments/{id}", departmentsHandler.Delete).Methods("DELETE")
	admin.HandleFunc("/employees", employeesHandler.List).Methods("GET")
	admin.HandleFunc("/employees", employeesHandler.Create).Methods("POST")
	admin.HandleFunc("/employees/{empId}", employeesHandler.Update).Methods("PUT")
	admin.HandleFunc("/employees/{empId}", employeesHandler.Delete).Methods("DELETE")

	return r
}
