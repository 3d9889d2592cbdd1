package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ScheduleHandler is the set of HTTP handlers the router wires up.
type ScheduleHandler interface {
	UploadTimesheet(w http.ResponseWriter, r *http.Request)
	ListWeeks(w http.ResponseWriter, r *http.Request)
	GetWeek(w http.ResponseWriter, r *http.Request)
	GetWeekChart(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	scheduleHandler ScheduleHandler
	router          *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	scheduleHandler ScheduleHandler,
	router *mux.Router) *Router {
	return &Router{
		scheduleHandler: scheduleHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects a multipart form with a "pdf" file field
	r.router.HandleFunc("/v1/timesheets", r.scheduleHandler.UploadTimesheet).Methods("POST")

	r.router.HandleFunc("/v1/weeks", r.scheduleHandler.ListWeeks).Methods("GET")

	// expects ?key={week key}; keys contain "/" so they travel as a query arg
	r.router.HandleFunc("/v1/weeks/view", r.scheduleHandler.GetWeek).Methods("GET")
	r.router.HandleFunc("/v1/weeks/chart", r.scheduleHandler.GetWeekChart).Methods("GET")

	r.router.HandleFunc("/ping", r.scheduleHandler.Ping).Methods("GET")
}
