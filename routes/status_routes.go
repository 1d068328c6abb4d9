package routes

import (
	"swipematch_server/controllers"
	"swipematch_server/services"

	"github.com/gorilla/mux"
)

// RegisterStatusRoutes sets up the health check and the stats endpoint under
// /api/status
func RegisterStatusRoutes(r *mux.Router, sessions *services.SessionService, swipes *services.SwipeService) {
	// Initialize the controller with the services it reports on
	controller := controllers.NewStatusController(sessions, swipes)

	r.HandleFunc("/health", controller.GetHealth).Methods("GET")

	// Create a subrouter for /api/status
	statusRouter := r.PathPrefix("/api/status").Subrouter()
	statusRouter.HandleFunc("/stats", controller.GetStats).Methods("GET")
}
