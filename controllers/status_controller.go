package controllers

import (
	"encoding/json"
	"net/http"

	"swipematch_server/services"
)

// StatusController exposes operational counters for the in-memory state
type StatusController struct {
	Sessions *services.SessionService
	Swipes   *services.SwipeService
}

// NewStatusController creates a new StatusController instance
func NewStatusController(sessions *services.SessionService, swipes *services.SwipeService) *StatusController {
	return &StatusController{Sessions: sessions, Swipes: swipes}
}

// GetHealth handles the liveness check
func (sc *StatusController) GetHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}

// GetStats reports the current session and pending-swipe counts
func (sc *StatusController) GetStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"activeSessions": sc.Sessions.ActiveCount(),
		"pendingItems":   sc.Swipes.PendingItemCount(),
	})
}
