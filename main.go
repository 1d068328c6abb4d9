package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"swipematch_server/routes"
	"swipematch_server/services"
	"swipematch_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize Services
	log.Println("Initializing services...")
	sessionService := services.NewSessionService()
	swipeService := services.NewSwipeService()
	pushService := services.NewPushService(os.Getenv("EXPO_PUSH_URL"), 2)
	defer pushService.Close()
	notificationService := &services.NotificationService{Sessions: sessionService, Push: pushService}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	log.Printf("Using server port: %s\n", port)

	// Start the Socket.IO server
	socketServer := socket.NewSocketServer(sessionService, swipeService, notificationService)
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to SwipeMatch")
	}).Methods("GET")

	// Register routes
	routes.RegisterStatusRoutes(r, sessionService, swipeService)

	// Mount the Socket.IO endpoint
	r.PathPrefix("/socket.io/").Handler(socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
