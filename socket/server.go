package socket

import (
	"log"

	"swipematch_server/models"
	"swipematch_server/services"

	socketio "github.com/googollee/go-socket.io"
)

// NewSocketServer initializes a Socket.IO server wired to the session,
// swipe, and notification services. A connection holds no session entry
// until the client sends registerUser.
func NewSocketServer(sessions *services.SessionService, swipes *services.SwipeService, notifications *services.NotificationService) *socketio.Server {
	server := socketio.NewServer(nil)

	// Handle connection events
	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ User connected:", c.ID())
		return nil
	})

	// Map user_id to the live socket and remember the push token and username
	server.OnEvent("/", "registerUser", func(c socketio.Conn, payload models.RegisterUserPayload) {
		sessions.Register(payload.UserID, c, payload.ExpoPushToken, payload.Username)
	})

	// Record a swipe and fan out notifications when it completes a match.
	// Bad swipe data is logged and dropped; the client gets no reply either
	// way.
	server.OnEvent("/", "coupleSwipe", func(c socketio.Conn, payload models.CoupleSwipePayload) {
		log.Printf("📩 Received coupleSwipe: user=%s partner=%s item=%s interested=%t type=%s\n",
			payload.UserID, payload.PartnerID, payload.ItemID, payload.Interested, payload.ItemType)

		match, err := swipes.RecordInterest(payload)
		if err != nil {
			log.Println("❌ Invalid swipe data:", err)
			return
		}
		if match != nil {
			notifications.NotifyMatch(match)
		}
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Println("❌ Socket error:", err)
	})

	// Handle user disconnect
	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("❌ User disconnected:", c.ID(), reason)
		sessions.RemoveByConnection(c.ID())
	})

	return server
}
