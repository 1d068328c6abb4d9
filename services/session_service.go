package services

import (
	"log"
	"sync"

	"swipematch_server/models"
)

// SessionService is the in-memory directory of live user sessions. Entries
// are rebuilt continuously as users connect, register, and disconnect; none
// of them survive a restart.
type SessionService struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

// NewSessionService creates an empty session directory
func NewSessionService() *SessionService {
	return &SessionService{sessions: make(map[string]models.Session)}
}

// Register upserts the session for a user. The last registration wins; a user
// reconnecting on a new socket replaces the old entry.
func (ss *SessionService) Register(userID string, conn models.Emitter, expoPushToken, username string) {
	ss.mu.Lock()
	ss.sessions[userID] = models.Session{Conn: conn, ExpoPushToken: expoPushToken, Username: username}
	ss.mu.Unlock()
	log.Printf("User registered: %s with socket ID: %s and username: %s\n", userID, conn.ID(), username)
}

// Lookup returns the session for a user, if any
func (ss *SessionService) Lookup(userID string) (models.Session, bool) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	session, ok := ss.sessions[userID]
	return session, ok
}

// RemoveByConnection drops the session owned by the given socket ID. At most
// one entry can own a socket; unknown IDs are a no-op.
func (ss *SessionService) RemoveByConnection(connID string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	for userID, session := range ss.sessions {
		if session.Conn.ID() == connID {
			delete(ss.sessions, userID)
			log.Printf("User %s removed from session directory\n", userID)
			return
		}
	}
}

// ActiveCount reports the number of registered sessions
func (ss *SessionService) ActiveCount() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return len(ss.sessions)
}
