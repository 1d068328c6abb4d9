package models

// Emitter is the slice of a live socket connection the server needs: identity
// and event emission. socketio.Conn satisfies it.
type Emitter interface {
	ID() string
	Emit(event string, v ...interface{})
}

// Session maps a registered user to their live connection, push token, and
// display name
type Session struct {
	Conn          Emitter
	ExpoPushToken string
	Username      string
}

// InterestRecord is one user's recorded swipe on one item
type InterestRecord struct {
	Interested    bool
	PartnerID     string
	ExpoPushToken string
	Username      string
}

// MatchSide is one participant of a confirmed match
type MatchSide struct {
	UserID        string
	Username      string
	ExpoPushToken string
}

// MatchResult is produced by the swipe ledger when both members of a pair
// expressed interest in the same item. User is the side whose swipe completed
// the match.
type MatchResult struct {
	ItemID   string
	ItemType string
	Title    string
	Image    string
	User     MatchSide
	Partner  MatchSide
}
