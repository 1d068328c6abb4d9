package services

import (
	"fmt"
	"log"

	"swipematch_server/models"
)

// PushSender queues a push notification for asynchronous delivery
type PushSender interface {
	Enqueue(n models.PushNotification)
}

// NotificationService fans a confirmed match out to both participants: a
// "match" event on each live session and a push notification for each side
// that supplied a push token. Every leg is best-effort and independent, so
// partial delivery (one user online, one not) is expected.
type NotificationService struct {
	Sessions *SessionService
	Push     PushSender
}

// NotifyMatch delivers both legs for both sides of a match
func (ns *NotificationService) NotifyMatch(match *models.MatchResult) {
	ns.notifySide(match, match.User, match.Partner)
	ns.notifySide(match, match.Partner, match.User)
}

// notifySide delivers to one recipient; other is the person they matched
// with. Usernames come from the swipe payloads, with the session directory's
// registered name as fallback when a payload name is missing.
func (ns *NotificationService) notifySide(match *models.MatchResult, recipient, other models.MatchSide) {
	session, online := ns.Sessions.Lookup(recipient.UserID)

	recipientName := recipient.Username
	if recipientName == "" && online {
		recipientName = session.Username
	}
	otherName := other.Username
	if otherName == "" {
		if otherSession, ok := ns.Sessions.Lookup(other.UserID); ok {
			otherName = otherSession.Username
		}
	}

	message := fmt.Sprintf("You matched with %s", otherName)

	// Push leg: attempted whenever the swipe carried a token, session or not
	if recipient.ExpoPushToken != "" {
		log.Printf("Sending push notification to user %s for match with %s\n", recipient.UserID, otherName)
		ns.Push.Enqueue(models.PushNotification{
			To:    recipient.ExpoPushToken,
			Sound: "default",
			Title: "New Match!",
			Body:  message,
			Data:  map[string]interface{}{"someData": "Match Details"},
		})
	}

	// Live leg: requires a session; its absence skips only this leg
	if !online {
		log.Printf("No live session for user %s, skipping match event\n", recipient.UserID)
		return
	}

	log.Printf("Sending match event to user %s for match with %s\n", recipient.UserID, otherName)
	session.Conn.Emit("match", models.MatchEvent{
		UserID:          recipient.UserID,
		UserUsername:    recipientName,
		PartnerID:       other.UserID,
		PartnerUsername: otherName,
		ItemID:          match.ItemID,
		ItemType:        match.ItemType,
		Title:           match.Title,
		Image:           match.Image,
		Message:         message,
	})
}
