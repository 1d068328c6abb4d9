package services

import (
	"fmt"
	"log"
	"sync"

	"swipematch_server/models"
)

// SwipeService keeps the in-memory swipe ledger and decides matches. The
// ledger maps item ID -> user ID -> that user's latest interest record.
type SwipeService struct {
	mu     sync.Mutex
	swipes map[string]map[string]models.InterestRecord
}

// NewSwipeService creates an empty swipe ledger
func NewSwipeService() *SwipeService {
	return &SwipeService{swipes: make(map[string]map[string]models.InterestRecord)}
}

// RecordInterest stores one swipe and reports whether it completed a match.
// Re-swiping the same item overwrites the prior record (last write wins).
// The upsert, partner check, and item purge all run under one lock so a
// racing pair of swipes on the same item produces at most one match.
//
// A match requires the declared partner's record to exist with interested set,
// and the caller's own interested flag. The partner's record is not required
// to name the caller back; linkage is checked one-directionally from the
// incoming swipe.
func (sw *SwipeService) RecordInterest(p models.CoupleSwipePayload) (*models.MatchResult, error) {
	if p.UserID == "" || p.PartnerID == "" || p.ItemID == "" {
		return nil, fmt.Errorf("invalid swipe data: user_id=%q partner_id=%q item_id=%q", p.UserID, p.PartnerID, p.ItemID)
	}

	sw.mu.Lock()
	defer sw.mu.Unlock()

	item, ok := sw.swipes[p.ItemID]
	if !ok {
		item = make(map[string]models.InterestRecord)
		sw.swipes[p.ItemID] = item
	}
	item[p.UserID] = models.InterestRecord{
		Interested:    p.Interested,
		PartnerID:     p.PartnerID,
		ExpoPushToken: p.ExpoPushToken,
		Username:      p.UserUsername,
	}

	partner, ok := item[p.PartnerID]
	if !ok || !partner.Interested || !p.Interested {
		log.Printf("Swipe registered for user %s on item %s, waiting for partner's swipe\n", p.UserID, p.ItemID)
		return nil, nil
	}

	log.Printf("Match detected: user %s matched with %s on item %s\n", p.UserID, p.PartnerID, p.ItemID)

	title, image := resolveItemMetadata(p)

	// The item is consumed by its first match: every record for it is
	// discarded, including other users' pending swipes.
	delete(sw.swipes, p.ItemID)

	return &models.MatchResult{
		ItemID:   p.ItemID,
		ItemType: p.ItemType,
		Title:    title,
		Image:    image,
		User: models.MatchSide{
			UserID:        p.UserID,
			Username:      p.UserUsername,
			ExpoPushToken: p.ExpoPushToken,
		},
		Partner: models.MatchSide{
			UserID:        p.PartnerID,
			Username:      p.PartnerUsername,
			ExpoPushToken: partner.ExpoPushToken,
		},
	}, nil
}

// resolveItemMetadata picks the title and image for a matched item, falling
// back to a per-category label when the swipe carried no title. An
// unrecognized category is logged and matched with empty labels.
func resolveItemMetadata(p models.CoupleSwipePayload) (string, string) {
	fallback, ok := models.FallbackTitles[p.ItemType]
	if !ok {
		log.Printf("Unknown item type: %s\n", p.ItemType)
		return "", ""
	}
	title := p.Title
	if title == "" {
		title = fallback
	}
	return title, p.Image
}

// PendingItemCount reports how many items hold at least one unmatched swipe
func (sw *SwipeService) PendingItemCount() int {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return len(sw.swipes)
}
