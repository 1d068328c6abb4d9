package models

// RegisterUserPayload is sent by a client right after connecting to bind its
// user ID to the live socket
type RegisterUserPayload struct {
	UserID        string `json:"user_id"`
	ExpoPushToken string `json:"expoPushToken,omitempty"`
	Username      string `json:"username"`
}

// CoupleSwipePayload carries one user's interest signal on an item
type CoupleSwipePayload struct {
	UserID          string `json:"user_id"`
	PartnerID       string `json:"partner_id"`
	Interested      bool   `json:"interested"`
	ItemID          string `json:"id"`
	ExpoPushToken   string `json:"expoPushToken,omitempty"`
	PartnerUsername string `json:"partner_username"`
	UserUsername    string `json:"user_username"`
	ItemType        string `json:"item_type"`
	Title           string `json:"title,omitempty"`
	Image           string `json:"image,omitempty"`
}

// MatchEvent is the payload emitted to each matched client; the user_id and
// user_username fields always denote the recipient
type MatchEvent struct {
	UserID          string `json:"user_id"`
	UserUsername    string `json:"user_username"`
	PartnerID       string `json:"partner_id"`
	PartnerUsername string `json:"partner_username"`
	ItemID          string `json:"item_id"`
	ItemType        string `json:"item_type"`
	Title           string `json:"title"`
	Image           string `json:"image"`
	Message         string `json:"message"`
}

// PushNotification is the body POSTed to the Expo push endpoint
type PushNotification struct {
	To    string                 `json:"to"`
	Sound string                 `json:"sound"`
	Title string                 `json:"title"`
	Body  string                 `json:"body"`
	Data  map[string]interface{} `json:"data"`
}
