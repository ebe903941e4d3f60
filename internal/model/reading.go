package model

import "time"

// HoroscopeRequest asks for a daily horoscope in the given tone.
type HoroscopeRequest struct {
	Tone string `json:"tone"`
}

// CompatibilityRequest asks for a compatibility analysis against a partner's
// birth data.
type CompatibilityRequest struct {
	PartnerBirthDate  string `json:"partner_birth_date"`
	PartnerBirthTime  string `json:"partner_birth_time"`
	PartnerBirthPlace string `json:"partner_birth_place"`
	Tone              string `json:"tone"`
}

// FriendAdviceRequest asks for communication advice addressed to each named
// friend.
type FriendAdviceRequest struct {
	FriendNames []string `json:"friend_names"`
	Tone        string   `json:"tone"`
}

// ReadingResponse wraps generated text with the echoed tone and the
// generation timestamp. Readings are never persisted.
type ReadingResponse struct {
	Content     string    `json:"content"`
	Tone        string    `json:"tone"`
	GeneratedAt time.Time `json:"generated_at"`
}
