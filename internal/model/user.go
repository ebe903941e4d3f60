package model

import "time"

// User represents a stored birth-profile record. BirthDate is kept as an
// ISO-8601 string, the same representation used on the wire and in the
// database. ZodiacSign is always derived from BirthDate; it is recomputed
// whenever the birth date changes.
type User struct {
	ID           string
	Email        string
	Name         string
	BirthDate    string
	BirthTime    string
	BirthPlace   string
	ZodiacSign   string
	PasswordHash string
	CreatedAt    time.Time
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	BirthDate  string `json:"birth_date"`
	BirthTime  string `json:"birth_time"`
	BirthPlace string `json:"birth_place"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserUpdate carries the profile fields a PUT /profile request may change.
// Nil pointers mean "leave unchanged".
type UserUpdate struct {
	Name       *string `json:"name"`
	BirthDate  *string `json:"birth_date"`
	BirthTime  *string `json:"birth_time"`
	BirthPlace *string `json:"birth_place"`
}

// AuthResponse is returned by registration and login: a bearer session token
// plus a short user summary.
type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        UserSummary `json:"user"`
}

// UserSummary is the abbreviated user shape embedded in auth responses.
type UserSummary struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	ZodiacSign string `json:"zodiac_sign"`
}

// ProfileResponse is the full profile shape returned by the profile routes.
type ProfileResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	BirthDate  string `json:"birth_date"`
	BirthTime  string `json:"birth_time"`
	BirthPlace string `json:"birth_place"`
	ZodiacSign string `json:"zodiac_sign"`
}
