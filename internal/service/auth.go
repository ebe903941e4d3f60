package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/astroguide/astroguide-go/internal/astro"
	"github.com/astroguide/astroguide-go/internal/crypto"
	"github.com/astroguide/astroguide-go/internal/model"
	"github.com/astroguide/astroguide-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrNameRequired       = errors.New("name is required")
	ErrInvalidBirthDate   = errors.New("birth_date must be an ISO-8601 date")
	ErrEmailTaken         = errors.New("email already registered")
	// ErrUserNotFound means a verified token referenced a user that no
	// longer exists. Surfaced as unauthorized, same as a bad token.
	ErrUserNotFound = errors.New("user not found")
)

// UserStore is the directory contract the services consume, implemented by
// repository.UserRepository.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	Update(ctx context.Context, id string, upd model.UserUpdate) error
}

// AuthService handles registration, login, and profile access.
type AuthService struct {
	store       UserStore
	jwtSecret   string
	tokenExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		store:       store,
		jwtSecret:   secret,
		tokenExpiry: expiry,
	}
}

// Register creates a new user profile with its zodiac sign derived from the
// birth date and returns a session token.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	if req.Email == "" {
		return model.AuthResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.AuthResponse{}, ErrPasswordRequired
	}
	if req.Name == "" {
		return model.AuthResponse{}, ErrNameRequired
	}

	sign, err := astro.SignForDate(req.BirthDate)
	if err != nil {
		return model.AuthResponse{}, ErrInvalidBirthDate
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		BirthDate:    req.BirthDate,
		BirthTime:    req.BirthTime,
		BirthPlace:   req.BirthPlace,
		ZodiacSign:   sign,
		PasswordHash: hash,
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	return s.authResponse(user)
}

// Login authenticates a user by email and password and returns a session
// token. Unknown email and wrong password both fail with
// ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.store.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// GetProfile returns the full profile for a resolved user ID.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (model.ProfileResponse, error) {
	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.ProfileResponse{}, ErrUserNotFound
		}
		return model.ProfileResponse{}, err
	}

	return profileResponse(user), nil
}

// UpdateProfile merges the provided fields into the stored profile and
// returns the updated profile. The zodiac sign is recomputed by the store
// when the birth date changes.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, upd model.UserUpdate) (model.ProfileResponse, error) {
	if upd.BirthDate != nil {
		if _, err := astro.SignForDate(*upd.BirthDate); err != nil {
			return model.ProfileResponse{}, ErrInvalidBirthDate
		}
	}

	if err := s.store.Update(ctx, userID, upd); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.ProfileResponse{}, ErrUserNotFound
		}
		return model.ProfileResponse{}, err
	}

	return s.GetProfile(ctx, userID)
}

func (s *AuthService) authResponse(user *model.User) (model.AuthResponse, error) {
	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.tokenExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User: model.UserSummary{
			ID:         user.ID,
			Email:      user.Email,
			Name:       user.Name,
			ZodiacSign: user.ZodiacSign,
		},
	}, nil
}

func profileResponse(user *model.User) model.ProfileResponse {
	return model.ProfileResponse{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		BirthDate:  user.BirthDate,
		BirthTime:  user.BirthTime,
		BirthPlace: user.BirthPlace,
		ZodiacSign: user.ZodiacSign,
	}
}
