package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/astroguide/astroguide-go/internal/astro"
	"github.com/astroguide/astroguide-go/internal/llm"
	"github.com/astroguide/astroguide-go/internal/middleware"
	"github.com/astroguide/astroguide-go/internal/model"
	"github.com/astroguide/astroguide-go/internal/repository"
	"github.com/astroguide/astroguide-go/internal/service"
)

const testSecret = "test-secret"

// memoryStore implements service.UserStore for route-level tests.
type memoryStore struct {
	users map[string]*model.User
}

func newMemoryStore() *memoryStore {
	return &memoryStore{users: make(map[string]*model.User)}
}

func (s *memoryStore) Create(_ context.Context, user *model.User) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *memoryStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *memoryStore) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *memoryStore) Update(_ context.Context, id string, upd model.UserUpdate) error {
	u, ok := s.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.BirthDate != nil {
		sign, err := astro.SignForDate(*upd.BirthDate)
		if err != nil {
			return err
		}
		u.BirthDate = *upd.BirthDate
		u.ZodiacSign = sign
	}
	if upd.BirthTime != nil {
		u.BirthTime = *upd.BirthTime
	}
	if upd.BirthPlace != nil {
		u.BirthPlace = *upd.BirthPlace
	}
	return nil
}

// newTestRouter assembles the routes the way cmd/api/main.go does, with an
// in-memory store and the mock generation backend.
func newTestRouter() chi.Router {
	store := newMemoryStore()
	authService := service.NewAuthService(store, testSecret, 7*24*time.Hour)
	readingService := service.NewReadingService(store, llm.NewMockBackend())

	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(authService)
	readingHandler := NewReadingHandler(readingService)

	r := chi.NewRouter()
	r.Post("/auth/register", authHandler.HandleRegister)
	r.Post("/auth/login", authHandler.HandleLogin)
	r.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth(testSecret))
		r.Get("/profile", profileHandler.HandleGetProfile)
		r.Put("/profile", profileHandler.HandleUpdateProfile)
		r.Post("/horoscope/daily", readingHandler.HandleDailyHoroscope)
		r.Post("/compatibility/analyze", readingHandler.HandleCompatibility)
		r.Post("/friends/advice", readingHandler.HandleFriendAdvice)
	})
	return r
}

func doJSON(t *testing.T, router chi.Router, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func register(t *testing.T, router chi.Router) model.AuthResponse {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/auth/register", "", model.RegisterRequest{
		Email:      "taurus@example.com",
		Password:   "password123",
		Name:       "Dana",
		BirthDate:  "1990-05-15",
		BirthTime:  "14:30",
		BirthPlace: "Paris, France",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("register status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp model.AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding register response: %v", err)
	}
	return resp
}

func TestRegisterAndDuplicate(t *testing.T) {
	router := newTestRouter()

	resp := register(t, router)
	if resp.User.ZodiacSign != "Taurus" {
		t.Errorf("zodiac_sign = %q, want %q", resp.User.ZodiacSign, "Taurus")
	}
	if resp.AccessToken == "" {
		t.Error("access_token missing from register response")
	}

	rec := doJSON(t, router, http.MethodPost, "/auth/register", "", model.RegisterRequest{
		Email:      "taurus@example.com",
		Password:   "another-password",
		Name:       "Other",
		BirthDate:  "1991-01-01",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("duplicate register status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestRegisterOversizedBody(t *testing.T) {
	router := newTestRouter()

	// A body past the 1MB cap is cut off mid-read and must map to 413,
	// not the generic 400 for malformed JSON.
	body := bytes.Repeat([]byte("a"), 1<<20+1)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusRequestEntityTooLarge)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	router := newTestRouter()
	register(t, router)

	rec := doJSON(t, router, http.MethodPost, "/auth/login", "", model.LoginRequest{
		Email:    "taurus@example.com",
		Password: "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("login status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestProtectedRoutesRejectBadTokens(t *testing.T) {
	router := newTestRouter()
	register(t, router)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/profile"},
		{http.MethodPut, "/profile"},
		{http.MethodPost, "/horoscope/daily"},
		{http.MethodPost, "/compatibility/analyze"},
		{http.MethodPost, "/friends/advice"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := doJSON(t, router, rt.method, rt.path, "not-a-real-token", map[string]string{})
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("error response is not JSON: %v", err)
			}
			if body["error"] == "" {
				t.Error("error response missing error field")
			}
		})
	}
}

func TestDailyHoroscopeRoute(t *testing.T) {
	router := newTestRouter()
	auth := register(t, router)

	rec := doJSON(t, router, http.MethodPost, "/horoscope/daily", auth.AccessToken,
		model.HoroscopeRequest{Tone: "humorous"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp model.ReadingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Tone != "humorous" {
		t.Errorf("tone = %q, want %q", resp.Tone, "humorous")
	}
	if resp.Content == "" {
		t.Error("content missing")
	}
	if resp.GeneratedAt.IsZero() {
		t.Error("generated_at missing")
	}
}

func TestUpdateProfileRoute(t *testing.T) {
	router := newTestRouter()
	auth := register(t, router)

	rec := doJSON(t, router, http.MethodPut, "/profile", auth.AccessToken,
		map[string]string{"birth_date": "1990-05-21"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp model.ProfileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.ZodiacSign != "Gemini" {
		t.Errorf("zodiac_sign = %q, want %q after cusp-crossing update", resp.ZodiacSign, "Gemini")
	}
}

func TestFriendAdviceRouteValidation(t *testing.T) {
	router := newTestRouter()
	auth := register(t, router)

	rec := doJSON(t, router, http.MethodPost, "/friends/advice", auth.AccessToken,
		model.FriendAdviceRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d for empty friend_names", rec.Code, http.StatusBadRequest)
	}
}
