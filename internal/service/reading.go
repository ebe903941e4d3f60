package service

import (
	"context"
	"errors"
	"time"

	"github.com/astroguide/astroguide-go/internal/astro"
	"github.com/astroguide/astroguide-go/internal/llm"
	"github.com/astroguide/astroguide-go/internal/model"
	"github.com/astroguide/astroguide-go/internal/repository"
)

var ErrFriendNamesRequired = errors.New("friend_names is required")

// ReadingService runs the generation pipeline: resolve the authenticated
// user, build the prompt pair for the use case, invoke the backend once, and
// wrap the result with the echoed tone and a generation timestamp. Nothing
// is retried and nothing is persisted.
type ReadingService struct {
	store   UserStore
	backend llm.Backend
	now     func() time.Time
}

// NewReadingService creates a ReadingService on the given store and
// generation backend. The backend is chosen once at startup.
func NewReadingService(store UserStore, backend llm.Backend) *ReadingService {
	return &ReadingService{
		store:   store,
		backend: backend,
		now:     time.Now,
	}
}

// DailyHoroscope generates a daily horoscope for the user. The date embedded
// in the prompt is the server's current date.
func (s *ReadingService) DailyHoroscope(ctx context.Context, userID string, req model.HoroscopeRequest) (model.ReadingResponse, error) {
	user, err := s.resolveUser(ctx, userID)
	if err != nil {
		return model.ReadingResponse{}, err
	}

	tone := normalizeTone(req.Tone)
	system, prompt := astro.DailyHoroscopePrompts(birthInfo(user), tone, s.now())

	return s.generate(ctx, llm.UseCaseDailyHoroscope, system, prompt, tone)
}

// Compatibility generates a compatibility analysis between the user and a
// partner, deriving the partner's zodiac sign from the partner's birth date.
func (s *ReadingService) Compatibility(ctx context.Context, userID string, req model.CompatibilityRequest) (model.ReadingResponse, error) {
	user, err := s.resolveUser(ctx, userID)
	if err != nil {
		return model.ReadingResponse{}, err
	}

	partnerSign, err := astro.SignForDate(req.PartnerBirthDate)
	if err != nil {
		return model.ReadingResponse{}, ErrInvalidBirthDate
	}

	partner := astro.BirthInfo{
		Date:  req.PartnerBirthDate,
		Time:  req.PartnerBirthTime,
		Place: req.PartnerBirthPlace,
		Sign:  partnerSign,
	}

	tone := normalizeTone(req.Tone)
	system, prompt := astro.CompatibilityPrompts(birthInfo(user), partner, tone)

	return s.generate(ctx, llm.UseCaseCompatibility, system, prompt, tone)
}

// FriendAdvice generates communication advice addressed to each named
// friend.
func (s *ReadingService) FriendAdvice(ctx context.Context, userID string, req model.FriendAdviceRequest) (model.ReadingResponse, error) {
	if len(req.FriendNames) == 0 {
		return model.ReadingResponse{}, ErrFriendNamesRequired
	}

	user, err := s.resolveUser(ctx, userID)
	if err != nil {
		return model.ReadingResponse{}, err
	}

	tone := normalizeTone(req.Tone)
	system, prompt := astro.FriendAdvicePrompts(birthInfo(user), req.FriendNames, tone)

	return s.generate(ctx, llm.UseCaseFriendAdvice, system, prompt, tone)
}

func (s *ReadingService) resolveUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *ReadingService) generate(ctx context.Context, useCase llm.UseCase, systemPrompt, userPrompt, tone string) (model.ReadingResponse, error) {
	content, err := s.backend.Generate(ctx, useCase, systemPrompt, userPrompt)
	if err != nil {
		return model.ReadingResponse{}, err
	}

	return model.ReadingResponse{
		Content:     content,
		Tone:        tone,
		GeneratedAt: s.now().UTC(),
	}, nil
}

func birthInfo(user *model.User) astro.BirthInfo {
	return astro.BirthInfo{
		Date:  user.BirthDate,
		Time:  user.BirthTime,
		Place: user.BirthPlace,
		Sign:  user.ZodiacSign,
	}
}

// normalizeTone fills in the default tone for empty requests. Unrecognized
// tones are echoed back unchanged; their instruction falls back to serious
// inside the prompt builder.
func normalizeTone(tone string) string {
	if tone == "" {
		return astro.ToneSerious
	}
	return tone
}
