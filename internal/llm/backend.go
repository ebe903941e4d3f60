// Package llm abstracts the text-generation service behind a small backend
// interface so the request pipeline never knows whether it is talking to
// Azure OpenAI or the deterministic mock.
package llm

import (
	"context"
	"errors"
)

// ErrBackendUnavailable wraps any network, auth, or quota failure from the
// underlying generation service. Callers surface it as a service error and
// never retry.
var ErrBackendUnavailable = errors.New("generation backend unavailable")

// UseCase identifies which reading is being generated. The mock backend
// switches on it; the live backend ignores it.
type UseCase int

const (
	UseCaseDailyHoroscope UseCase = iota
	UseCaseCompatibility
	UseCaseFriendAdvice
)

func (u UseCase) String() string {
	switch u {
	case UseCaseDailyHoroscope:
		return "daily_horoscope"
	case UseCaseCompatibility:
		return "compatibility"
	case UseCaseFriendAdvice:
		return "friend_advice"
	default:
		return "unknown"
	}
}

// Backend generates text from a system/user prompt pair. Implementations are
// chosen once at startup and shared across requests.
type Backend interface {
	Generate(ctx context.Context, useCase UseCase, systemPrompt, userPrompt string) (string, error)
}
