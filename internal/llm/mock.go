package llm

import "context"

// Canned replies returned by the mock backend, one per use case. The daily
// reply is the same for every tone; only the echoed tone field varies.
const (
	mockDailyReply = `Your daily horoscope suggests that today is an excellent day for new beginnings. ` +
		`The alignment of planets indicates favorable conditions for starting projects or relationships. ` +
		`Take time to reflect on your goals and aspirations. Trust your intuition when making decisions today.`

	mockCompatibilityReply = `Compatibility Analysis: 78% Match

Your relationship shows strong potential with excellent communication dynamics. You balance each other well, with one partner bringing stability while the other introduces spontaneity and creativity.

Strengths: Communication, shared values, complementary personalities
Challenges: Different approaches to financial matters, occasional stubbornness

Long-term potential is high with continued effort on both sides.`

	mockFriendAdviceReply = `When communicating with your friends, remember that your astrological profile suggests you tend to be direct and sometimes impatient. Take time to listen fully before responding.

For Alex: Use more humor and light-hearted approaches
For Jordan: Be patient with their analytical nature
For Taylor: Connect on emotional topics they care about

Your natural leadership qualities make you a valued friend.`

	mockGenericReply = "This is a mock response for testing purposes. In production, this would be generated by Azure OpenAI."
)

// MockBackend is the deterministic backend used in testing mode. It selects
// its canned reply from the structured use case, not from prompt contents,
// and never fails.
type MockBackend struct{}

// NewMockBackend creates a mock generation backend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Generate returns the canned reply for the use case.
func (m *MockBackend) Generate(_ context.Context, useCase UseCase, _, _ string) (string, error) {
	switch useCase {
	case UseCaseDailyHoroscope:
		return mockDailyReply, nil
	case UseCaseCompatibility:
		return mockCompatibilityReply, nil
	case UseCaseFriendAdvice:
		return mockFriendAdviceReply, nil
	default:
		return mockGenericReply, nil
	}
}
