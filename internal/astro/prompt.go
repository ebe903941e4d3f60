package astro

import (
	"fmt"
	"strings"
	"time"
)

// BirthInfo carries the birth data embedded into prompts.
type BirthInfo struct {
	Date  string
	Time  string
	Place string
	Sign  string
}

const dailySystemTemplate = `You are an expert astrologer providing personalized daily horoscopes.
%s

Focus on:
- Daily guidance and insights
- Career, love, health, and personal growth
- Specific advice for today
- Keep response between 150-250 words`

const compatibilitySystemTemplate = `You are an expert astrologer specializing in relationship compatibility analysis.
%s

Provide detailed compatibility analysis covering:
- Overall compatibility percentage and rating
- Strengths in the relationship
- Potential challenges
- Communication tips
- Long-term relationship potential
- Keep response between 200-300 words`

const friendAdviceSystemTemplate = `You are an expert astrologer providing personalized communication advice based on astrological insights.
%s

Focus on:
- Communication strategies based on astrological personality
- How to connect better with different personality types
- Practical tips for improving relationships
- Understanding different communication styles
- Keep response between 150-250 words`

// DailyHoroscopePrompts builds the system and user prompts for a daily
// horoscope. The date embedded is the server's current date, never one
// supplied by the caller.
func DailyHoroscopePrompts(subject BirthInfo, tone string, now time.Time) (string, string) {
	system := fmt.Sprintf(dailySystemTemplate, ToneInstruction(tone))

	user := fmt.Sprintf(
		"Create a personalized daily horoscope for someone born on %s at %s in %s. "+
			"Their zodiac sign is %s. Today's date is %s. Include specific guidance for today.",
		subject.Date, subject.Time, subject.Place, subject.Sign,
		now.Format("January 2, 2006"),
	)

	return system, user
}

// CompatibilityPrompts builds the system and user prompts for a compatibility
// analysis between the subject and a partner. The partner's sign must already
// be derived from the partner's birth date.
func CompatibilityPrompts(subject, partner BirthInfo, tone string) (string, string) {
	system := fmt.Sprintf(compatibilitySystemTemplate, ToneInstruction(tone))

	user := fmt.Sprintf(
		"Analyze the compatibility between:\n"+
			"Person 1: Born %s at %s in %s (%s)\n"+
			"Person 2: Born %s at %s in %s (%s)\n\n"+
			"Provide a comprehensive compatibility analysis with specific insights.",
		subject.Date, subject.Time, subject.Place, subject.Sign,
		partner.Date, partner.Time, partner.Place, partner.Sign,
	)

	return system, user
}

// FriendAdvicePrompts builds the system and user prompts for communication
// advice addressed to each named friend.
func FriendAdvicePrompts(subject BirthInfo, friendNames []string, tone string) (string, string) {
	system := fmt.Sprintf(friendAdviceSystemTemplate, ToneInstruction(tone))

	user := fmt.Sprintf(
		"Based on the astrological profile of someone born on %s at %s in %s (%s), "+
			"provide personalized advice on how to communicate better with friends named: %s.\n\n"+
			"Give specific communication tips and strategies for building stronger friendships.",
		subject.Date, subject.Time, subject.Place, subject.Sign,
		strings.Join(friendNames, ", "),
	)

	return system, user
}
