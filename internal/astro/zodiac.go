package astro

import "time"

// DateLayout is the wire and storage format for birth dates.
const DateLayout = "2006-01-02"

// Signs lists the twelve zodiac signs in calendar order starting from Aquarius.
var Signs = []string{
	"Aquarius", "Pisces", "Aries", "Taurus", "Gemini", "Cancer",
	"Leo", "Virgo", "Libra", "Scorpio", "Sagittarius", "Capricorn",
}

// SignFor maps a calendar date to its zodiac sign. Every valid date maps to
// exactly one sign; Capricorn wraps the year end (Dec 22 - Jan 19).
func SignFor(date time.Time) string {
	month := date.Month()
	day := date.Day()

	switch {
	case (month == time.January && day >= 20) || (month == time.February && day <= 18):
		return "Aquarius"
	case (month == time.February && day >= 19) || (month == time.March && day <= 20):
		return "Pisces"
	case (month == time.March && day >= 21) || (month == time.April && day <= 19):
		return "Aries"
	case (month == time.April && day >= 20) || (month == time.May && day <= 20):
		return "Taurus"
	case (month == time.May && day >= 21) || (month == time.June && day <= 20):
		return "Gemini"
	case (month == time.June && day >= 21) || (month == time.July && day <= 22):
		return "Cancer"
	case (month == time.July && day >= 23) || (month == time.August && day <= 22):
		return "Leo"
	case (month == time.August && day >= 23) || (month == time.September && day <= 22):
		return "Virgo"
	case (month == time.September && day >= 23) || (month == time.October && day <= 22):
		return "Libra"
	case (month == time.October && day >= 23) || (month == time.November && day <= 21):
		return "Scorpio"
	case (month == time.November && day >= 22) || (month == time.December && day <= 21):
		return "Sagittarius"
	default:
		return "Capricorn"
	}
}

// SignForDate parses an ISO-8601 date string and returns its zodiac sign.
func SignForDate(date string) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", err
	}
	return SignFor(t), nil
}
