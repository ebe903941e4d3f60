package astro

// Recognized tones. Anything else falls back to ToneSerious.
const (
	ToneSerious  = "serious"
	ToneHumorous = "humorous"
	ToneSoul     = "soul"
)

var toneInstructions = map[string]string{
	ToneSerious:  "Provide serious, thoughtful, and professional astrological insights with depth and wisdom.",
	ToneHumorous: "Provide astrological insights with humor, wit, and playful language while maintaining accuracy.",
	ToneSoul:     "Provide deeply spiritual, intuitive, and soul-focused astrological guidance with mystical undertones.",
}

// ToneInstruction returns the generation-style instruction for a tone.
// Unrecognized tones deterministically alias to serious.
func ToneInstruction(tone string) string {
	if instruction, ok := toneInstructions[tone]; ok {
		return instruction
	}
	return toneInstructions[ToneSerious]
}
