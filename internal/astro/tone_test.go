package astro

import "testing"

func TestToneInstruction(t *testing.T) {
	tests := []struct {
		name string
		tone string
		want string
	}{
		{"serious", ToneSerious, toneInstructions[ToneSerious]},
		{"humorous", ToneHumorous, toneInstructions[ToneHumorous]},
		{"soul", ToneSoul, toneInstructions[ToneSoul]},
		{"unknown falls back to serious", "sarcastic", toneInstructions[ToneSerious]},
		{"empty falls back to serious", "", toneInstructions[ToneSerious]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToneInstruction(tt.tone); got != tt.want {
				t.Errorf("ToneInstruction(%q) = %q, want %q", tt.tone, got, tt.want)
			}
		})
	}
}

func TestToneInstructionsAreDistinct(t *testing.T) {
	seen := make(map[string]string)
	for tone, instruction := range toneInstructions {
		if prev, ok := seen[instruction]; ok {
			t.Errorf("tones %q and %q share the same instruction", prev, tone)
		}
		seen[instruction] = tone
	}
}
