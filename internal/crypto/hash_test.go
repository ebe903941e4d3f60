package crypto

import (
	"errors"
	"strings"
	"testing"
)

func TestHashPasswordFormat(t *testing.T) {
	hash, err := HashPassword("correct-horse-battery-staple")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	// PHC format: $argon2id$v=19$m=65536,t=3,p=2$<salt>$<hash>
	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		t.Fatalf("HashPassword() expected 6 parts, got %d: %q", len(parts), hash)
	}
	if parts[1] != "argon2id" {
		t.Errorf("HashPassword() algorithm = %q, want %q", parts[1], "argon2id")
	}
	if parts[3] != "m=65536,t=3,p=2" {
		t.Errorf("HashPassword() params = %q, want %q", parts[3], "m=65536,t=3,p=2")
	}
}

func TestVerifyPasswordRoundTrip(t *testing.T) {
	password := "my-secure-password"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	match, err := VerifyPassword(password, hash)
	if err != nil {
		t.Fatalf("VerifyPassword() unexpected error: %v", err)
	}
	if !match {
		t.Error("VerifyPassword() returned false for correct password")
	}

	match, err = VerifyPassword("my-secure-passworD", hash)
	if err != nil {
		t.Fatalf("VerifyPassword() unexpected error: %v", err)
	}
	if match {
		t.Error("VerifyPassword() returned true for altered password")
	}
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	hash1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	hash2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	if hash1 == hash2 {
		t.Error("HashPassword() produced identical hashes for same password (salt should differ)")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	_, err := VerifyPassword("password", "not-a-phc-string")
	if !errors.Is(err, ErrInvalidHashFormat) {
		t.Errorf("VerifyPassword() error = %v, want ErrInvalidHashFormat", err)
	}

	_, err = VerifyPassword("password", "$bcrypt$v=19$m=65536,t=3,p=2$abc$def")
	if !errors.Is(err, ErrInvalidHashFormat) {
		t.Errorf("VerifyPassword() error = %v, want ErrInvalidHashFormat for wrong algorithm", err)
	}
}
