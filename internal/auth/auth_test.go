package auth

import (
	"testing"
	"time"
)

func TestHashAndCheckKey(t *testing.T) {
	hash, err := HashKey("batch-caller-key")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}

	if err := CheckKey(hash, "batch-caller-key"); err != nil {
		t.Fatalf("expected key to match, got %v", err)
	}

	if err := CheckKey(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	secret := "test-secret"
	claims := Claims{Subject: "batch-runner", Role: "admin"}

	token, err := GenerateToken(secret, claims, time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	parsed, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if parsed.Subject != claims.Subject || parsed.Role != claims.Role {
		t.Fatalf("claims mismatch: %+v", parsed)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret-a", Claims{Subject: "batch-runner"}, time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	if _, err := ParseToken("secret-b", token); err == nil {
		t.Fatal("expected parse failure with wrong secret")
	}
}
