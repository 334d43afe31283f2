package jwt

import (
	"errors"
	"testing"
)

const testSecret = "unit-test-secret"

func TestGenerateAndValidate(t *testing.T) {
	token, err := Generate(42, "seller", "seller@example.com", "Som Chai", testSecret, 7)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	claims, err := Validate(token, testSecret)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user ID 42, got %d", claims.UserID)
	}
	if claims.Role != "seller" {
		t.Errorf("expected role seller, got %s", claims.Role)
	}
	if claims.Email != "seller@example.com" {
		t.Errorf("expected email to round-trip, got %s", claims.Email)
	}
	if claims.Issuer != "shoplane" {
		t.Errorf("expected issuer shoplane, got %s", claims.Issuer)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	token, err := Generate(1, "buyer", "", "", testSecret, 7)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if _, err := Validate(token, "a-different-secret"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidateTamperedToken(t *testing.T) {
	token, err := Generate(1, "buyer", "", "", testSecret, 7)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	// Flip a character in the signature segment
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	if _, err := Validate(string(tampered), testSecret); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for tampered token, got %v", err)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	// Negative expiry puts the deadline in the past
	token, err := Generate(1, "buyer", "", "", testSecret, -1)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if _, err := Validate(token, testSecret); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for expired token, got %v", err)
	}
}

func TestValidateGarbage(t *testing.T) {
	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := Validate(input, testSecret); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid for %q, got %v", input, err)
		}
	}
}
