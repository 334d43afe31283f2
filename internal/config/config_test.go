package config

import "testing"

func TestLoadTokenExpiryDefault(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.JWT.ExpiryDays != 7 {
		t.Errorf("expected default expiry of 7 days, got %d", cfg.JWT.ExpiryDays)
	}
}

func TestLoadTokenExpiryMalformedFallsBack(t *testing.T) {
	// A garbage expiry must not mint tokens that expire at issuance
	for _, value := range []string{"banana", "0", "-3"} {
		t.Setenv("TOKEN_EXPIRY_DAYS", value)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error for TOKEN_EXPIRY_DAYS=%q: %v", value, err)
		}
		if cfg.JWT.ExpiryDays != 7 {
			t.Errorf("TOKEN_EXPIRY_DAYS=%q: expected fallback to 7, got %d", value, cfg.JWT.ExpiryDays)
		}
	}
}

func TestLoadTokenExpiryFromEnv(t *testing.T) {
	t.Setenv("TOKEN_EXPIRY_DAYS", "14")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.JWT.ExpiryDays != 14 {
		t.Errorf("expected 14 day expiry, got %d", cfg.JWT.ExpiryDays)
	}
}

func TestLoadRejectsUnknownAppMode(t *testing.T) {
	t.Setenv("APP_MODE", "staging")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an unknown APP_MODE")
	}
}
