package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !Verify("correct horse battery staple", hash) {
		t.Error("expected the original password to verify")
	}
	if Verify("wrong password", hash) {
		t.Error("expected a wrong password to fail verification")
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("samepassword")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := Hash("samepassword")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if first == second {
		t.Error("expected distinct digests for the same input")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"12345678", true},
		{"longenoughpassword", true},
		{"short", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := Validate(tt.input); got != tt.want {
			t.Errorf("Validate(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
