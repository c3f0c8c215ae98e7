package auth

import (
	"os"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	os.Setenv("AUTH_SECRET", "test-secret")
	os.Exit(m.Run())
}

func payload() TokenPayload {
	return TokenPayload{
		UserID:   "3f0c8a7e-0000-0000-0000-000000000001",
		Username: "admin",
		Email:    "admin@example.com",
		Role:     "ADMIN",
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := CreateToken(payload())
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	got := VerifyToken(token)
	if got == nil {
		t.Fatal("VerifyToken returned nil for a fresh token")
	}
	if *got != payload() {
		t.Errorf("payload = %+v, want %+v", *got, payload())
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	token, err := createTokenAt(payload(), time.Now().Add(-25*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if got := VerifyToken(token); got != nil {
		t.Errorf("expired token verified: %+v", got)
	}
}

func TestVerifyToken_Tampered(t *testing.T) {
	token, err := CreateToken(payload())
	if err != nil {
		t.Fatal(err)
	}
	tampered := token[:len(token)-2] + "xx"
	if got := VerifyToken(tampered); got != nil {
		t.Errorf("tampered token verified: %+v", got)
	}
}

func TestVerifyToken_GarbageNeverPanics(t *testing.T) {
	for _, s := range []string{"", "not-a-token", "a.b.c", "eyJhbGciOiJub25lIn0..x"} {
		if got := VerifyToken(s); got != nil {
			t.Errorf("VerifyToken(%q) = %+v, want nil", s, got)
		}
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "s3cret" {
		t.Fatal("password stored in plain text")
	}
	if !CheckPassword(hash, "s3cret") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}
