package util

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("123456")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "123456" {
		t.Fatal("hash must not equal the plaintext password")
	}
	if !CheckPasswordHash("123456", hash) {
		t.Error("expected the original password to match its hash")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("expected a wrong password to be rejected")
	}
}
