package utils

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash must not equal the plaintext")
	}

	if err := ComparePasswords(hash, "correct horse battery staple"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := ComparePasswords(hash, "wrong password"); err == nil {
		t.Error("wrong password accepted")
	}
}

func TestComparePasswordsBadHash(t *testing.T) {
	if err := ComparePasswords("not-a-bcrypt-hash", "anything"); err == nil {
		t.Error("malformed hash must not verify")
	}
}
