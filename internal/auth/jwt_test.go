package auth

import (
	"errors"
	"testing"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	SetSecret("test-secret")

	token, err := GenerateAccessToken("admin@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.AdminEmail != "admin@example.com" {
		t.Errorf("admin email = %q", claims.AdminEmail)
	}
	if claims.Issuer != "devfolio" {
		t.Errorf("issuer = %q", claims.Issuer)
	}
}

func TestVerifyTokenRejectsTampering(t *testing.T) {
	SetSecret("test-secret")
	token, err := GenerateAccessToken("admin@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	// A token signed under a different key must not verify.
	SetSecret("rotated-secret")
	if _, err := VerifyToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("got %v, want ErrInvalidToken", err)
	}
}

func TestVerifyTokenEmpty(t *testing.T) {
	SetSecret("test-secret")
	if _, err := VerifyToken(""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("got %v, want ErrInvalidToken", err)
	}
	if _, err := VerifyToken("not.a.jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("got %v, want ErrInvalidToken", err)
	}
}

func TestGenerateRefreshTokenUnique(t *testing.T) {
	a, b := GenerateRefreshToken(), GenerateRefreshToken()
	if a == b {
		t.Error("refresh tokens must be unique")
	}
	if len(a) != 36 {
		t.Errorf("refresh token %q is not a uuid", a)
	}
}
