package jwt

import (
	"testing"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	Init("unit-test-secret", 15, 168)

	token, err := GenerateAccessToken(42)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != 42 {
		t.Fatalf("want userID=42, got %d", claims.UserID)
	}
	if claims.Subject != "access_token" {
		t.Fatalf("want subject=access_token, got %s", claims.Subject)
	}
	if claims.TokenID != "" {
		t.Fatal("access token should not carry a token id")
	}
}

func TestRefreshTokenCarriesTokenID(t *testing.T) {
	Init("unit-test-secret", 15, 168)

	token, tokenID, err := GenerateRefreshToken(42)
	if err != nil {
		t.Fatal(err)
	}
	if tokenID == "" {
		t.Fatal("refresh token id must not be empty")
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Subject != "refresh_token" {
		t.Fatalf("want subject=refresh_token, got %s", claims.Subject)
	}
	if claims.TokenID != tokenID {
		t.Fatalf("token id mismatch: %s vs %s", claims.TokenID, tokenID)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	Init("secret-a", 15, 168)
	token, err := GenerateAccessToken(1)
	if err != nil {
		t.Fatal(err)
	}

	Init("secret-b", 15, 168)
	if _, err := ParseToken(token); err == nil {
		t.Fatal("token signed with another secret must be rejected")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	// 负有效期：签发出来的 Token 已经过期
	Init("unit-test-secret", -1, -1)
	token, err := GenerateAccessToken(1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken(token); err == nil {
		t.Fatal("expired token must be rejected")
	}
}
