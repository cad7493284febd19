package services

import (
	"testing"
	"time"

	"biztrack/constants"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")

	token, err := GenerateToken(UserInfo{UserId: 42, Role: constants.RoleAdmin}, 60)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	userID, role, err := GetUserIDFromToken(token)
	if err != nil {
		t.Fatalf("GetUserIDFromToken: %v", err)
	}
	if userID != 42 {
		t.Errorf("userID = %d, want 42", userID)
	}
	if role != constants.RoleAdmin {
		t.Errorf("role = %q, want %q", role, constants.RoleAdmin)
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")

	token, err := GenerateToken(UserInfo{UserId: 1, Role: constants.RoleUser}, -1)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseToken(token); err == nil {
		t.Error("expired token must be rejected")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")
	token, err := GenerateToken(UserInfo{UserId: 1, Role: constants.RoleUser}, 60)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "other-secret")
	if _, err := ParseToken(token); err == nil {
		t.Error("token signed with another secret must be rejected")
	}
}

func TestTokenRemainingTTL(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")

	token, err := GenerateToken(UserInfo{UserId: 1, Role: constants.RoleUser}, 60)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	ttl := TokenRemainingTTL(claims)
	if ttl <= 0 || ttl > time.Hour {
		t.Errorf("ttl = %v, want within (0, 1h]", ttl)
	}

	claims.ExpiresAt = time.Now().Add(-time.Minute).Unix()
	if got := TokenRemainingTTL(claims); got != 0 {
		t.Errorf("expired ttl = %v, want 0", got)
	}
}
