package jwt

import (
	"testing"
	"time"

	"hospital-erp/config"
)

func newTestService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	service := newTestService("test-secret")

	token, tokenID, err := service.GenerateAccessToken(42, "jdoe", "doctor")
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}
	if tokenID == "" {
		t.Fatal("token ID is empty")
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("user ID = %d, want 42", claims.UserID)
	}
	if claims.Username != "jdoe" {
		t.Errorf("username = %q, want jdoe", claims.Username)
	}
	if claims.Role != "doctor" {
		t.Errorf("role = %q, want doctor", claims.Role)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("token type = %q, want access", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Errorf("token ID = %q, want %q", claims.TokenID, tokenID)
	}
}

func TestRefreshTokenType(t *testing.T) {
	service := newTestService("test-secret")

	token, _, err := service.GenerateRefreshToken(7, "admin", "admin")
	if err != nil {
		t.Fatalf("GenerateRefreshToken returned error: %v", err)
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("token type = %q, want refresh", claims.TokenType)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	service := newTestService("test-secret")
	other := newTestService("different-secret")

	token, _, err := service.GenerateAccessToken(1, "jdoe", "nurse")
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("token signed with another secret validated successfully")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	service := newTestService("test-secret")

	if _, err := service.ValidateToken("not.a.token"); err == nil {
		t.Error("garbage token validated successfully")
	}
}
