package helpers

import (
	"errors"
	"testing"
	"time"

	"coursehub/internal/domain/entity"
)

func testUser() *entity.User {
	return &entity.User{
		ID:     "u-1",
		Email:  "jane@example.com",
		Role:   entity.RoleInstructor,
		Status: entity.UserActive,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)

	token, exp, err := m.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if time.Until(exp) > 15*time.Minute {
		t.Errorf("expiry %v beyond TTL", exp)
	}

	claims, err := m.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if claims.UserID != "u-1" || claims.Email != "jane@example.com" || claims.Role != entity.RoleInstructor {
		t.Errorf("claims = %+v", claims)
	}
}

func TestAccessAndRefreshSecretsAreSeparate(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)

	refresh, _, err := m.GenerateRefreshToken(testUser())
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	// a refresh token must not pass as an access token
	if _, err := m.ParseAccessToken(refresh); err == nil {
		t.Error("refresh token accepted as access token")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", -time.Minute, 7*24*time.Hour)

	token, _, err := m.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	_, err = m.ParseAccessToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("err = %v, want ErrTokenExpired", err)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	issuer := NewJWTManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	verifier := NewJWTManager("different-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)

	token, _, err := issuer.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, err := verifier.ParseAccessToken(token); err == nil {
		t.Error("token signed with another secret accepted")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	if _, err := m.ParseAccessToken("not.a.jwt"); err == nil {
		t.Error("malformed token accepted")
	}
}
