package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestValidate(t *testing.T) {
	token := signToken(t, testSecret, Claims{
		Email: "gerente@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := Validate(testSecret, token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Email != "gerente@example.com" {
		t.Fatalf("unexpected email %q", claims.Email)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	token := signToken(t, testSecret, Claims{Email: "gerente@example.com"})
	if _, err := Validate("other-secret", token); err == nil {
		t.Fatalf("expected error for wrong secret")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, Claims{
		Email: "gerente@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	if _, err := Validate(testSecret, token); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestValidateGarbage(t *testing.T) {
	if _, err := Validate(testSecret, "not.a.token"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}
