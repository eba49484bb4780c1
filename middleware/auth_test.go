package middleware

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
)

func TestExtractUserID(t *testing.T) {
	// JSON numbers decode as float64
	id, err := extractUserID(jwt.MapClaims{"id": float64(42)})
	if err != nil || id != 42 {
		t.Fatalf("expected 42, got %d err %v", id, err)
	}

	id, err = extractUserID(jwt.MapClaims{"id": "7"})
	if err != nil || id != 7 {
		t.Fatalf("expected 7, got %d err %v", id, err)
	}

	if _, err := extractUserID(jwt.MapClaims{"id": "abc"}); err == nil {
		t.Fatalf("expected non-numeric string to error")
	}
	if _, err := extractUserID(jwt.MapClaims{}); err == nil {
		t.Fatalf("expected missing id to error")
	}
}

func TestExtractRole(t *testing.T) {
	role, err := extractRole(jwt.MapClaims{"role": "caregiver"})
	if err != nil || role != "caregiver" {
		t.Fatalf("expected caregiver, got %s err %v", role, err)
	}

	if _, err := extractRole(jwt.MapClaims{}); err == nil {
		t.Fatalf("expected missing role to error")
	}
	if _, err := extractRole(jwt.MapClaims{"role": 5}); err == nil {
		t.Fatalf("expected non-string role to error")
	}
}
