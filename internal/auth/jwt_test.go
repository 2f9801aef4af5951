package auth

import (
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager("um-segredo-de-teste-com-32-bytes!", time.Minute)

	token, err := manager.GenerateAccessToken("u1")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := manager.ParseAndValidate(token)
	if err != nil {
		t.Fatalf("ParseAndValidate: %v", err)
	}
	if claims.Subject != "u1" {
		t.Fatalf("subject = %q", claims.Subject)
	}
}

func TestJWTSegredoErrado(t *testing.T) {
	manager := NewJWTManager("um-segredo-de-teste-com-32-bytes!", time.Minute)
	outro := NewJWTManager("outro-segredo-de-teste-32-bytes!!", time.Minute)

	token, err := manager.GenerateAccessToken("u1")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := outro.ParseAndValidate(token); err == nil {
		t.Fatal("token com assinatura de outro segredo deveria ser rejeitado")
	}
}

func TestJWTExpirado(t *testing.T) {
	manager := NewJWTManager("um-segredo-de-teste-com-32-bytes!", -time.Minute)

	token, err := manager.GenerateAccessToken("u1")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := manager.ParseAndValidate(token); err == nil {
		t.Fatal("token expirado deveria ser rejeitado")
	}
}
