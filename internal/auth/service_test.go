package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/invicta-fest/festival-backend/config"
)

func TestGenerateTokenCarriesIdentityClaims(t *testing.T) {
	svc := NewService(nil, &config.Config{JWTSecret: "sekrit", JWTTTLHours: 2})

	signed, err := svc.GenerateToken(&Admin{ID: 7, Role: RoleSuperAdmin})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	token, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte("sekrit"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("parse token: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if id, _ := claims["admin_id"].(float64); uint(id) != 7 {
		t.Errorf("admin_id claim = %v", claims["admin_id"])
	}
	if claims["role"] != RoleSuperAdmin {
		t.Errorf("role claim = %v", claims["role"])
	}

	exp, _ := claims["exp"].(float64)
	iat, _ := claims["iat"].(float64)
	if got := time.Duration(exp-iat) * time.Second; got != 2*time.Hour {
		t.Errorf("token lifetime = %v, want 2h", got)
	}
}

func TestCreateAdminRejectsUnknownRole(t *testing.T) {
	svc := NewService(nil, &config.Config{JWTSecret: "sekrit", JWTTTLHours: 1})

	_, err := svc.CreateAdmin(CreateAdminRequest{
		Name:     "x",
		Email:    "x@example.com",
		Password: "pass",
		Role:     "moderator",
	})
	if !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("err = %v, want ErrInvalidRole", err)
	}
}

func TestDeleteAdminRejectsSelfDelete(t *testing.T) {
	svc := NewService(nil, &config.Config{JWTSecret: "sekrit", JWTTTLHours: 1})

	if err := svc.DeleteAdmin(3, 3); err == nil {
		t.Fatal("expected error when deleting own account")
	}
}
