package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"draftdeck/internal/auth"
	"draftdeck/internal/domain"
	"draftdeck/internal/domain/services"
)

func newAuthFixture(t *testing.T) (*fakeUserRepo, services.AuthService, *auth.TokenIssuer) {
	t.Helper()
	users := &fakeUserRepo{}
	issuer, err := auth.NewTokenIssuer("test-secret", time.Hour, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	return users, NewAuthService(users, issuer, testLogger()), issuer
}

func TestRegisterIssuesVerifiableToken(t *testing.T) {
	users, svc, issuer := newAuthFixture(t)

	resp, err := svc.Register(context.Background(), &services.RegisterRequest{
		Email:    "ana@example.com",
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.TokenType != "bearer" {
		t.Errorf("token type = %q, want bearer", resp.TokenType)
	}

	userID, err := issuer.Verify(resp.AccessToken)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	stored, err := users.GetByID(context.Background(), userID)
	if err != nil {
		t.Fatalf("token subject is not a stored user: %v", err)
	}
	if stored.PasswordHash == "hunter2hunter2" {
		t.Error("password stored in plaintext")
	}
}

func TestRegisterValidation(t *testing.T) {
	_, svc, _ := newAuthFixture(t)

	tests := []struct {
		name string
		req  services.RegisterRequest
	}{
		{"missing email", services.RegisterRequest{Password: "hunter2hunter2"}},
		{"malformed email", services.RegisterRequest{Email: "not-an-email", Password: "hunter2hunter2"}},
		{"short password", services.RegisterRequest{Email: "a@example.com", Password: "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Register(context.Background(), &tt.req); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	_, svc, _ := newAuthFixture(t)

	req := &services.RegisterRequest{Email: "dup@example.com", Password: "hunter2hunter2"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register(context.Background(), req); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("second Register err = %v, want ErrConflict", err)
	}
}

func TestLogin(t *testing.T) {
	_, svc, issuer := newAuthFixture(t)

	if _, err := svc.Register(context.Background(), &services.RegisterRequest{
		Email:    "ana@example.com",
		Password: "hunter2hunter2",
	}); err != nil {
		t.Fatal(err)
	}

	resp, err := svc.Login(context.Background(), &services.LoginRequest{
		Email:    "ana@example.com",
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := issuer.Verify(resp.AccessToken); err != nil {
		t.Errorf("login token does not verify: %v", err)
	}

	// Wrong password and unknown account give the same answer.
	if _, err := svc.Login(context.Background(), &services.LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong-password",
	}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("wrong password err = %v, want ErrUnauthorized", err)
	}
	if _, err := svc.Login(context.Background(), &services.LoginRequest{
		Email:    "ghost@example.com",
		Password: "hunter2hunter2",
	}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("unknown account err = %v, want ErrUnauthorized", err)
	}
	if _, err := svc.Login(context.Background(), &services.LoginRequest{}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("empty credentials err = %v, want ErrValidation", err)
	}
}
