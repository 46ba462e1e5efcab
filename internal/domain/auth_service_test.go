package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/Vovarama1992/vidbrief/internal/models"
)

type fakeUserRepo struct {
	nextID  int
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*models.User)}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error) {
	if _, ok := f.byEmail[email]; ok {
		return nil, ErrEmailTaken
	}
	f.nextID++
	u := &models.User{ID: f.nextID, Email: email, PasswordHash: passwordHash}
	f.byEmail[email] = u
	return u, nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func TestAuthRegisterLoginValidate(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "test-secret")
	ctx := context.Background()

	token, err := svc.Register(ctx, "user@example.com", "secret123")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if token == "" {
		t.Fatal("expected token")
	}

	id, err := svc.ValidateToken(ctx, token)
	if err != nil || id != 1 {
		t.Fatalf("ValidateToken: id=%d err=%v", id, err)
	}

	loginToken, err := svc.Login(ctx, "user@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if loginToken != token {
		t.Errorf("login token differs from register token")
	}
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "test-secret")
	ctx := context.Background()

	if _, err := svc.Register(ctx, "user@example.com", "secret123"); err != nil {
		t.Fatalf("first Register error: %v", err)
	}
	if _, err := svc.Register(ctx, "user@example.com", "another123"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("got %v, want ErrEmailTaken", err)
	}
}

func TestAuthRegisterValidation(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "test-secret")
	ctx := context.Background()

	if _, err := svc.Register(ctx, "not-an-email", "secret123"); err == nil {
		t.Error("expected error for invalid email")
	}
	if _, err := svc.Register(ctx, "user@example.com", "short"); err == nil {
		t.Error("expected error for short password")
	}
}

func TestAuthLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "test-secret")
	ctx := context.Background()

	if _, err := svc.Register(ctx, "user@example.com", "secret123"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if _, err := svc.Login(ctx, "user@example.com", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthTamperedToken(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "test-secret")
	ctx := context.Background()

	token, err := svc.Register(ctx, "user@example.com", "secret123")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	// другой userID с чужой подписью
	if _, err := svc.ValidateToken(ctx, "2"+token[1:]); err == nil {
		t.Error("expected error for tampered token")
	}
	if _, err := svc.ValidateToken(ctx, "garbage"); err == nil {
		t.Error("expected error for malformed token")
	}

	other := NewAuthService(newFakeUserRepo(), "other-secret")
	if _, err := other.ValidateToken(ctx, token); err == nil {
		t.Error("expected error for token signed with another secret")
	}
}
