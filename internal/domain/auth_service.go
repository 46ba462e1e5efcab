package domain

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/Vovarama1992/vidbrief/internal/ports"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	users  ports.UserRepository
	secret string
}

func NewAuthService(users ports.UserRepository, secret string) ports.AuthService {
	return &authService{
		users:  users,
		secret: secret,
	}
}

func (s *authService) Register(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", fmt.Errorf("invalid email")
	}
	if len(password) < 6 {
		return "", fmt.Errorf("password must be at least 6 characters")
	}

	existing, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user, err := s.users.CreateUser(ctx, email, string(hash))
	if err != nil {
		return "", err
	}

	return s.tokenFor(user.ID), nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokenFor(user.ID), nil
}

func (s *authService) ValidateToken(ctx context.Context, token string) (int, error) {
	idStr, sig, ok := strings.Cut(token, ":")
	if !ok {
		return 0, fmt.Errorf("malformed token")
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("malformed token")
	}

	if !hmac.Equal([]byte(sig), []byte(s.sign(idStr))) {
		return 0, fmt.Errorf("invalid token")
	}

	return id, nil
}

// tokenFor builds "<id>:<signature>" so validation needs no store lookup.
func (s *authService) tokenFor(userID int) string {
	idStr := strconv.Itoa(userID)
	return idStr + ":" + s.sign(idStr)
}

func (s *authService) sign(msg string) string {
	h := hmac.New(sha256.New, []byte(s.secret))
	h.Write([]byte(msg))
	return hex.EncodeToString(h.Sum(nil))
}
