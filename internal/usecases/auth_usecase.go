package usecases

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthUsecase guards the admin surface. The single admin principal
// comes from startup config; no user store is kept.
type AuthUsecase struct {
	jwtSecret []byte
	username  string
	hash      []byte
}

func NewAuthUsecase(username, password, secret string) (*AuthUsecase, error) {
	if username == "" || password == "" || secret == "" {
		return nil, errors.New("admin credentials and JWT secret are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &AuthUsecase{
		jwtSecret: []byte(secret),
		username:  username,
		hash:      hash,
	}, nil
}

func (uc *AuthUsecase) Login(username, password string) (string, error) {
	if username != uc.username {
		return "", errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword(uc.hash, []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  username,
		"role": "admin",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString(uc.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %v", err)
	}
	return tokenString, nil
}
