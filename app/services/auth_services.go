package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ctrlz-wear/ctrlz-api/pkg/auth"
)

// ErrCredentialsRequired means email or password was empty.
var ErrCredentialsRequired = errors.New("email and password required")

// demoUserName is the display name attached to every demo login.
const demoUserName = "Z-User"

// UserView is the user object echoed back to the storefront after login.
type UserView struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResult is the login response payload.
type LoginResult struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

type AuthService struct{}

func NewAuthService() *AuthService {
	return &AuthService{}
}

// Login is placeholder authentication for the demo storefront: any non-empty
// email/password pair is accepted and exchanged for a signed demo token.
// There is no credential check and no user store.
func (s *AuthService) Login(email, password string) (LoginResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return LoginResult{}, ErrCredentialsRequired
	}

	token, err := auth.GenerateToken(email, demoUserName)
	if err != nil {
		return LoginResult{}, fmt.Errorf("auth: sign demo token: %w", err)
	}

	return LoginResult{
		Token: token,
		User:  UserView{Email: email, Name: demoUserName},
	}, nil
}
