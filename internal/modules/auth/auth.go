package auth

import (
	"context"

	"flipkartmini.com/app/internal/api"
)

// User is the backend's user record as returned by the auth endpoints.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// Session is a bearer token plus the user it belongs to. It is held
// client-side after login/signup; no expiry or refresh is tracked here.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Service struct {
	api *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a session. Credential verification is
// entirely the backend's job; a failed login surfaces as an api.Error.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	var sess Session
	err := s.api.Post(ctx, "/auth/login", loginBody{Email: email, Password: password}, &sess, "")
	if err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *Service) Signup(ctx context.Context, name, email, password string) (Session, error) {
	var sess Session
	err := s.api.Post(ctx, "/auth/signup", signupBody{Name: name, Email: email, Password: password}, &sess, "")
	if err != nil {
		return Session{}, err
	}
	return sess, nil
}
