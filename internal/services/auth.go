package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yameogo/gestock/internal/api"
	"github.com/yameogo/gestock/internal/logging"
	"github.com/yameogo/gestock/internal/models"
)

// accessCookieName is the cookie carrying the short-lived access token.
const accessCookieName = "access"

// Credentials is the login payload. Authentication is scoped to one
// store: the same username may exist in several stores.
type Credentials struct {
	StoreName string `json:"store_name"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// RegisterForm creates a new operator account (activation happens via
// an emailed token).
type RegisterForm struct {
	FullName    string   `json:"fullname"`
	Email       string   `json:"email"`
	Permissions []string `json:"permissions,omitempty"`
}

// PasswordResetConfirm completes a password reset.
type PasswordResetConfirm struct {
	UID           string `json:"uid"`
	Token         string `json:"token"`
	NewPassword   string `json:"new_password"`
	ReNewPassword string `json:"re_new_password"`
}

// AuthService manages the session lifecycle. Credentials live in the
// client's cookie jar, never in this struct.
type AuthService struct {
	client *api.Client
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(deps Deps) *AuthService {
	return &AuthService{client: deps.Client, log: deps.logger()}
}

// Login exchanges credentials for a session cookie pair and returns the
// authenticated user.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (*models.User, error) {
	var user models.User
	if err := s.client.Post(ctx, "jwt/create/", creds, &user); err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	s.log.Info(ctx, "logged in", "username", user.Username, "store", user.Store.Name)
	return &user, nil
}

// Verify checks that the current access credential is still accepted.
func (s *AuthService) Verify(ctx context.Context) error {
	return s.client.Post(ctx, "jwt/verify/", nil, nil)
}

// Logout invalidates the session server-side.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.client.Post(ctx, "logout/", nil, nil)
}

// CurrentUser fetches the operator bound to the session.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.client.Get(ctx, "users/me/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates a new operator account on the backend.
func (s *AuthService) Register(ctx context.Context, form RegisterForm) error {
	return s.client.Post(ctx, "users/", form, nil)
}

// Activate confirms an account with the emailed uid/token pair.
func (s *AuthService) Activate(ctx context.Context, uid, token string) error {
	payload := map[string]string{"uid": uid, "token": token}
	return s.client.Post(ctx, "users/activation/", payload, nil)
}

// ResetPassword starts a password reset for the given store and email.
func (s *AuthService) ResetPassword(ctx context.Context, storeCode, email string) error {
	payload := map[string]string{"store_code": storeCode, "email": email}
	return s.client.Post(ctx, "users/reset_password/", payload, nil)
}

// ResetPasswordConfirm completes a password reset.
func (s *AuthService) ResetPasswordConfirm(ctx context.Context, form PasswordResetConfirm) error {
	return s.client.Post(ctx, "users/reset_password_confirm/", form, nil)
}

// SetStoreContext switches the session to another store.
func (s *AuthService) SetStoreContext(ctx context.Context, storeID int64) error {
	payload := map[string]int64{"store_id": storeID}
	return s.client.Post(ctx, "set-store-context/", payload, nil)
}

// SessionExpiry reads the expiry claim of the access cookie without
// verifying its signature (the server is the only verifier; the client
// just wants to display remaining session time). Returns false when no
// usable access cookie is present.
func (s *AuthService) SessionExpiry() (time.Time, bool) {
	ck, ok := s.client.Cookie(accessCookieName)
	if !ok {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(ck.Value, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
