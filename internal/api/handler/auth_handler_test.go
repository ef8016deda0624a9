package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/metasoft/restyle-platform/internal/core/domain"
	"github.com/metasoft/restyle-platform/internal/core/ports"
)

type stubAuthService struct {
	signUpInput ports.SignUpInput
	signUpUser  *domain.User
	signUpErr   error

	signInUser *domain.User
	signInErr  error
}

func (s *stubAuthService) SignUp(_ context.Context, input ports.SignUpInput) (*domain.User, error) {
	s.signUpInput = input
	if s.signUpErr != nil {
		return nil, s.signUpErr
	}
	return s.signUpUser, nil
}

func (s *stubAuthService) SignIn(_ context.Context, username, password string) (*domain.User, string, error) {
	if s.signInErr != nil {
		return nil, "", s.signInErr
	}
	return s.signInUser, "signed.jwt.token", nil
}

func newAuthRequest(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_SignUp_Created(t *testing.T) {
	svc := &stubAuthService{signUpUser: &domain.User{
		ID:       "abc123",
		Username: "alice",
		Roles:    []domain.Role{domain.RoleRemodeler},
	}}
	h := NewAuthHandler(svc)

	c, rec := newAuthRequest(`{"username":"alice","password":"pw","roles":["ROLE_REMODELER"],"email":"alice@example.com"}`)
	if err := h.SignUp(c); err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	if svc.signUpInput.Username != "alice" || svc.signUpInput.Email != "alice@example.com" {
		t.Fatalf("handler did not forward input: %+v", svc.signUpInput)
	}
	if len(svc.signUpInput.RoleTags) != 1 || svc.signUpInput.RoleTags[0] != "ROLE_REMODELER" {
		t.Fatalf("handler did not forward role tags: %+v", svc.signUpInput.RoleTags)
	}

	var body struct {
		ID       string   `json:"id"`
		Username string   `json:"username"`
		Roles    []string `json:"roles"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.ID != "abc123" || body.Username != "alice" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if len(body.Roles) != 1 || body.Roles[0] != "ROLE_REMODELER" {
		t.Fatalf("unexpected roles in body: %v", body.Roles)
	}
	if strings.Contains(rec.Body.String(), "pw") {
		t.Fatalf("response must not echo the password")
	}
}

func TestAuthHandler_SignUp_DomainErrorPropagates(t *testing.T) {
	svc := &stubAuthService{signUpErr: domain.ErrDuplicateUsername}
	h := NewAuthHandler(svc)

	c, _ := newAuthRequest(`{"username":"alice","password":"pw"}`)
	err := h.SignUp(c)
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername to propagate, got %v", err)
	}
}

func TestAuthHandler_SignUp_ValidationRejected(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	for _, body := range []string{
		`{"password":"pw"}`,
		`{"username":"alice"}`,
		`{"username":"alice","password":"pw","email":"not-an-email"}`,
	} {
		c, _ := newAuthRequest(body)
		err := h.SignUp(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %v", body, err)
		}
	}
}

func TestAuthHandler_SignIn_OK(t *testing.T) {
	svc := &stubAuthService{signInUser: &domain.User{ID: "abc123", Username: "alice"}}
	h := NewAuthHandler(svc)

	c, rec := newAuthRequest(`{"username":"alice","password":"pw"}`)
	if err := h.SignIn(c); err != nil {
		t.Fatalf("SignIn returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Token    string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Token != "signed.jwt.token" || body.Username != "alice" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAuthHandler_SignIn_FailurePropagates(t *testing.T) {
	for _, sentinel := range []error{domain.ErrUserNotFound, domain.ErrInvalidCredentials} {
		h := NewAuthHandler(&stubAuthService{signInErr: sentinel})
		c, _ := newAuthRequest(`{"username":"ghost","password":"pw"}`)
		if err := h.SignIn(c); !errors.Is(err, sentinel) {
			t.Fatalf("expected %v to propagate, got %v", sentinel, err)
		}
	}
}
