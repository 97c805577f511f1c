package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kamilprz/activitylog/internal/models"
)

// fakeAuthService implements AuthService for testing.
type fakeAuthService struct {
	registerID  string
	registerErr error
	loginToken  string
	loginUserID string
	loginErr    error
}

func (f *fakeAuthService) Register(ctx context.Context, username, password string) (string, error) {
	return f.registerID, f.registerErr
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (string, string, error) {
	return f.loginToken, f.loginUserID, f.loginErr
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		service        *fakeAuthService
		expectedCode   int
		expectedSubstr string
	}{
		{
			name:           "invalid JSON",
			body:           `not a json`,
			service:        &fakeAuthService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid request",
		},
		{
			name:           "empty username",
			body:           `{"username":"","password":"pw"}`,
			service:        &fakeAuthService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid request",
		},
		{
			name:           "empty password",
			body:           `{"username":"alice","password":""}`,
			service:        &fakeAuthService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid request",
		},
		{
			name:           "username taken",
			body:           `{"username":"alice","password":"pw"}`,
			service:        &fakeAuthService{registerErr: models.ErrUsernameTaken},
			expectedCode:   http.StatusConflict,
			expectedSubstr: "Username taken.",
		},
		{
			name:           "storage failure",
			body:           `{"username":"alice","password":"pw"}`,
			service:        &fakeAuthService{registerErr: errors.New("db error")},
			expectedCode:   http.StatusInternalServerError,
			expectedSubstr: "internal error",
		},
		{
			name:           "success",
			body:           `{"username":"alice","password":"pw"}`,
			service:        &fakeAuthService{registerID: "user-1"},
			expectedCode:   http.StatusCreated,
			expectedSubstr: `"userId":"user-1"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/users/register", bytes.NewBufferString(tt.body))
			h := &AuthHandler{AuthService: tt.service}
			h.Register(rec, req)
			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, res.StatusCode)
			}

			buf := new(bytes.Buffer)
			if _, err := buf.ReadFrom(res.Body); err != nil {
				t.Fatalf("failed to read body: %v", err)
			}
			if !bytes.Contains(buf.Bytes(), []byte(tt.expectedSubstr)) {
				t.Errorf("expected body to contain %q, got %q", tt.expectedSubstr, buf.String())
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		service        *fakeAuthService
		expectedCode   int
		expectedSubstr string
	}{
		{
			name:           "invalid JSON",
			body:           `not a json`,
			service:        &fakeAuthService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid request",
		},
		{
			name:           "bad credentials",
			body:           `{"username":"alice","password":"wrong"}`,
			service:        &fakeAuthService{loginErr: models.ErrAuthenticationFailed},
			expectedCode:   http.StatusUnauthorized,
			expectedSubstr: "Authentication failed.",
		},
		{
			name:           "unknown user gets the same message",
			body:           `{"username":"ghost","password":"pw"}`,
			service:        &fakeAuthService{loginErr: models.ErrAuthenticationFailed},
			expectedCode:   http.StatusUnauthorized,
			expectedSubstr: "Authentication failed.",
		},
		{
			name:           "storage failure",
			body:           `{"username":"alice","password":"pw"}`,
			service:        &fakeAuthService{loginErr: errors.New("db error")},
			expectedCode:   http.StatusInternalServerError,
			expectedSubstr: "internal error",
		},
		{
			name:           "success",
			body:           `{"username":"alice","password":"pw"}`,
			service:        &fakeAuthService{loginToken: "tok", loginUserID: "user-1"},
			expectedCode:   http.StatusCreated,
			expectedSubstr: "Authentication successful.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/users/login", bytes.NewBufferString(tt.body))
			h := &AuthHandler{AuthService: tt.service}
			h.Login(rec, req)
			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, res.StatusCode)
			}

			buf := new(bytes.Buffer)
			if _, err := buf.ReadFrom(res.Body); err != nil {
				t.Fatalf("failed to read body: %v", err)
			}
			if !bytes.Contains(buf.Bytes(), []byte(tt.expectedSubstr)) {
				t.Errorf("expected body to contain %q, got %q", tt.expectedSubstr, buf.String())
			}
		})
	}
}

func TestAuthHandler_LoginSuccessPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/users/login", bytes.NewBufferString(`{"username":"alice","password":"pw"}`))
	h := &AuthHandler{AuthService: &fakeAuthService{loginToken: "tok", loginUserID: "user-1"}}
	h.Login(rec, req)

	var payload map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if payload["token"] != "tok" || payload["userId"] != "user-1" {
		t.Errorf("unexpected payload: %+v", payload)
	}
}
