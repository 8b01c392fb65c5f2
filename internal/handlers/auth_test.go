package handlers

import (
	"net/http"
	"testing"

	"resume-analyzer/internal/models"
)

func TestSignupThenLoginSameUser(t *testing.T) {
	env := newTestEnv(t)

	_, created := env.signup(t, "Jane@Example.COM ", "hunter22", "Jane")
	if created.Email != "jane@example.com" {
		t.Fatalf("email not normalized: %q", created.Email)
	}

	resp := env.doJSON(t, http.MethodPost, "/api/auth/login", models.LoginRequest{
		Email:    "jane@example.com",
		Password: "hunter22",
	}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status %d", resp.StatusCode)
	}

	var body models.AuthResponse
	decodeBody(t, resp, &body)
	if body.User.ID != created.ID {
		t.Fatalf("login returned a different user id: %q vs %q", body.User.ID, created.ID)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "jane@example.com", "hunter22", "Jane")

	resp := env.doJSON(t, http.MethodPost, "/api/auth/signup", models.SignupRequest{
		Email:    "JANE@example.com",
		Password: "other",
		Name:     "Impostor",
	}, "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate email, got %d", resp.StatusCode)
	}
}

func TestSignupMissingFields(t *testing.T) {
	env := newTestEnv(t)

	resp := env.doJSON(t, http.MethodPost, "/api/auth/signup", models.SignupRequest{
		Email: "jane@example.com",
	}, "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", resp.StatusCode)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "jane@example.com", "hunter22", "Jane")

	tests := []models.LoginRequest{
		{Email: "jane@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: "hunter22"},
	}
	for _, req := range tests {
		resp := env.doJSON(t, http.MethodPost, "/api/auth/login", req, "")
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %q, got %d", req.Email, resp.StatusCode)
		}
	}
}

func TestCheckAuth(t *testing.T) {
	env := newTestEnv(t)
	token, user := env.signup(t, "jane@example.com", "hunter22", "Jane")

	resp := env.doJSON(t, http.MethodGet, "/api/auth/check", nil, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("check status %d", resp.StatusCode)
	}
	var body struct {
		Authenticated bool               `json:"authenticated"`
		User          models.UserPayload `json:"user"`
	}
	decodeBody(t, resp, &body)
	if !body.Authenticated || body.User.ID != user.ID {
		t.Fatalf("unexpected check payload: %+v", body)
	}

	resp = env.doJSON(t, http.MethodGet, "/api/auth/check", nil, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without cookie, got %d", resp.StatusCode)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.signup(t, "jane@example.com", "hunter22", "Jane")

	resp := env.doJSON(t, http.MethodPost, "/api/auth/logout", nil, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout status %d", resp.StatusCode)
	}

	resp = env.doJSON(t, http.MethodGet, "/api/assessments", nil, token)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", resp.StatusCode)
	}
}

func TestProtectedRoutesRejectWithoutSession(t *testing.T) {
	env := newTestEnv(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/user/scores"},
		{http.MethodGet, "/api/assessments"},
		{http.MethodGet, "/api/assessments/sql"},
		{http.MethodPost, "/api/assessments/sql/submit"},
		{http.MethodPost, "/api/upload-resume"},
	}

	for _, r := range routes {
		resp := env.doJSON(t, r.method, r.path, nil, "")
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", r.method, r.path, resp.StatusCode)
		}
		var body struct {
			Redirect string `json:"redirect"`
		}
		decodeBody(t, resp, &body)
		if body.Redirect != "/login" {
			t.Fatalf("%s %s: expected redirect hint, got %+v", r.method, r.path, body)
		}
	}

	if len(env.scoreRepo.records) != 0 {
		t.Fatalf("unauthenticated requests mutated state: %d records", len(env.scoreRepo.records))
	}
}
