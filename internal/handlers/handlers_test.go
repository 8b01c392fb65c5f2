package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-analyzer/internal/models"
	"resume-analyzer/internal/repositories"
	"resume-analyzer/internal/services"
)

type fakeUserRepo struct {
	users map[string]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User)}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	if _, ok := f.users[user.Email]; ok {
		return repositories.ErrDuplicateEmail
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.Email] = *user
	return nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return &user, nil
}

type fakeScoreRepo struct {
	records []models.ScoreRecord
	failing bool
}

func (f *fakeScoreRepo) Create(record *models.ScoreRecord) error {
	if f.failing {
		return errors.New("store down")
	}
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeScoreRepo) FindByUser(userID string) ([]models.ScoreRecord, error) {
	if f.failing {
		return nil, errors.New("store down")
	}
	var out []models.ScoreRecord
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].UserID == userID {
			out = append(out, f.records[i])
		}
	}
	return out, nil
}

// stubAnalyzer records the text it was asked to analyze.
type stubAnalyzer struct {
	lastText string
}

func (s *stubAnalyzer) Analyze(_ context.Context, resumeText string) (*models.ResumeAnalysis, *models.AnalysisFailure) {
	s.lastText = resumeText
	return &models.ResumeAnalysis{OverallAssessment: "stubbed"}, nil
}

type testEnv struct {
	app       *fiber.App
	userRepo  *fakeUserRepo
	scoreRepo *fakeScoreRepo
	analyzer  *stubAnalyzer
	uploadDir string
}

const testCookie = "session_token"

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	userRepo := newFakeUserRepo()
	scoreRepo := &fakeScoreRepo{}
	analyzer := &stubAnalyzer{}
	sessions := services.NewMemorySessionStore(time.Hour)

	uploadDir := t.TempDir()
	storage := services.NewStorageService(uploadDir)
	if err := storage.EnsureUploadDir(); err != nil {
		t.Fatalf("ensure upload dir: %v", err)
	}

	assessmentService := services.NewAssessmentService(services.DefaultAssessments(), scoreRepo)
	scoreService := services.NewScoreService(scoreRepo)

	app := fiber.New()
	api := app.Group("/api")
	guard := RequireSession(sessions, testCookie)
	RegisterRoutes(
		api,
		guard,
		NewAuthHandler(userRepo, sessions, testCookie, time.Hour),
		NewResumeHandler(storage, services.NewExtractorService(), analyzer, 16*1024*1024),
		NewAssessmentHandler(assessmentService),
		NewScoresHandler(scoreService),
	)

	return &testEnv{
		app:       app,
		userRepo:  userRepo,
		scoreRepo: scoreRepo,
		analyzer:  analyzer,
		uploadDir: uploadDir,
	}
}

func (e *testEnv) doJSON(t *testing.T, method, path string, body any, cookie string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: cookie})
	}

	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, target any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

// signup registers a user and returns the session token.
func (e *testEnv) signup(t *testing.T, email, password, name string) (string, models.UserPayload) {
	t.Helper()

	resp := e.doJSON(t, http.MethodPost, "/api/auth/signup", models.SignupRequest{
		Email:    email,
		Password: password,
		Name:     name,
	}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("signup status %d", resp.StatusCode)
	}

	var token string
	for _, c := range resp.Cookies() {
		if c.Name == testCookie {
			token = c.Value
		}
	}
	if token == "" {
		t.Fatalf("signup did not set a session cookie")
	}

	var body models.AuthResponse
	decodeBody(t, resp, &body)
	return token, body.User
}
