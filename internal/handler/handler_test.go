package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Sugatraj/password-generator/internal/crypto"
	"github.com/Sugatraj/password-generator/internal/handler"
	"github.com/Sugatraj/password-generator/internal/model"
	"github.com/Sugatraj/password-generator/internal/profile"
	"github.com/Sugatraj/password-generator/internal/repository"
	"github.com/Sugatraj/password-generator/internal/service"
)

const testSecret = "test-secret"

type failingFetcher struct{}

func (failingFetcher) FetchUser(context.Context, string) (*profile.Profile, error) {
	return nil, errors.New("offline")
}

// newTestServer creates a full-stack httptest.Server with an in-memory session store.
func newTestServer(t *testing.T, burst int) *httptest.Server {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	footerSvc := service.NewFooterService(failingFetcher{}, "Sugatraj", service.DefaultLinks())
	footerSvc.Refresh(ctx)

	router := handler.NewRouter(ctx,
		handler.RouterConfig{SessionSecret: testSecret, RateLimitRPS: 0.01, RateLimitBurst: burst},
		handler.NewGeneratorHandler(service.NewGeneratorService(nil)),
		handler.NewSessionHandler(service.NewSessionService(
			repository.NewSessionRepository(time.Hour), nil, testSecret, time.Hour)),
		handler.NewFooterHandler(footerSvc),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doRequest(t *testing.T, method, url, token, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, reader)
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return v
}

func mustCreateSession(t *testing.T, srv *httptest.Server) model.SessionResponse {
	t.Helper()
	resp := doRequest(t, http.MethodPost, srv.URL+"/api/v1/sessions", "", "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create session status = %d, want 201", resp.StatusCode)
	}
	return decode[model.SessionResponse](t, resp)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, 10)
	resp := doRequest(t, http.MethodGet, srv.URL+"/health", "", "")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestGenerateEndpoint(t *testing.T) {
	srv := newTestServer(t, 10)

	tests := []struct {
		name       string
		body       string
		wantLength int
		alphabet   string
	}{
		{name: "empty body uses defaults", body: "", wantLength: 12, alphabet: crypto.Letters},
		{name: "all sets", body: `{"length":16,"include_digits":true,"include_symbols":true}`, wantLength: 16, alphabet: crypto.Letters + crypto.Digits + crypto.Symbols},
		{name: "digits only", body: `{"length":8,"include_digits":true}`, wantLength: 8, alphabet: crypto.Letters + crypto.Digits},
		{name: "clamped", body: `{"length":2}`, wantLength: 8, alphabet: crypto.Letters},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, http.MethodPost, srv.URL+"/api/v1/generate", "", tt.body)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want 200", resp.StatusCode)
			}
			got := decode[model.GenerateResponse](t, resp)
			if got.Length != tt.wantLength || len(got.Password) != tt.wantLength {
				t.Errorf("length = %d (%q), want %d", got.Length, got.Password, tt.wantLength)
			}
			for _, c := range got.Password {
				if !strings.ContainsRune(tt.alphabet, c) {
					t.Errorf("unexpected character %q", c)
				}
			}
		})
	}
}

func TestGenerateInvalidBody(t *testing.T) {
	srv := newTestServer(t, 10)
	resp := doRequest(t, http.MethodPost, srv.URL+"/api/v1/generate", "", "{bad")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGenerateBodyTooLarge(t *testing.T) {
	h := handler.NewGeneratorHandler(service.NewGeneratorService(nil))
	body := `{"length":12,"pad":"` + strings.Repeat("x", 2<<20) + `"}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleGenerate(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", rec.Code)
	}
}

func TestSessionLifecycle(t *testing.T) {
	srv := newTestServer(t, 10)
	created := mustCreateSession(t, srv)

	if created.Token == "" || len(created.Password) != 12 {
		t.Fatalf("unexpected create response: %+v", created)
	}

	got := decode[model.SessionResponse](t, doRequest(t, http.MethodGet, srv.URL+"/api/v1/session", created.Token, ""))
	if got.Password != created.Password {
		t.Errorf("GET password = %q, want %q", got.Password, created.Password)
	}

	resp := doRequest(t, http.MethodPatch, srv.URL+"/api/v1/session", created.Token, `{"length":16,"include_digits":true}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("PATCH status = %d, want 200", resp.StatusCode)
	}
	updated := decode[model.SessionResponse](t, resp)
	if !updated.Regenerated || len(updated.Password) != 16 {
		t.Errorf("PATCH response = %+v, want regenerated 16-char password", updated)
	}
	if strings.ContainsAny(updated.Password, crypto.Symbols) {
		t.Errorf("password %q contains symbols", updated.Password)
	}

	copied := decode[model.CopyResponse](t, doRequest(t, http.MethodPost, srv.URL+"/api/v1/session/copy", created.Token, ""))
	if copied.Password != updated.Password {
		t.Errorf("copy = %q, want %q", copied.Password, updated.Password)
	}

	after := decode[model.SessionResponse](t, doRequest(t, http.MethodGet, srv.URL+"/api/v1/session", created.Token, ""))
	if after.Password != updated.Password {
		t.Error("copy regenerated the password")
	}
}

func TestSessionRequiresToken(t *testing.T) {
	srv := newTestServer(t, 10)

	for _, token := range []string{"", "garbage"} {
		resp := doRequest(t, http.MethodGet, srv.URL+"/api/v1/session", token, "")
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("token %q: status = %d, want 401", token, resp.StatusCode)
		}
	}
}

func TestSessionUnknown(t *testing.T) {
	srv := newTestServer(t, 10)

	token, err := crypto.IssueSessionToken("00000000-0000-0000-0000-000000000000", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("IssueSessionToken() unexpected error: %v", err)
	}

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/v1/session", token, "")
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestSessionPatchInvalidBody(t *testing.T) {
	srv := newTestServer(t, 10)
	created := mustCreateSession(t, srv)

	resp := doRequest(t, http.MethodPatch, srv.URL+"/api/v1/session", created.Token, "")
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestFooterWithoutAvatar(t *testing.T) {
	srv := newTestServer(t, 10)

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/v1/footer", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	footer := decode[map[string]any](t, resp)

	if _, ok := footer["avatar_url"]; ok {
		t.Error("avatar_url present after failed profile fetch")
	}
	if footer["name"] != "Sugatraj" {
		t.Errorf("name = %v", footer["name"])
	}
}

func TestGenerateRateLimited(t *testing.T) {
	srv := newTestServer(t, 1)

	first := doRequest(t, http.MethodPost, srv.URL+"/api/v1/generate", "", "")
	first.Body.Close()
	second := doRequest(t, http.MethodPost, srv.URL+"/api/v1/generate", "", "")
	second.Body.Close()

	if first.StatusCode != http.StatusOK {
		t.Errorf("first status = %d, want 200", first.StatusCode)
	}
	if second.StatusCode != http.StatusTooManyRequests {
		t.Errorf("second status = %d, want 429", second.StatusCode)
	}
}
