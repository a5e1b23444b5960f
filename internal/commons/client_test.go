package commons

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoginPostsFormCredentials(t *testing.T) {
	t.Parallel()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/token" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %q", got)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if got := r.PostFormValue("username"); got != "alice" {
			t.Errorf("username = %q, want %q", got, "alice")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-1","token_type":"bearer"}`))
	}))
	defer backend.Close()

	client, err := NewClient(backend.URL)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	token, err := client.Login(context.Background(), "alice", "hunter2")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token.AccessToken != "tok-1" {
		t.Fatalf("token.AccessToken = %q, want %q", token.AccessToken, "tok-1")
	}
}

func TestDoAttachesBearerTokenFromContext(t *testing.T) {
	t.Parallel()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-9" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer tok-9")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer backend.Close()

	client, err := NewClient(backend.URL)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	ctx := WithToken(context.Background(), "tok-9")
	if _, err := client.ListPolls(ctx, ListPollsInput{}); err != nil {
		t.Fatalf("ListPolls() error = %v", err)
	}
}

func TestDoNormalizesBackendErrors(t *testing.T) {
	t.Parallel()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"poll not found"}`))
	}))
	defer backend.Close()

	client, err := NewClient(backend.URL)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	_, err = client.GetPoll(context.Background(), "missing")
	if err == nil {
		t.Fatalf("expected error")
	}
	var apiErr APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T, want APIError", err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Fatalf("apiErr.Status = %d, want 404", apiErr.Status)
	}
	if apiErr.Message != "poll not found" {
		t.Fatalf("apiErr.Message = %q, want %q", apiErr.Message, "poll not found")
	}
}

func TestDoInvokesUnauthorizedHookOn401(t *testing.T) {
	t.Parallel()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"token expired"}`))
	}))
	defer backend.Close()

	hookCalled := false
	client, err := NewClient(backend.URL, WithUnauthorizedHook(func(context.Context) {
		hookCalled = true
	}))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	_, err = client.GetDelegation(context.Background())
	if !IsUnauthorized(err) {
		t.Fatalf("IsUnauthorized(err) = false, err = %v", err)
	}
	if !hookCalled {
		t.Fatalf("expected unauthorized hook to run")
	}
}

func TestDoReturnsContextErrorWhenCancelled(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(started)
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer backend.Close()
	defer close(release)

	client, err := NewClient(backend.URL)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()
	_, err = client.ListLabels(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestDoRecordsTelemetryPerCall(t *testing.T) {
	t.Parallel()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer backend.Close()

	recorder := NewRecorder()
	client, err := NewClient(backend.URL, WithRecorder(recorder))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if _, err := client.ListActivity(context.Background()); err != nil {
		t.Fatalf("ListActivity() error = %v", err)
	}
	records := recorder.Recent()
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if records[0].Method != http.MethodGet || records[0].Status != http.StatusOK {
		t.Fatalf("record = %+v", records[0])
	}
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	t.Parallel()

	if _, err := NewClient("   "); err == nil {
		t.Fatalf("expected error for blank base url")
	}
}
