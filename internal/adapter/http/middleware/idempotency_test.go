package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type stubIdempotencyStore struct {
	cached   []byte
	exists   bool
	checkErr error

	checked []string
	updated map[string][]byte
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checked = append(s.checked, key)
	if s.checkErr != nil {
		return false, nil, s.checkErr
	}
	return s.exists, s.cached, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if s.updated == nil {
		s.updated = make(map[string][]byte)
	}
	s.updated[key] = response
	return nil
}

func okHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(body))
	})
}

func TestIdempotencyMiddleware_CachesSuccessfulResponse(t *testing.T) {
	store := &stubIdempotencyStore{}
	mw := NewIdempotencyMiddleware(store)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", nil)
	req.Header.Set(HeaderCorrelationID, "corr-1")
	rec := httptest.NewRecorder()

	mw.Wrap(okHandler(`{"status":"accepted"}`)).ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(store.checked) != 1 || store.checked[0] != "corr-1" {
		t.Fatalf("expected store checked with corr-1, got %v", store.checked)
	}
	if string(store.updated["corr-1"]) != `{"status":"accepted"}` {
		t.Fatalf("expected cached response, got %q", store.updated["corr-1"])
	}
}

func TestIdempotencyMiddleware_ReplaysCachedResponse(t *testing.T) {
	store := &stubIdempotencyStore{exists: true, cached: []byte(`{"status":"accepted"}`)}
	mw := NewIdempotencyMiddleware(store)

	handlerCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", nil)
	req.Header.Set(HeaderCorrelationID, "corr-1")
	rec := httptest.NewRecorder()

	mw.Wrap(next).ServeHTTP(rec, req)

	if handlerCalled {
		t.Fatal("expected handler to be skipped on replay")
	}
	if rec.Header().Get("X-Idempotency-Replay") != "true" {
		t.Fatal("expected replay header")
	}
	if rec.Body.String() != `{"status":"accepted"}` {
		t.Fatalf("expected cached body, got %s", rec.Body.String())
	}
}

func TestIdempotencyMiddleware_FallsThroughOnStoreError(t *testing.T) {
	store := &stubIdempotencyStore{checkErr: errors.New("redis down")}
	mw := NewIdempotencyMiddleware(store)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", nil)
	req.Header.Set(HeaderCorrelationID, "corr-1")
	rec := httptest.NewRecorder()

	mw.Wrap(okHandler("ok")).ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected handler to run despite store error, got %d", rec.Code)
	}
}

func TestIdempotencyMiddleware_SkipsWithoutCorrelationID(t *testing.T) {
	store := &stubIdempotencyStore{}
	mw := NewIdempotencyMiddleware(store)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", nil)
	rec := httptest.NewRecorder()

	mw.Wrap(okHandler("ok")).ServeHTTP(rec, req)

	if len(store.checked) != 0 {
		t.Fatalf("expected store untouched, got %v", store.checked)
	}
}

func TestIdempotencyMiddleware_SkipsReadRequests(t *testing.T) {
	store := &stubIdempotencyStore{}
	mw := NewIdempotencyMiddleware(store)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	req.Header.Set(HeaderCorrelationID, "corr-1")
	rec := httptest.NewRecorder()

	mw.Wrap(okHandler("ok")).ServeHTTP(rec, req)

	if len(store.checked) != 0 {
		t.Fatalf("expected store untouched for GET, got %v", store.checked)
	}
}
