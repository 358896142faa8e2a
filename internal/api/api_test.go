package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestTryAcquireRun(t *testing.T) {
	s := &Server{}

	if !s.tryAcquireRun() {
		t.Fatal("first acquire should succeed")
	}
	if s.tryAcquireRun() {
		t.Error("second acquire should fail while a run is in flight")
	}
	s.releaseRun()
	if !s.tryAcquireRun() {
		t.Error("acquire should succeed again after release")
	}
}

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	respondJSON(rec, http.StatusAccepted, map[string]string{"status": "started"})

	if rec.Code != http.StatusAccepted {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusAccepted)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "started" {
		t.Errorf("body = %v", body)
	}
}

func TestRequestLogger_CapturesStatus(t *testing.T) {
	var sawStatus int
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		if ww, ok := w.(*responseWriter); ok {
			sawStatus = ww.status
		}
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	requestLogger(inner).ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Errorf("recorded status = %d, want %d", rec.Code, http.StatusTeapot)
	}
	if sawStatus != http.StatusTeapot {
		t.Errorf("wrapper status = %d, want %d", sawStatus, http.StatusTeapot)
	}
}

func TestResponseWriter_WriteSetsDefaultStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	ww := &responseWriter{ResponseWriter: rec, status: http.StatusOK}

	if _, err := ww.Write([]byte("ok")); err != nil {
		t.Fatal(err)
	}
	if ww.status != http.StatusOK {
		t.Errorf("status = %d, want 200", ww.status)
	}

	// Later WriteHeader calls must not override the committed status.
	ww.WriteHeader(http.StatusInternalServerError)
	if ww.status != http.StatusOK {
		t.Errorf("status after late WriteHeader = %d, want 200", ww.status)
	}
}

func TestRespondError_Body(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/model/stats", nil)
	respondError(rec, req, http.StatusBadRequest, errTest("invalid limit"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid limit") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
