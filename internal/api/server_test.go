package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/matzehuels/floorplan/pkg/buildinfo"
	"github.com/matzehuels/floorplan/pkg/cache"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/pipeline"
	"github.com/matzehuels/floorplan/pkg/tilemap"
)

const flat = `{
  "width": 40,
  "height": 40,
  "rooms": [
    {"id": "hall", "type": "hallway", "connections": ["kitchen", "bed"]},
    {"id": "kitchen", "type": "kitchen", "furniture": ["table", "chair"]},
    {"id": "bed", "type": "bedroom", "furniture": ["bed"]}
  ]
}`

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	return New(pipeline.NewRunner(c, nil, nil), Config{}).Handler()
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body
}

func TestHealth(t *testing.T) {
	rec := do(newTestServer(t), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if _, err := uuid.Parse(rec.Header().Get(HeaderRequestID)); err != nil {
		t.Errorf("X-Request-ID = %q, want a UUID", rec.Header().Get(HeaderRequestID))
	}
	var body healthBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "ok" || body.Build != buildinfo.Get() {
		t.Errorf("health = %+v, want ok with build %+v", body, buildinfo.Get())
	}
}

func TestRequestIDReused(t *testing.T) {
	h := newTestServer(t)
	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(HeaderRequestID, id)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get(HeaderRequestID); got != id {
		t.Errorf("X-Request-ID = %q, want %q", got, id)
	}

	req.Header.Set(HeaderRequestID, "not-a-uuid")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get(HeaderRequestID); got == "not-a-uuid" {
		t.Error("malformed request ID should be replaced")
	}
}

func TestGenerate(t *testing.T) {
	h := newTestServer(t)
	rec := do(h, http.MethodPost, "/v1/generate?style=structured&seed=3", flat)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if got := rec.Header().Get("X-Cache"); got != "miss" {
		t.Errorf("X-Cache = %q, want miss", got)
	}

	m, err := tilemap.Read(rec.Body)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if m.Width != 40 || m.Height != 40 || m.Seed != 3 {
		t.Errorf("map = %dx%d seed %d, want 40x40 seed 3", m.Width, m.Height, m.Seed)
	}
	if len(m.Rooms) != 3 {
		t.Errorf("rooms = %d, want 3", len(m.Rooms))
	}

	again := do(h, http.MethodPost, "/v1/generate?style=structured&seed=3", flat)
	if got := again.Header().Get("X-Cache"); got != "hit" {
		t.Errorf("second X-Cache = %q, want hit", got)
	}
}

func TestGenerateFormats(t *testing.T) {
	h := newTestServer(t)
	tests := []struct {
		format string
		ct     string
		prefix []byte
	}{
		{"txt", "text/plain; charset=utf-8", []byte("#")},
		{"png", "image/png", []byte("\x89PNG")},
	}
	for _, tt := range tests {
		rec := do(h, http.MethodPost, "/v1/generate?format="+tt.format, flat)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d: %s", tt.format, rec.Code, rec.Body)
		}
		if ct := rec.Header().Get("Content-Type"); ct != tt.ct {
			t.Errorf("%s: Content-Type = %q, want %q", tt.format, ct, tt.ct)
		}
		if !bytes.Contains(rec.Body.Bytes(), tt.prefix) {
			t.Errorf("%s: body lacks %q", tt.format, tt.prefix)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	h := newTestServer(t)
	tests := []struct {
		name   string
		target string
		body   string
		status int
		code   errors.Code
	}{
		{"malformed json", "/v1/generate", `{"width":`, 400, errors.ErrCodeInvalidInput},
		{"unknown connection", "/v1/generate", `{"width":40,"height":40,"rooms":[{"id":"a","type":"room","connections":["x"]}]}`, 400, errors.ErrCodeUnknownConnection},
		{"duplicate room", "/v1/generate", `{"width":40,"height":40,"rooms":[{"id":"a","type":"room"},{"id":"a","type":"room"}]}`, 400, errors.ErrCodeDuplicateRoom},
		{"canvas", "/v1/generate", `{"width":100,"height":40,"rooms":[{"id":"a","type":"room"}]}`, 400, errors.ErrCodeInvalidCanvas},
		{"style", "/v1/generate?style=gothic", flat, 400, errors.ErrCodeInvalidStyle},
		{"seed", "/v1/generate?seed=-1", flat, 400, errors.ErrCodeInvalidInput},
		{"format", "/v1/generate?format=gif", flat, 400, errors.ErrCodeInvalidFormat},
		{"mirror", "/v1/generate?mirror=maybe", flat, 400, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		rec := do(h, http.MethodPost, tt.target, tt.body)
		if rec.Code != tt.status {
			t.Errorf("%s: status = %d, want %d", tt.name, rec.Code, tt.status)
			continue
		}
		body := decodeError(t, rec)
		if body.Code != tt.code {
			t.Errorf("%s: code = %s, want %s", tt.name, body.Code, tt.code)
		}
		if body.Message == "" || body.RequestID == "" {
			t.Errorf("%s: body = %+v, want message and request_id", tt.name, body)
		}
	}
}

func TestValidate(t *testing.T) {
	h := newTestServer(t)
	rec := do(h, http.MethodPost, "/v1/validate", flat)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}
	var body validateBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := validateBody{Valid: true, Width: 40, Height: 40, Rooms: 3, Connections: 2}
	if body != want {
		t.Errorf("body = %+v, want %+v", body, want)
	}

	rec = do(h, http.MethodPost, "/v1/validate", `{"width":40,"height":40,"rooms":[]}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty graph status = %d, want 400", rec.Code)
	}
}

func TestRouting(t *testing.T) {
	h := newTestServer(t)
	if rec := do(h, http.MethodGet, "/v1/nope", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown route status = %d, want 404", rec.Code)
	}
	rec := do(h, http.MethodGet, "/v1/generate", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /v1/generate status = %d, want 405", rec.Code)
	}
	if body := decodeError(t, rec); body.Code != errors.ErrCodeMethodNotAllowed {
		t.Errorf("code = %s, want %s", body.Code, errors.ErrCodeMethodNotAllowed)
	}
}
