package handler

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"arfilla-backend/internal/repository"
	"arfilla-backend/internal/service"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	return body
}

func TestWriteJSONEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, 200, map[string]any{"id": 7})

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	if body["success"] != true {
		t.Fatalf("success = %v, want true", body["success"])
	}
	if _, ok := body["error"]; ok {
		t.Fatal("error field must be omitted on success")
	}
}

func TestWriteErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, 404, "data tidak ditemukan")

	if rec.Code != 404 {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	if body["success"] != false {
		t.Fatalf("success = %v, want false", body["success"])
	}
	if body["error"] != "data tidak ditemukan" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestWriteServiceErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", repository.ErrNotFound, 404},
		{"conflict", service.ErrConflict, 409},
		{"forbidden", service.ErrForbidden, 403},
		{"unknown", errors.New("boom"), 500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, tc.err)
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestWriteServiceErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	writeServiceError(rec, errors.New(`failed to connect to host=db user=arfilla database=arfilla`))

	if rec.Code != 500 {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	msg, _ := body["error"].(string)
	if strings.Contains(msg, "user=arfilla") {
		t.Fatalf("driver detail leaked to caller: %q", msg)
	}
	if msg != "terjadi kesalahan pada server" {
		t.Fatalf("error = %q, want generic message", msg)
	}
}
