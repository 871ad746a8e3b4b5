package handler

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// UploadHandler stores proof-of-transfer and documentation images on disk
// and serves them back under /uploads/.
type UploadHandler struct {
	Dir     string
	BaseURL string
}

func (h UploadHandler) RegisterRoutes(r chi.Router) {
	r.Post("/upload", h.upload)
}

func (h UploadHandler) RegisterStaticRoutes(r chi.Router) {
	fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.Dir)))
	r.Get("/uploads/*", func(w http.ResponseWriter, req *http.Request) {
		fs.ServeHTTP(w, req)
	})
}

func (h UploadHandler) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(6 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file wajib diunggah")
		return
	}
	defer file.Close()

	limited := io.LimitReader(file, 5<<20)
	data, err := io.ReadAll(limited)
	if err != nil || len(data) == 0 {
		writeError(w, http.StatusBadRequest, "file kosong")
		return
	}

	mime := header.Header.Get("Content-Type")
	if mime == "" {
		mime = http.DetectContentType(data)
	}
	mime = strings.ToLower(strings.TrimSpace(mime))
	if mime == "image/jpg" {
		mime = "image/jpeg"
	}
	ext, ok := map[string]string{
		"image/png":  ".png",
		"image/jpeg": ".jpg",
	}[mime]
	if !ok {
		writeError(w, http.StatusBadRequest, "format harus PNG/JPG")
		return
	}

	if err := os.MkdirAll(h.Dir, 0o755); err != nil {
		writeServiceError(w, err)
		return
	}
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	if err := os.WriteFile(filepath.Join(h.Dir, name), data, 0o644); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"filename": name,
		"url":      strings.TrimRight(h.BaseURL, "/") + "/uploads/" + name,
	})
}
