package handler

import (
	"net/http"

	"arfilla-backend/internal/domain"
	"arfilla-backend/internal/repository"
	"github.com/go-chi/chi/v5"
)

type PortofolioHandler struct {
	Repo repository.PortofolioRepository
}

func (h PortofolioHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/portofolio", h.list)
	r.Get("/portofolio/{id}", h.get)
}

func (h PortofolioHandler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/portofolio", h.create)
	r.Put("/portofolio/{id}", h.update)
	r.Delete("/portofolio/{id}", h.delete)
}

type portofolioPayload struct {
	Judul     string `json:"judul"`
	Deskripsi string `json:"deskripsi"`
	Gambar    string `json:"gambar"`
	Lokasi    string `json:"lokasi"`
	Tahun     int    `json:"tahun"`
}

func (h PortofolioHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context(), 200)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, p := range items {
		resp = append(resp, portofolioJSON(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h PortofolioHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id tidak valid")
		return
	}
	p, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, portofolioJSON(*p))
}

func (h PortofolioHandler) create(w http.ResponseWriter, r *http.Request) {
	var req portofolioPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "permintaan tidak valid")
		return
	}
	if req.Judul == "" {
		writeError(w, http.StatusBadRequest, "judul wajib diisi")
		return
	}

	p, err := h.Repo.Create(r.Context(), repository.SavePortofolioInput{
		Judul:     req.Judul,
		Deskripsi: req.Deskripsi,
		Gambar:    req.Gambar,
		Lokasi:    req.Lokasi,
		Tahun:     req.Tahun,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, portofolioJSON(*p))
}

func (h PortofolioHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id tidak valid")
		return
	}
	var req portofolioPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "permintaan tidak valid")
		return
	}

	p, err := h.Repo.Update(r.Context(), id, repository.SavePortofolioInput{
		Judul:     req.Judul,
		Deskripsi: req.Deskripsi,
		Gambar:    req.Gambar,
		Lokasi:    req.Lokasi,
		Tahun:     req.Tahun,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, portofolioJSON(*p))
}

func (h PortofolioHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id tidak valid")
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

func portofolioJSON(p domain.Portofolio) map[string]any {
	return map[string]any{
		"id":        p.ID,
		"judul":     p.Judul,
		"deskripsi": p.Deskripsi,
		"gambar":    p.Gambar,
		"lokasi":    p.Lokasi,
		"tahun":     p.Tahun,
		"createdAt": p.CreatedAt,
	}
}
