package handler

import (
	"net/http"

	"arfilla-backend/internal/domain"
	"arfilla-backend/internal/repository"
	"github.com/go-chi/chi/v5"
)

type LayananHandler struct {
	Repo repository.LayananRepository
}

func (h LayananHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/layanan", h.list)
	r.Get("/layanan/{id}", h.get)
}

func (h LayananHandler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/layanan", h.create)
	r.Put("/layanan/{id}", h.update)
	r.Delete("/layanan/{id}", h.delete)
}

type layananPayload struct {
	Nama      string `json:"nama"`
	Deskripsi string `json:"deskripsi"`
	HargaMin  *int64 `json:"hargaMin"`
	HargaMax  *int64 `json:"hargaMax"`
	Gambar    string `json:"gambar"`
}

func (p layananPayload) validate() string {
	if p.Nama == "" {
		return "nama layanan wajib diisi"
	}
	if p.HargaMin != nil && p.HargaMax != nil && *p.HargaMin > *p.HargaMax {
		return "hargaMin tidak boleh melebihi hargaMax"
	}
	return ""
}

func (h LayananHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context(), 200)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, l := range items {
		resp = append(resp, layananJSON(l))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h LayananHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id tidak valid")
		return
	}
	l, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, layananJSON(*l))
}

func (h LayananHandler) create(w http.ResponseWriter, r *http.Request) {
	var req layananPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "permintaan tidak valid")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	l, err := h.Repo.Create(r.Context(), repository.SaveLayananInput{
		Nama:      req.Nama,
		Deskripsi: req.Deskripsi,
		HargaMin:  req.HargaMin,
		HargaMax:  req.HargaMax,
		Gambar:    req.Gambar,
	})
	if err != nil {
		if repository.IsDuplicate(err) {
			writeError(w, http.StatusConflict, "layanan dengan nama tersebut sudah ada")
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, layananJSON(*l))
}

func (h LayananHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id tidak valid")
		return
	}
	var req layananPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "permintaan tidak valid")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	l, err := h.Repo.Update(r.Context(), id, repository.SaveLayananInput{
		Nama:      req.Nama,
		Deskripsi: req.Deskripsi,
		HargaMin:  req.HargaMin,
		HargaMax:  req.HargaMax,
		Gambar:    req.Gambar,
	})
	if err != nil {
		if repository.IsDuplicate(err) {
			writeError(w, http.StatusConflict, "layanan dengan nama tersebut sudah ada")
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, layananJSON(*l))
}

func (h LayananHandler) delete(w http.ResponseWriter, r *http.Request) {
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

func layananJSON(l domain.Layanan) map[string]any {
	return map[string]any{
		"id":        l.ID,
		"nama":      l.Nama,
		"deskripsi": l.Deskripsi,
		"hargaMin":  l.HargaMin,
		"hargaMax":  l.HargaMax,
		"gambar":    l.Gambar,
		"createdAt": l.CreatedAt,
		"updatedAt": l.UpdatedAt,
	}
}
