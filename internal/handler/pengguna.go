package handler

import (
	"net/http"

	"arfilla-backend/internal/domain"
	"arfilla-backend/internal/repository"
	"github.com/go-chi/chi/v5"
)

type PenggunaHandler struct {
	Repo repository.PenggunaRepository
}

func (h PenggunaHandler) RegisterRoutes(r chi.Router) {
	r.Get("/pengguna", h.list)
	r.Get("/pengguna/{id}", h.get)
	r.Post("/pengguna", h.create)
	r.Put("/pengguna/{id}", h.update)
	r.Delete("/pengguna/{id}", h.delete)
}

type penggunaPayload struct {
	Nama   string `json:"nama"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Alamat string `json:"alamat"`
}

func (h PenggunaHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context(), 500)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, p := range items {
		resp = append(resp, penggunaJSON(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h PenggunaHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id tidak valid")
		return
	}
	p, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, penggunaJSON(*p))
}

func (h PenggunaHandler) create(w http.ResponseWriter, r *http.Request) {
	var req penggunaPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "permintaan tidak valid")
		return
	}
	if req.Nama == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "nama dan email wajib diisi")
		return
	}

	p, err := h.Repo.Create(r.Context(), repository.CreatePenggunaParams{
		Nama:   req.Nama,
		Email:  req.Email,
		Phone:  req.Phone,
		Alamat: req.Alamat,
	})
	if err != nil {
		if repository.IsDuplicate(err) {
			writeError(w, http.StatusConflict, "email sudah terdaftar")
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, penggunaJSON(*p))
}

func (h PenggunaHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id tidak valid")
		return
	}
	var req penggunaPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "permintaan tidak valid")
		return
	}

	current, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	current.Nama = req.Nama
	current.Email = req.Email
	current.Phone = req.Phone
	current.Alamat = req.Alamat

	p, err := h.Repo.Update(r.Context(), *current)
	if err != nil {
		if repository.IsDuplicate(err) {
			writeError(w, http.StatusConflict, "email sudah terdaftar")
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, penggunaJSON(*p))
}

func (h PenggunaHandler) delete(w http.ResponseWriter, r *http.Request) {
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

func penggunaJSON(p domain.Pengguna) map[string]any {
	return map[string]any{
		"id":        p.ID,
		"nama":      p.Nama,
		"email":     p.Email,
		"phone":     p.Phone,
		"alamat":    p.Alamat,
		"isGoogle":  p.IsGoogle,
		"createdAt": p.CreatedAt,
	}
}
