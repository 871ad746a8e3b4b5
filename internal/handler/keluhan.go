package handler

import (
	"net/http"

	"arfilla-backend/internal/domain"
	"arfilla-backend/internal/repository"
	"arfilla-backend/internal/server/authctx"
	"github.com/go-chi/chi/v5"
)

type KeluhanHandler struct {
	Repo    repository.KeluhanRepository
	Pesanan repository.PesananRepository
}

func (h KeluhanHandler) RegisterCustomerRoutes(r chi.Router) {
	r.Post("/keluhan", h.create)
}

func (h KeluhanHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/keluhan", h.list)
	r.Get("/keluhan/{id}", h.get)
	r.Patch("/keluhan/{id}/tanggapan", h.tanggapi)
	r.Delete("/keluhan/{id}", h.delete)
}

type keluhanPayload struct {
	PesananID *int64 `json:"pesananId"`
	Nama      string `json:"nama"`
	Isi       string `json:"isi"`
}

func (h KeluhanHandler) create(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req keluhanPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "permintaan tidak valid")
		return
	}
	if req.Isi == "" {
		writeError(w, http.StatusBadRequest, "isi keluhan wajib diisi")
		return
	}

	in := repository.CreateKeluhanInput{
		PesananID: req.PesananID,
		Nama:      req.Nama,
		Isi:       req.Isi,
	}
	if user.Role == domain.RolePengguna {
		id := user.ID
		in.PenggunaID = &id
		if in.Nama == "" {
			in.Nama = user.Nama
		}
		if req.PesananID != nil {
			p, err := h.Pesanan.Get(r.Context(), *req.PesananID)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			if p.PenggunaID == nil || *p.PenggunaID != user.ID {
				writeError(w, http.StatusForbidden, "akses ditolak")
				return
			}
		}
	}

	k, err := h.Repo.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, keluhanJSON(*k))
}

func (h KeluhanHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context(), 500)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, k := range items {
		resp = append(resp, keluhanJSON(k))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h KeluhanHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id tidak valid")
		return
	}
	k, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, keluhanJSON(*k))
}

type tanggapanPayload struct {
	Tanggapan string `json:"tanggapan"`
}

func (h KeluhanHandler) tanggapi(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id tidak valid")
		return
	}
	var req tanggapanPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "permintaan tidak valid")
		return
	}
	if req.Tanggapan == "" {
		writeError(w, http.StatusBadRequest, "tanggapan wajib diisi")
		return
	}

	k, err := h.Repo.Tanggapi(r.Context(), id, req.Tanggapan)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, keluhanJSON(*k))
}

func (h KeluhanHandler) delete(w http.ResponseWriter, r *http.Request) {
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

func keluhanJSON(k domain.Keluhan) map[string]any {
	return map[string]any{
		"id":         k.ID,
		"penggunaId": k.PenggunaID,
		"pesananId":  k.PesananID,
		"nama":       k.Nama,
		"isi":        k.Isi,
		"tanggapan":  k.Tanggapan,
		"createdAt":  k.CreatedAt,
	}
}
