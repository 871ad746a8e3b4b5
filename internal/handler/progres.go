package handler

import (
	"net/http"
	"strconv"

	"arfilla-backend/internal/domain"
	"arfilla-backend/internal/repository"
	"arfilla-backend/internal/server/authctx"
	"github.com/go-chi/chi/v5"
)

type ProgresHandler struct {
	Progres repository.ProgresRepository
	Pesanan repository.PesananRepository
}

func (h ProgresHandler) RegisterCustomerRoutes(r chi.Router) {
	r.Get("/progres", h.list)
}

func (h ProgresHandler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/progres", h.create)
	r.Get("/progres/{id}", h.get)
	r.Put("/progres/{id}", h.update)
	r.Delete("/progres/{id}", h.delete)
}

type progresPayload struct {
	PesananID     int64   `json:"pesananId"`
	Deskripsi     string  `json:"deskripsi"`
	PersenProgres int     `json:"persenProgres"`
	FotoDokumen   *string `json:"fotoDokumen"`
}

func validPersen(persen int) (bool, string) {
	if persen < 0 || persen > 100 {
		return false, "persenProgres harus berada di antara 0 dan 100"
	}
	return true, ""
}

func (h ProgresHandler) list(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	pesananID, err := strconv.ParseInt(r.URL.Query().Get("pesananId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "pesananId tidak valid")
		return
	}

	p, err := h.Pesanan.Get(r.Context(), pesananID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if user.Role != domain.RoleAdmin && (p.PenggunaID == nil || *p.PenggunaID != user.ID) {
		writeError(w, http.StatusForbidden, "akses ditolak")
		return
	}

	items, err := h.Progres.ListByPesanan(r.Context(), pesananID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, pr := range items {
		resp = append(resp, progresJSON(pr))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h ProgresHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id tidak valid")
		return
	}
	pr, err := h.Progres.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, progresJSON(*pr))
}

func (h ProgresHandler) create(w http.ResponseWriter, r *http.Request) {
	var req progresPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "permintaan tidak valid")
		return
	}
	if ok, msg := validPersen(req.PersenProgres); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if _, err := h.Pesanan.Get(r.Context(), req.PesananID); err != nil {
		writeServiceError(w, err)
		return
	}

	pr, err := h.Progres.Create(r.Context(), repository.SaveProgresInput{
		PesananID:     req.PesananID,
		Deskripsi:     req.Deskripsi,
		PersenProgres: req.PersenProgres,
		FotoDokumen:   req.FotoDokumen,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, progresJSON(*pr))
}

func (h ProgresHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id tidak valid")
		return
	}
	var req progresPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "permintaan tidak valid")
		return
	}
	if ok, msg := validPersen(req.PersenProgres); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	current, err := h.Progres.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	in := repository.SaveProgresInput{
		PesananID:     current.PesananID,
		Deskripsi:     req.Deskripsi,
		PersenProgres: req.PersenProgres,
		FotoDokumen:   req.FotoDokumen,
	}
	pr, err := h.Progres.Update(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, progresJSON(*pr))
}

func (h ProgresHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id tidak valid")
		return
	}
	if err := h.Progres.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

func progresJSON(pr domain.ProgresPesanan) map[string]any {
	return map[string]any{
		"id":            pr.ID,
		"pesananId":     pr.PesananID,
		"deskripsi":     pr.Deskripsi,
		"persenProgres": pr.PersenProgres,
		"fotoDokumen":   pr.FotoDokumen,
		"updatedAt":     pr.UpdatedAt,
		"createdAt":     pr.CreatedAt,
	}
}
