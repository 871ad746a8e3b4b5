package handler

import (
	"net/http"

	"arfilla-backend/internal/domain"
	"arfilla-backend/internal/server/authctx"
	"arfilla-backend/internal/service"
	"github.com/go-chi/chi/v5"
)

type PesananHandler struct {
	Service service.PesananService
}

func (h PesananHandler) RegisterCustomerRoutes(r chi.Router) {
	r.Get("/pesanan", h.list)
	r.Post("/pesanan", h.create)
	r.Get("/pesanan/{id}", h.get)
}

func (h PesananHandler) RegisterAdminRoutes(r chi.Router) {
	r.Put("/pesanan/{id}", h.update)
	r.Patch("/pesanan/{id}/status", h.setStatus)
	r.Post("/pesanan/{id}/lanjut", h.advance)
	r.Delete("/pesanan/{id}", h.delete)
}

type pesananPayload struct {
	NamaPemesan     string  `json:"namaPemesan"`
	LayananID       *int64  `json:"layananId"`
	HargaDisepakati *int64  `json:"hargaDisepakati"`
	Phone           string  `json:"phone"`
	Status          string  `json:"status"`
	Lokasi          *string `json:"lokasi"`
	Catatan         *string `json:"catatan"`
}

func (h PesananHandler) list(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var (
		items []domain.Pesanan
		err   error
	)
	if user.Role == domain.RoleAdmin {
		items, err = h.Service.List(r.Context(), 500)
	} else {
		items, err = h.Service.ListByPengguna(r.Context(), user.ID, 200)
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(items))
	for _, p := range items {
		resp = append(resp, pesananJSON(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h PesananHandler) create(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req pesananPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "permintaan tidak valid")
		return
	}

	in := service.CreatePesananInput{
		NamaPemesan: req.NamaPemesan,
		LayananID:   req.LayananID,
		Phone:       req.Phone,
		Lokasi:      req.Lokasi,
		Catatan:     req.Catatan,
	}
	if user.Role == domain.RolePengguna {
		// Customers always order for themselves.
		id := user.ID
		in.PenggunaID = &id
		if in.NamaPemesan == "" {
			in.NamaPemesan = user.Nama
		}
	}

	p, err := h.Service.Create(r.Context(), in, user.Nama)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pesananJSON(*p))
}

func (h PesananHandler) get(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id tidak valid")
		return
	}

	p, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if user.Role != domain.RoleAdmin && (p.PenggunaID == nil || *p.PenggunaID != user.ID) {
		writeError(w, http.StatusForbidden, "akses ditolak")
		return
	}
	writeJSON(w, http.StatusOK, pesananJSON(*p))
}

func (h PesananHandler) update(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id tidak valid")
		return
	}

	var req pesananPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "permintaan tidak valid")
		return
	}

	p, err := h.Service.Update(r.Context(), id, service.UpdatePesananInput{
		NamaPemesan:     req.NamaPemesan,
		LayananID:       req.LayananID,
		HargaDisepakati: req.HargaDisepakati,
		Phone:           req.Phone,
		Status:          domain.OrderStatus(req.Status),
		Lokasi:          req.Lokasi,
		Catatan:         req.Catatan,
	}, actorName(user))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pesananJSON(*p))
}

type statusPayload struct {
	Status string `json:"status"`
}

func (h PesananHandler) setStatus(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id tidak valid")
		return
	}
	var req statusPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "permintaan tidak valid")
		return
	}

	p, err := h.Service.SetStatus(r.Context(), id, domain.OrderStatus(req.Status), actorName(user))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pesananJSON(*p))
}

func (h PesananHandler) advance(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id tidak valid")
		return
	}

	result, err := h.Service.Advance(r.Context(), id, actorName(user))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := map[string]any{
		"advanced": result.Advanced,
		"pesanan":  pesananJSON(*result.Pesanan),
	}
	if result.Notice != "" {
		resp["notice"] = result.Notice
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h PesananHandler) delete(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id tidak valid")
		return
	}
	if err := h.Service.Delete(r.Context(), id, actorName(user)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

func actorName(user *authctx.CurrentUser) string {
	if user == nil {
		return "system"
	}
	return user.Nama
}

func pesananJSON(p domain.Pesanan) map[string]any {
	progres := make([]map[string]any, 0, len(p.Progres))
	for _, pr := range p.Progres {
		progres = append(progres, progresJSON(pr))
	}
	pembayaran := make([]map[string]any, 0, len(p.Pembayaran))
	for _, b := range p.Pembayaran {
		pembayaran = append(pembayaran, pembayaranJSON(b))
	}
	return map[string]any{
		"id":              p.ID,
		"penggunaId":      p.PenggunaID,
		"namaPemesan":     p.NamaPemesan,
		"layananId":       p.LayananID,
		"namaLayanan":     p.NamaLayanan,
		"hargaDisepakati": p.HargaDisepakati,
		"tanggalPesan":    p.TanggalPesan,
		"phone":           p.Phone,
		"status":          string(p.Status),
		"statusLabel":     p.Status.Label(),
		"lokasi":          p.Lokasi,
		"catatan":         p.Catatan,
		"progres":         progres,
		"pembayaran":      pembayaran,
		"createdAt":       p.CreatedAt,
		"updatedAt":       p.UpdatedAt,
	}
}
