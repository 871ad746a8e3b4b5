package handler

import (
	"net/http"

	"arfilla-backend/internal/repository"
	"github.com/go-chi/chi/v5"
)

type DashboardHandler struct {
	Repo repository.DashboardRepository
}

func (h DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.summary)
}

func (h DashboardHandler) summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.Repo.Summary(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"pesananPerStatus":   s.PesananPerStatus,
		"totalPesanan":       s.TotalPesanan,
		"totalPengguna":      s.TotalPengguna,
		"pembayaranMenunggu": s.PembayaranMenunggu,
		"pendapatanSelesai":  s.PendapatanSelesai,
	})
}
