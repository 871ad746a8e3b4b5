package handler

import (
	"net/http"

	"arfilla-backend/internal/domain"
	"arfilla-backend/internal/repository"
	"arfilla-backend/internal/server/authctx"
	"github.com/go-chi/chi/v5"
)

type NotifikasiHandler struct {
	Repo repository.NotificationRepository
}

func (h NotifikasiHandler) RegisterRoutes(r chi.Router) {
	r.Get("/notifikasi", h.list)
	r.Patch("/notifikasi/{id}/baca", h.markRead)
}

func (h NotifikasiHandler) list(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	items, err := h.Repo.List(r.Context(), user.ID, 100)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, n := range items {
		resp = append(resp, notifikasiJSON(n))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h NotifikasiHandler) markRead(w http.ResponseWriter, r *http.Request) {
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
	if err := h.Repo.MarkRead(r.Context(), user.ID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"read": true})
}

func notifikasiJSON(n domain.Notification) map[string]any {
	return map[string]any{
		"id":        n.ID,
		"title":     n.Title,
		"message":   n.Message,
		"type":      string(n.Type),
		"createdAt": n.CreatedAt,
		"readAt":    n.ReadAt,
	}
}
