package handler

import (
	"net/http"
	"strconv"

	"arfilla-backend/internal/domain"
	"arfilla-backend/internal/repository"
	"github.com/go-chi/chi/v5"
)

type ActivityLogHandler struct {
	Repo repository.ActivityLogRepository
}

func (h ActivityLogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/log", h.list)
}

func (h ActivityLogHandler) list(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 1000 {
			writeError(w, http.StatusBadRequest, "limit tidak valid")
			return
		}
		limit = parsed
	}

	var (
		items []domain.ActivityLog
		err   error
	)
	since, err := parseDateQuery(r, "since")
	if err != nil {
		writeError(w, http.StatusBadRequest, "format tanggal harus YYYY-MM-DD")
		return
	}
	if since != nil {
		items, err = h.Repo.ListSince(r.Context(), *since, limit)
	} else {
		items, err = h.Repo.List(r.Context(), limit)
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(items))
	for _, l := range items {
		resp = append(resp, map[string]any{
			"id":       l.ID,
			"title":    l.Title,
			"message":  l.Message,
			"actor":    l.Actor,
			"type":     string(l.Type),
			"loggedAt": l.LoggedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
