package handler

import (
	"net/http"

	"arfilla-backend/internal/domain"
	"arfilla-backend/internal/repository"
	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"
)

type AdminHandler struct {
	Repo repository.AdminRepository
}

func (h AdminHandler) RegisterRoutes(r chi.Router) {
	r.Get("/admin", h.list)
	r.Get("/admin/{id}", h.get)
	r.Post("/admin", h.create)
	r.Put("/admin/{id}", h.update)
	r.Delete("/admin/{id}", h.delete)
}

type adminPayload struct {
	Nama     string `json:"nama"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func hashPassword(plain string) (*string, error) {
	if plain == "" {
		return nil, nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	s := string(hashed)
	return &s, nil
}

func (h AdminHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context(), 100)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, a := range items {
		resp = append(resp, adminJSON(a))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h AdminHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id tidak valid")
		return
	}
	a, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, adminJSON(*a))
}

func (h AdminHandler) create(w http.ResponseWriter, r *http.Request) {
	var req adminPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "permintaan tidak valid")
		return
	}
	if req.Nama == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "nama, email, dan password wajib diisi")
		return
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	a, err := h.Repo.Create(r.Context(), repository.CreateAdminParams{
		Nama:         req.Nama,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if repository.IsDuplicate(err) {
			writeError(w, http.StatusConflict, "email sudah terdaftar")
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, adminJSON(*a))
}

func (h AdminHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id tidak valid")
		return
	}
	var req adminPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "permintaan tidak valid")
		return
	}
	if req.Nama == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "nama dan email wajib diisi")
		return
	}

	// Empty password keeps the existing hash.
	hash, err := hashPassword(req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	a, err := h.Repo.Update(r.Context(), id, req.Nama, req.Email, hash)
	if err != nil {
		if repository.IsDuplicate(err) {
			writeError(w, http.StatusConflict, "email sudah terdaftar")
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, adminJSON(*a))
}

func (h AdminHandler) delete(w http.ResponseWriter, r *http.Request) {
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

func adminJSON(a domain.Admin) map[string]any {
	return map[string]any{
		"id":        a.ID,
		"nama":      a.Nama,
		"email":     a.Email,
		"createdAt": a.CreatedAt,
	}
}
