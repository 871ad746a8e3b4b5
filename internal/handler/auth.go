package handler

import (
	"net/http"

	"arfilla-backend/internal/server/authctx"
	"arfilla-backend/internal/service"
	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	Auth *service.AuthService
}

func (h AuthHandler) RegisterPublicRoutes(r chi.Router) {
	r.Post("/auth/login", h.loginAdmin)
	r.Post("/auth/google", h.loginGoogle)
	r.Post("/auth/refresh", h.refresh)
}

func (h AuthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/auth/me", h.me)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h AuthHandler) loginAdmin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "permintaan tidak valid")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email dan password wajib diisi")
		return
	}

	result, err := h.Auth.LoginAdmin(r.Context(), service.AdminLoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		writeError(w, http.StatusUnauthorized, "email atau password salah")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type googleLoginRequest struct {
	IDToken string `json:"idToken"`
	Email   string `json:"email"`
	Nama    string `json:"nama"`
	Phone   string `json:"phone"`
	Alamat  string `json:"alamat"`
}

func (h AuthHandler) loginGoogle(w http.ResponseWriter, r *http.Request) {
	var req googleLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "permintaan tidak valid")
		return
	}
	if req.IDToken == "" {
		writeError(w, http.StatusBadRequest, "idToken wajib diisi")
		return
	}

	result, err := h.Auth.LoginWithGoogle(r.Context(), service.GoogleLoginInput{
		IDToken: req.IDToken,
		Email:   req.Email,
		Nama:    req.Nama,
		Phone:   req.Phone,
		Alamat:  req.Alamat,
	})
	if err != nil {
		writeError(w, http.StatusUnauthorized, "token Google tidak valid")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (h AuthHandler) refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "permintaan tidak valid")
		return
	}
	result, err := h.Auth.Refresh(r.Context(), service.RefreshInput{RefreshToken: req.RefreshToken})
	if err != nil {
		writeError(w, http.StatusUnauthorized, "refresh token tidak valid")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":    user.ID,
		"nama":  user.Nama,
		"email": user.Email,
		"role":  string(user.Role),
	})
}
