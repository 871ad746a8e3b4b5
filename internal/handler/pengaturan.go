package handler

import (
	"net/http"

	"arfilla-backend/internal/domain"
	"arfilla-backend/internal/repository"
	"github.com/go-chi/chi/v5"
)

type PengaturanHandler struct {
	Repo repository.PengaturanRepository
}

func (h PengaturanHandler) RegisterRoutes(r chi.Router) {
	r.Get("/pengaturan", h.get)
	r.Put("/pengaturan", h.save)
}

type pengaturanPayload struct {
	NamaUsaha   string `json:"namaUsaha"`
	AlamatUsaha string `json:"alamatUsaha"`
	PhoneUsaha  string `json:"phoneUsaha"`
	EmailUsaha  string `json:"emailUsaha"`
	FooterEmail string `json:"footerEmail"`
}

func (h PengaturanHandler) get(w http.ResponseWriter, r *http.Request) {
	p, err := h.Repo.Get(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pengaturanJSON(*p))
}

func (h PengaturanHandler) save(w http.ResponseWriter, r *http.Request) {
	var req pengaturanPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "permintaan tidak valid")
		return
	}
	if req.NamaUsaha == "" {
		writeError(w, http.StatusBadRequest, "namaUsaha wajib diisi")
		return
	}

	p, err := h.Repo.Save(r.Context(), domain.Pengaturan{
		NamaUsaha:   req.NamaUsaha,
		AlamatUsaha: req.AlamatUsaha,
		PhoneUsaha:  req.PhoneUsaha,
		EmailUsaha:  req.EmailUsaha,
		FooterEmail: req.FooterEmail,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pengaturanJSON(*p))
}

func pengaturanJSON(p domain.Pengaturan) map[string]any {
	return map[string]any{
		"namaUsaha":   p.NamaUsaha,
		"alamatUsaha": p.AlamatUsaha,
		"phoneUsaha":  p.PhoneUsaha,
		"emailUsaha":  p.EmailUsaha,
		"footerEmail": p.FooterEmail,
		"updatedAt":   p.UpdatedAt,
	}
}
