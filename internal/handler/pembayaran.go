package handler

import (
	"net/http"

	"arfilla-backend/internal/domain"
	"arfilla-backend/internal/server/authctx"
	"arfilla-backend/internal/service"
	"github.com/go-chi/chi/v5"
)

type PembayaranHandler struct {
	Service service.PembayaranService
}

func (h PembayaranHandler) RegisterCustomerRoutes(r chi.Router) {
	r.Patch("/pembayaran/{id}", h.patch)
}

func (h PembayaranHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/pembayaran", h.list)
	r.Get("/pembayaran/{id}", h.get)
	r.Post("/pembayaran", h.create)
}

// pembayaranPatch is the union of the two PATCH shapes: a customer
// attaching a proof of transfer, or an admin recording a verification
// decision. classifyPatch decides which one a body is.
type pembayaranPatch struct {
	Action           string  `json:"action"`
	BuktiPembayaran  string  `json:"buktiPembayaran"`
	MetodePembayaran string  `json:"metodePembayaran"`
	AdminID          *int64  `json:"adminId"`
	Disetujui        *bool   `json:"disetujui"`
	AlasanPenolakan  *string `json:"alasanPenolakan"`
}

type patchKind int

const (
	patchInvalid patchKind = iota
	patchUploadBukti
	patchVerifikasi
)

func classifyPatch(req pembayaranPatch) (patchKind, string) {
	switch req.Action {
	case "verifikasi":
		if req.AdminID == nil {
			return patchInvalid, "adminId wajib diisi untuk verifikasi"
		}
		if req.Disetujui == nil {
			return patchInvalid, "disetujui wajib diisi untuk verifikasi"
		}
		return patchVerifikasi, ""
	case "", "upload_bukti":
		if req.BuktiPembayaran == "" {
			return patchInvalid, "buktiPembayaran wajib diisi"
		}
		return patchUploadBukti, ""
	default:
		return patchInvalid, "action " + req.Action + " tidak dikenal"
	}
}

func (h PembayaranHandler) patch(w http.ResponseWriter, r *http.Request) {
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

	var req pembayaranPatch
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "permintaan tidak valid")
		return
	}

	kind, reason := classifyPatch(req)
	switch kind {
	case patchUploadBukti:
		var owner *int64
		if user.Role == domain.RolePengguna {
			ownID := user.ID
			owner = &ownID
		}
		b, err := h.Service.UploadBukti(r.Context(), id, owner, req.BuktiPembayaran, req.MetodePembayaran)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pembayaranJSON(*b))

	case patchVerifikasi:
		if user.Role != domain.RoleAdmin {
			writeError(w, http.StatusForbidden, "hanya admin yang dapat memverifikasi pembayaran")
			return
		}
		b, err := h.Service.Verify(r.Context(), id, service.VerifyInput{
			AdminID: *req.AdminID,
			Approve: *req.Disetujui,
			Alasan:  req.AlasanPenolakan,
		}, user.Nama)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pembayaranJSON(*b))

	default:
		writeError(w, http.StatusBadRequest, reason)
	}
}

func (h PembayaranHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.List(r.Context(), 500)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, b := range items {
		resp = append(resp, pembayaranJSON(b))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h PembayaranHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id tidak valid")
		return
	}
	b, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pembayaranJSON(*b))
}

type createPembayaranPayload struct {
	PesananID int64  `json:"pesananId"`
	Jumlah    int64  `json:"jumlah"`
	Jenis     string `json:"jenis"`
	Metode    string `json:"metodePembayaran"`
}

func (h PembayaranHandler) create(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	var req createPembayaranPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "permintaan tidak valid")
		return
	}

	b, err := h.Service.Create(r.Context(), service.CreatePembayaranInput{
		PesananID: req.PesananID,
		Jumlah:    req.Jumlah,
		Jenis:     domain.PaymentType(req.Jenis),
		Metode:    req.Metode,
	}, actorName(user))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pembayaranJSON(*b))
}

func pembayaranJSON(b domain.Pembayaran) map[string]any {
	return map[string]any{
		"id":                 b.ID,
		"pesananId":          b.PesananID,
		"jumlah":             b.Jumlah,
		"jenis":              string(b.Jenis),
		"status":             string(b.Status),
		"buktiPembayaran":    b.BuktiPembayaran,
		"metodePembayaran":   b.MetodePembayaran,
		"tanggalBayar":       b.TanggalBayar,
		"tanggalVerifikasi":  b.TanggalVerifikasi,
		"verifikatorAdminId": b.VerifikatorAdminID,
		"alasanPenolakan":    b.AlasanPenolakan,
		"createdAt":          b.CreatedAt,
	}
}
