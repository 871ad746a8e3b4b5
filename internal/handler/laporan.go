package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"arfilla-backend/internal/domain"
	"arfilla-backend/internal/repository"
	"arfilla-backend/internal/server/authctx"
	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"
)

type LaporanHandler struct {
	Repo repository.LaporanRepository
}

func (h LaporanHandler) RegisterRoutes(r chi.Router) {
	r.Get("/laporan", h.list)
	r.Get("/laporan/export", h.export)
	r.Get("/laporan/{id}", h.get)
	r.Post("/laporan", h.create)
	r.Put("/laporan/{id}", h.update)
	r.Delete("/laporan/{id}", h.delete)
}

// pesananReport computes revenue over completed orders in the requested
// date range.
func (h LaporanHandler) pesananReport(w http.ResponseWriter, r *http.Request) {
	from, to, err := reportRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "format tanggal harus YYYY-MM-DD")
		return
	}
	if from.After(to) {
		writeError(w, http.StatusBadRequest, "start harus sebelum end")
		return
	}

	report, err := h.Repo.LaporanPesanan(r.Context(), from, to)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	items := make([]map[string]any, 0, len(report.Pesanan))
	for _, p := range report.Pesanan {
		items = append(items, pesananJSON(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"start":   report.Start.Format(dateLayout),
		"end":     report.End.Format(dateLayout),
		"total":   report.Total,
		"jumlah":  len(report.Pesanan),
		"pesanan": items,
	})
}

func (h LaporanHandler) export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	from, to, err := reportRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "format tanggal harus YYYY-MM-DD")
		return
	}
	if from.After(to) {
		writeError(w, http.StatusBadRequest, "start harus sebelum end")
		return
	}

	report, err := h.Repo.LaporanPesanan(r.Context(), from, to)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	suffix := time.Now().Format("20060102_150405")

	switch format {
	case "csv":
		data, err := exportLaporanCSV(report)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"laporan_pesanan_%s.csv\"", suffix))
		_, _ = w.Write(data)
	case "xlsx", "excel":
		data, err := exportLaporanXLSX(report)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"laporan_pesanan_%s.xlsx\"", suffix))
		_, _ = w.Write(data)
	default:
		writeError(w, http.StatusBadRequest, "format harus csv atau xlsx")
	}
}

func exportLaporanCSV(report *domain.LaporanPesanan) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"id", "nama_pemesan", "layanan", "harga_disepakati", "tanggal_pesan", "status"})
	for _, p := range report.Pesanan {
		harga := int64(0)
		if p.HargaDisepakati != nil {
			harga = *p.HargaDisepakati
		}
		_ = w.Write([]string{
			strconv.FormatInt(p.ID, 10),
			p.NamaPemesan,
			p.NamaLayanan,
			strconv.FormatInt(harga, 10),
			p.TanggalPesan.Format(dateLayout),
			string(p.Status),
		})
	}
	_ = w.Write([]string{"", "", "", strconv.FormatInt(report.Total, 10), "", "TOTAL"})
	w.Flush()
	return buf.Bytes(), w.Error()
}

func exportLaporanXLSX(report *domain.LaporanPesanan) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Laporan Pesanan"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	header := []string{"ID", "Nama Pemesan", "Layanan", "Harga Disepakati", "Tanggal Pesan", "Status"}
	for c, v := range header {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		_ = f.SetCellValue(sheet, cell, v)
	}
	for r, p := range report.Pesanan {
		row := r + 2
		harga := int64(0)
		if p.HargaDisepakati != nil {
			harga = *p.HargaDisepakati
		}
		values := []any{
			p.ID,
			p.NamaPemesan,
			p.NamaLayanan,
			harga,
			p.TanggalPesan.Format(dateLayout),
			p.Status.Label(),
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	totalRow := len(report.Pesanan) + 2
	cell, _ := excelize.CoordinatesToCellName(4, totalRow)
	_ = f.SetCellValue(sheet, cell, report.Total)
	label, _ := excelize.CoordinatesToCellName(3, totalRow)
	_ = f.SetCellValue(sheet, label, "TOTAL")

	_ = f.SetColWidth(sheet, "A", "A", 10)
	_ = f.SetColWidth(sheet, "B", "B", 24)
	_ = f.SetColWidth(sheet, "C", "C", 24)
	_ = f.SetColWidth(sheet, "D", "D", 18)
	_ = f.SetColWidth(sheet, "E", "E", 14)
	_ = f.SetColWidth(sheet, "F", "F", 16)

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F2937"}, Pattern: 1},
	})
	_ = f.SetCellStyle(sheet, "A1", "F1", style)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type laporanPayload struct {
	Judul string `json:"judul"`
	Bulan string `json:"bulan"`
	Isi   string `json:"isi"`
	Total int64  `json:"total"`
}

const bulanLayout = "2006-01"

// list serves two shapes from one path: with start/end query parameters it
// computes the revenue report over completed orders, otherwise it returns
// the curated monthly summaries.
func (h LaporanHandler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("start") != "" || q.Get("end") != "" {
		h.pesananReport(w, r)
		return
	}

	items, err := h.Repo.List(r.Context(), 200)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, l := range items {
		resp = append(resp, laporanJSON(l))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h LaporanHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id tidak valid")
		return
	}
	l, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, laporanJSON(*l))
}

func (h LaporanHandler) create(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	var req laporanPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "permintaan tidak valid")
		return
	}
	bulan, err := time.Parse(bulanLayout, req.Bulan)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bulan harus berformat YYYY-MM")
		return
	}

	in := repository.SaveLaporanInput{
		Judul: req.Judul,
		Bulan: bulan,
		Isi:   req.Isi,
		Total: req.Total,
	}
	if user != nil {
		id := user.ID
		in.AdminID = &id
	}
	l, err := h.Repo.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, laporanJSON(*l))
}

func (h LaporanHandler) update(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id tidak valid")
		return
	}
	var req laporanPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "permintaan tidak valid")
		return
	}
	bulan, err := time.Parse(bulanLayout, req.Bulan)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bulan harus berformat YYYY-MM")
		return
	}

	in := repository.SaveLaporanInput{
		Judul: req.Judul,
		Bulan: bulan,
		Isi:   req.Isi,
		Total: req.Total,
	}
	if user != nil {
		adminID := user.ID
		in.AdminID = &adminID
	}
	l, err := h.Repo.Update(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, laporanJSON(*l))
}

func (h LaporanHandler) delete(w http.ResponseWriter, r *http.Request) {
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

func laporanJSON(l domain.Laporan) map[string]any {
	return map[string]any{
		"id":        l.ID,
		"judul":     l.Judul,
		"bulan":     l.Bulan.Format(bulanLayout),
		"isi":       l.Isi,
		"total":     l.Total,
		"adminId":   l.AdminID,
		"createdAt": l.CreatedAt,
	}
}
