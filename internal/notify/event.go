package notify

import "arfilla-backend/internal/domain"

type Kind string

const (
	KindPesananDibuat      Kind = "pesanan_dibuat"
	KindStatusPesanan      Kind = "status_pesanan"
	KindPembayaranDiterima Kind = "pembayaran_diterima"
	KindPembayaranDitolak  Kind = "pembayaran_ditolak"
	KindBuktiDiterima      Kind = "bukti_diterima"
)

// Event describes a completed order or payment mutation. Events are emitted
// only after the primary write has committed; delivering them is best-effort
// and never affects the mutation result.
type Event struct {
	Kind       Kind
	PenggunaID *int64
	Email      string
	Nama       string
	PesananID  int64
	Status     domain.OrderStatus
	Jenis      domain.PaymentType
	Jumlah     int64
	Alasan     string
}
