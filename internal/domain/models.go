package domain

import "time"

// Enumerations
const (
	RoleAdmin    UserRole = "admin"
	RolePengguna UserRole = "pengguna"

	JenisDP        PaymentType = "DP"
	JenisPelunasan PaymentType = "PELUNASAN"

	BayarBelum    PaymentStatus = "BELUM_BAYAR"
	BayarMenunggu PaymentStatus = "MENUNGGU_VERIFIKASI"
	BayarVerified PaymentStatus = "DIVERIFIKASI"
	BayarDitolak  PaymentStatus = "DITOLAK"

	LogInfo    ActivityLogType = "info"
	LogWarning ActivityLogType = "warning"
	LogError   ActivityLogType = "error"

	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

type UserRole string
type PaymentType string
type PaymentStatus string
type ActivityLogType string
type NotificationType string

// Pengguna is a registered customer account.
type Pengguna struct {
	ID        int64
	Nama      string
	Email     string
	Phone     string
	Alamat    string
	IsGoogle  bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Admin is a back-office account authenticated by credentials.
type Admin struct {
	ID           int64
	Nama         string
	Email        string
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// Layanan is a construction service catalog entry.
type Layanan struct {
	ID        int64
	Nama      string
	Deskripsi string
	HargaMin  *int64
	HargaMax  *int64
	Gambar    string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Pesanan is an order placed by a customer for a construction service.
// PenggunaID and LayananID are nullable: walk-in customers are identified
// only by name and phone, and a service may be agreed on later.
type Pesanan struct {
	ID              int64
	PenggunaID      *int64
	NamaPemesan     string
	LayananID       *int64
	NamaLayanan     string
	HargaDisepakati *int64
	TanggalPesan    time.Time
	Phone           string
	Status          OrderStatus
	Lokasi          *string
	Catatan         *string
	Progres         []ProgresPesanan
	Pembayaran      []Pembayaran
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

// Pembayaran is a payment record tied to an order, either a down payment
// (DP) or the final settlement (PELUNASAN).
type Pembayaran struct {
	ID                 int64
	PesananID          int64
	Jumlah             int64
	Jenis              PaymentType
	Status             PaymentStatus
	BuktiPembayaran    *string
	MetodePembayaran   string
	TanggalBayar       *time.Time
	TanggalVerifikasi  *time.Time
	VerifikatorAdminID *int64
	AlasanPenolakan    *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time
}

// ProgresPesanan is a timestamped completion-percentage entry for an order.
type ProgresPesanan struct {
	ID            int64
	PesananID     int64
	Deskripsi     string
	PersenProgres int
	FotoDokumen   *string
	UpdatedAt     time.Time
	CreatedAt     time.Time
	DeletedAt     *time.Time
}

// Portofolio is a showcase entry of completed work.
type Portofolio struct {
	ID        int64
	Judul     string
	Deskripsi string
	Gambar    string
	Lokasi    string
	Tahun     int
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Laporan is a manually curated monthly summary, independent from the
// computed revenue report.
type Laporan struct {
	ID        int64
	Judul     string
	Bulan     time.Time
	Isi       string
	Total     int64
	AdminID   *int64
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// LaporanPesanan is a computed revenue report over completed orders.
type LaporanPesanan struct {
	Start   time.Time
	End     time.Time
	Pesanan []Pesanan
	Total   int64
}

// Keluhan is a customer complaint about an order.
type Keluhan struct {
	ID         int64
	PenggunaID *int64
	PesananID  *int64
	Nama       string
	Isi        string
	Tanggapan  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// Pengaturan holds the business profile used in receipts and emails.
type Pengaturan struct {
	NamaUsaha   string
	AlamatUsaha string
	PhoneUsaha  string
	EmailUsaha  string
	FooterEmail string
	UpdatedAt   time.Time
}

type ActivityLog struct {
	ID       int64
	Title    string
	Message  string
	Actor    string
	Type     ActivityLogType
	LoggedAt time.Time
}

type Notification struct {
	ID         int64
	PenggunaID *int64
	Title      string
	Message    string
	Type       NotificationType
	CreatedAt  time.Time
	ReadAt     *time.Time
	DeletedAt  *time.Time
}
