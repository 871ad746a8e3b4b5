package repository

import (
	"context"
	"errors"

	"arfilla-backend/internal/db"
	"arfilla-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type PembayaranRepository struct {
	DB *db.Postgres
}

type CreatePembayaranInput struct {
	PesananID int64
	Jumlah    int64
	Jenis     domain.PaymentType
	Status    domain.PaymentStatus
	Metode    string
}

const pembayaranColumns = `
	id, pesanan_id, jumlah, jenis, status, bukti_pembayaran, metode_pembayaran,
	tanggal_bayar, tanggal_verifikasi, verifikator_admin_id, alasan_penolakan,
	created_at, updated_at`

func (r PembayaranRepository) Create(ctx context.Context, in CreatePembayaranInput) (*domain.Pembayaran, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO pembayaran (pesanan_id, jumlah, jenis, status, metode_pembayaran, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5, now(), now())
		RETURNING `+pembayaranColumns, in.PesananID, in.Jumlah, in.Jenis, in.Status, in.Metode)
	return scanPembayaranRow(row)
}

// CreateWithTx inserts a payment inside an existing transaction. The partial
// unique index on (pesanan_id, jenis) makes a duplicate PELUNASAN derivation
// fail with a unique violation.
func (r PembayaranRepository) CreateWithTx(ctx context.Context, tx pgx.Tx, in CreatePembayaranInput) (*domain.Pembayaran, error) {
	row := tx.QueryRow(ctx, `
		INSERT INTO pembayaran (pesanan_id, jumlah, jenis, status, metode_pembayaran, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5, now(), now())
		RETURNING `+pembayaranColumns, in.PesananID, in.Jumlah, in.Jenis, in.Status, in.Metode)
	return scanPembayaranRow(row)
}

func (r PembayaranRepository) Get(ctx context.Context, id int64) (*domain.Pembayaran, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT `+pembayaranColumns+`
		FROM pembayaran
		WHERE id=$1 AND deleted_at IS NULL
	`, id)
	b, err := scanPembayaranRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// GetForUpdateWithTx loads a payment row-locked, so concurrent verification
// decisions on the same payment serialize.
func (r PembayaranRepository) GetForUpdateWithTx(ctx context.Context, tx pgx.Tx, id int64) (*domain.Pembayaran, error) {
	row := tx.QueryRow(ctx, `
		SELECT `+pembayaranColumns+`
		FROM pembayaran
		WHERE id=$1 AND deleted_at IS NULL
		FOR UPDATE
	`, id)
	b, err := scanPembayaranRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r PembayaranRepository) List(ctx context.Context, limit int) ([]domain.Pembayaran, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+pembayaranColumns+`
		FROM pembayaran
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Pembayaran
	for rows.Next() {
		b, err := scanPembayaranRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *b)
	}
	return items, rows.Err()
}

// setBuktiSQL starts a fresh review on every proof upload: a re-upload
// after a rejection must not keep the previous verdict columns.
var setBuktiSQL = `
	UPDATE pembayaran
	SET bukti_pembayaran=$2, metode_pembayaran=$3, status=$4, tanggal_bayar=now(),
		alasan_penolakan=NULL, tanggal_verifikasi=NULL, verifikator_admin_id=NULL,
		updated_at=now()
	WHERE id=$1 AND deleted_at IS NULL
	RETURNING ` + pembayaranColumns

// SetBukti records an uploaded proof of transfer and moves the payment to
// awaiting verification.
func (r PembayaranRepository) SetBukti(ctx context.Context, id int64, bukti, metode string) (*domain.Pembayaran, error) {
	row := r.DB.Pool.QueryRow(ctx, setBuktiSQL, id, bukti, metode, domain.BayarMenunggu)
	b, err := scanPembayaranRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r PembayaranRepository) MarkVerifiedWithTx(ctx context.Context, tx pgx.Tx, id, adminID int64) (*domain.Pembayaran, error) {
	row := tx.QueryRow(ctx, `
		UPDATE pembayaran
		SET status=$3, tanggal_verifikasi=now(), verifikator_admin_id=$2, updated_at=now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING `+pembayaranColumns, id, adminID, domain.BayarVerified)
	return scanPembayaranRow(row)
}

func (r PembayaranRepository) MarkRejectedWithTx(ctx context.Context, tx pgx.Tx, id, adminID int64, alasan *string) (*domain.Pembayaran, error) {
	row := tx.QueryRow(ctx, `
		UPDATE pembayaran
		SET status=$3, tanggal_verifikasi=now(), verifikator_admin_id=$2, alasan_penolakan=$4, updated_at=now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING `+pembayaranColumns, id, adminID, domain.BayarDitolak, alasan)
	return scanPembayaranRow(row)
}

// HasPelunasanWithTx reports whether a settlement payment already exists for
// the order.
func (r PembayaranRepository) HasPelunasanWithTx(ctx context.Context, tx pgx.Tx, pesananID int64) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM pembayaran
			WHERE pesanan_id=$1 AND jenis=$2 AND deleted_at IS NULL
		)
	`, pesananID, domain.JenisPelunasan).Scan(&exists)
	return exists, err
}

func scanPembayaranRow(row interface {
	Scan(dest ...any) error
}) (*domain.Pembayaran, error) {
	var (
		b       domain.Pembayaran
		jenis   string
		status  string
		bukti   pgtype.Text
		bayar   pgtype.Timestamptz
		verif   pgtype.Timestamptz
		adminID pgtype.Int8
		alasan  pgtype.Text
	)
	if err := row.Scan(
		&b.ID, &b.PesananID, &b.Jumlah, &jenis, &status, &bukti, &b.MetodePembayaran,
		&bayar, &verif, &adminID, &alasan,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	b.Jenis = domain.PaymentType(jenis)
	b.Status = domain.PaymentStatus(status)
	if bukti.Valid {
		v := bukti.String
		b.BuktiPembayaran = &v
	}
	if bayar.Valid {
		t := bayar.Time
		b.TanggalBayar = &t
	}
	if verif.Valid {
		t := verif.Time
		b.TanggalVerifikasi = &t
	}
	if adminID.Valid {
		b.VerifikatorAdminID = &adminID.Int64
	}
	if alasan.Valid {
		v := alasan.String
		b.AlasanPenolakan = &v
	}
	return &b, nil
}
