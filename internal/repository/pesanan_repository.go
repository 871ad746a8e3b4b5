package repository

import (
	"context"
	"errors"

	"arfilla-backend/internal/db"
	"arfilla-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type PesananRepository struct {
	DB *db.Postgres
}

type CreatePesananInput struct {
	PenggunaID  *int64
	NamaPemesan string
	LayananID   *int64
	Phone       string
	Lokasi      *string
	Catatan     *string
}

type UpdatePesananInput struct {
	NamaPemesan     string
	LayananID       *int64
	HargaDisepakati *int64
	Phone           string
	Status          domain.OrderStatus
	Lokasi          *string
	Catatan         *string
}

const pesananColumns = `
	p.id, p.pengguna_id, p.nama_pemesan, p.layanan_id, COALESCE(l.nama, ''),
	p.harga_disepakati, p.tanggal_pesan, p.phone, p.status, p.lokasi, p.catatan,
	p.created_at, p.updated_at`

const pesananFrom = `
	FROM pesanan p
	LEFT JOIN layanan l ON l.id = p.layanan_id`

func (r PesananRepository) Create(ctx context.Context, in CreatePesananInput) (*domain.Pesanan, error) {
	var id int64
	err := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO pesanan (pengguna_id, nama_pemesan, layanan_id, tanggal_pesan, phone, status, lokasi, catatan, created_at, updated_at)
		VALUES ($1,$2,$3, now(), $4, $5, $6, $7, now(), now())
		RETURNING id
	`, in.PenggunaID, in.NamaPemesan, in.LayananID, in.Phone, domain.StatusPengajuan, in.Lokasi, in.Catatan).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// Get loads an order with its progress timeline (newest first) and payments.
func (r PesananRepository) Get(ctx context.Context, id int64) (*domain.Pesanan, error) {
	row := r.DB.Pool.QueryRow(ctx, `SELECT `+pesananColumns+pesananFrom+`
		WHERE p.id=$1 AND p.deleted_at IS NULL`, id)
	p, err := scanPesanan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	progres, err := r.listProgres(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Progres = progres

	pembayaran, err := r.listPembayaran(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Pembayaran = pembayaran
	return p, nil
}

func (r PesananRepository) List(ctx context.Context, limit int) ([]domain.Pesanan, error) {
	rows, err := r.DB.Pool.Query(ctx, `SELECT `+pesananColumns+pesananFrom+`
		WHERE p.deleted_at IS NULL
		ORDER BY p.tanggal_pesan DESC, p.id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPesanan(rows)
}

func (r PesananRepository) ListByPengguna(ctx context.Context, penggunaID int64, limit int) ([]domain.Pesanan, error) {
	rows, err := r.DB.Pool.Query(ctx, `SELECT `+pesananColumns+pesananFrom+`
		WHERE p.deleted_at IS NULL AND p.pengguna_id=$1
		ORDER BY p.tanggal_pesan DESC, p.id DESC
		LIMIT $2`, penggunaID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPesanan(rows)
}

func (r PesananRepository) Update(ctx context.Context, id int64, in UpdatePesananInput) (*domain.Pesanan, error) {
	tag, err := r.DB.Pool.Exec(ctx, `
		UPDATE pesanan
		SET nama_pemesan=$2, layanan_id=$3, harga_disepakati=$4, phone=$5, status=$6, lokasi=$7, catatan=$8, updated_at=now()
		WHERE id=$1 AND deleted_at IS NULL
	`, id, in.NamaPemesan, in.LayananID, in.HargaDisepakati, in.Phone, in.Status, in.Lokasi, in.Catatan)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.Get(ctx, id)
}

func (r PesananRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	tag, err := r.DB.Pool.Exec(ctx, `
		UPDATE pesanan SET status=$2, updated_at=now() WHERE id=$1 AND deleted_at IS NULL
	`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetWithTx loads the bare order row inside an existing transaction,
// row-locked, without its progress and payment collections.
func (r PesananRepository) GetWithTx(ctx context.Context, tx pgx.Tx, id int64) (*domain.Pesanan, error) {
	row := tx.QueryRow(ctx, `SELECT `+pesananColumns+pesananFrom+`
		WHERE p.id=$1 AND p.deleted_at IS NULL
		FOR UPDATE OF p`, id)
	p, err := scanPesanan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// UpdateStatusWithTx updates the status inside an existing transaction, so
// payment verification can change order state atomically with the payment.
func (r PesananRepository) UpdateStatusWithTx(ctx context.Context, tx pgx.Tx, id int64, status domain.OrderStatus) error {
	tag, err := tx.Exec(ctx, `
		UPDATE pesanan SET status=$2, updated_at=now() WHERE id=$1 AND deleted_at IS NULL
	`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete soft-deletes an order. Administrative override only.
func (r PesananRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `UPDATE pesanan SET deleted_at = now() WHERE id=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r PesananRepository) listProgres(ctx context.Context, pesananID int64) ([]domain.ProgresPesanan, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, pesanan_id, deskripsi, persen_progres, foto_dokumen, created_at, updated_at
		FROM progres_pesanan
		WHERE pesanan_id=$1 AND deleted_at IS NULL
		ORDER BY updated_at DESC, id DESC
	`, pesananID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.ProgresPesanan
	for rows.Next() {
		var pr domain.ProgresPesanan
		if err := rows.Scan(&pr.ID, &pr.PesananID, &pr.Deskripsi, &pr.PersenProgres, &pr.FotoDokumen, &pr.CreatedAt, &pr.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, pr)
	}
	return items, rows.Err()
}

func (r PesananRepository) listPembayaran(ctx context.Context, pesananID int64) ([]domain.Pembayaran, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, pesanan_id, jumlah, jenis, status, bukti_pembayaran, metode_pembayaran,
		       tanggal_bayar, tanggal_verifikasi, verifikator_admin_id, alasan_penolakan,
		       created_at, updated_at
		FROM pembayaran
		WHERE pesanan_id=$1 AND deleted_at IS NULL
		ORDER BY created_at ASC, id ASC
	`, pesananID)
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

func collectPesanan(rows pgx.Rows) ([]domain.Pesanan, error) {
	var items []domain.Pesanan
	for rows.Next() {
		p, err := scanPesanan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

func scanPesanan(row interface {
	Scan(dest ...any) error
}) (*domain.Pesanan, error) {
	var (
		p          domain.Pesanan
		penggunaID pgtype.Int8
		layananID  pgtype.Int8
		harga      pgtype.Int8
		lokasi     pgtype.Text
		catatan    pgtype.Text
		status     string
	)
	if err := row.Scan(
		&p.ID, &penggunaID, &p.NamaPemesan, &layananID, &p.NamaLayanan,
		&harga, &p.TanggalPesan, &p.Phone, &status, &lokasi, &catatan,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if penggunaID.Valid {
		p.PenggunaID = &penggunaID.Int64
	}
	if layananID.Valid {
		p.LayananID = &layananID.Int64
	}
	if harga.Valid {
		p.HargaDisepakati = &harga.Int64
	}
	if lokasi.Valid {
		v := lokasi.String
		p.Lokasi = &v
	}
	if catatan.Valid {
		v := catatan.String
		p.Catatan = &v
	}
	p.Status = domain.OrderStatus(status)
	return &p, nil
}
