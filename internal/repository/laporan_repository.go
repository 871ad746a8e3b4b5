package repository

import (
	"context"
	"errors"
	"time"

	"arfilla-backend/internal/db"
	"arfilla-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type LaporanRepository struct {
	DB *db.Postgres
}

// LaporanPesanan computes the revenue report: completed orders whose order
// date falls inside [start, end], ascending, with total agreed price. No
// report row is persisted.
func (r LaporanRepository) LaporanPesanan(ctx context.Context, start, end time.Time) (*domain.LaporanPesanan, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT p.id, p.pengguna_id, p.nama_pemesan, p.layanan_id, COALESCE(l.nama, ''),
		       p.harga_disepakati, p.tanggal_pesan, p.phone, p.status, p.lokasi, p.catatan,
		       p.created_at, p.updated_at
		FROM pesanan p
		LEFT JOIN layanan l ON l.id = p.layanan_id
		WHERE p.deleted_at IS NULL
		  AND p.status = $1
		  AND p.tanggal_pesan >= $2
		  AND p.tanggal_pesan <= $3
		ORDER BY p.tanggal_pesan ASC, p.id ASC
	`, domain.StatusSelesai, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := collectPesanan(rows)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, p := range items {
		if p.HargaDisepakati != nil {
			total += *p.HargaDisepakati
		}
	}
	return &domain.LaporanPesanan{Start: start, End: end, Pesanan: items, Total: total}, nil
}

type SaveLaporanInput struct {
	Judul   string
	Bulan   time.Time
	Isi     string
	Total   int64
	AdminID *int64
}

func (r LaporanRepository) Create(ctx context.Context, in SaveLaporanInput) (*domain.Laporan, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO laporan (judul, bulan, isi, total, admin_id, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5, now(), now())
		RETURNING id, judul, bulan, isi, total, admin_id, created_at, updated_at
	`, in.Judul, in.Bulan, in.Isi, in.Total, in.AdminID)
	return scanLaporan(row)
}

func (r LaporanRepository) Update(ctx context.Context, id int64, in SaveLaporanInput) (*domain.Laporan, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		UPDATE laporan
		SET judul=$2, bulan=$3, isi=$4, total=$5, updated_at=now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING id, judul, bulan, isi, total, admin_id, created_at, updated_at
	`, id, in.Judul, in.Bulan, in.Isi, in.Total)
	l, err := scanLaporan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func (r LaporanRepository) Get(ctx context.Context, id int64) (*domain.Laporan, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT id, judul, bulan, isi, total, admin_id, created_at, updated_at
		FROM laporan
		WHERE id=$1 AND deleted_at IS NULL
	`, id)
	l, err := scanLaporan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func (r LaporanRepository) List(ctx context.Context, limit int) ([]domain.Laporan, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, judul, bulan, isi, total, admin_id, created_at, updated_at
		FROM laporan
		WHERE deleted_at IS NULL
		ORDER BY bulan DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Laporan
	for rows.Next() {
		l, err := scanLaporan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *l)
	}
	return items, rows.Err()
}

func (r LaporanRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `UPDATE laporan SET deleted_at = now() WHERE id=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanLaporan(row interface {
	Scan(dest ...any) error
}) (*domain.Laporan, error) {
	var (
		l       domain.Laporan
		adminID pgtype.Int8
	)
	if err := row.Scan(&l.ID, &l.Judul, &l.Bulan, &l.Isi, &l.Total, &adminID, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	if adminID.Valid {
		l.AdminID = &adminID.Int64
	}
	return &l, nil
}
