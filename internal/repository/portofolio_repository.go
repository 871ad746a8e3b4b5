package repository

import (
	"context"
	"errors"

	"arfilla-backend/internal/db"
	"arfilla-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

type PortofolioRepository struct {
	DB *db.Postgres
}

type SavePortofolioInput struct {
	Judul     string
	Deskripsi string
	Gambar    string
	Lokasi    string
	Tahun     int
}

func (r PortofolioRepository) Create(ctx context.Context, in SavePortofolioInput) (*domain.Portofolio, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO portofolio (judul, deskripsi, gambar, lokasi, tahun, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5, now(), now())
		RETURNING id, judul, deskripsi, gambar, lokasi, tahun, created_at, updated_at
	`, in.Judul, in.Deskripsi, in.Gambar, in.Lokasi, in.Tahun)
	return scanPortofolio(row)
}

func (r PortofolioRepository) Update(ctx context.Context, id int64, in SavePortofolioInput) (*domain.Portofolio, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		UPDATE portofolio
		SET judul=$2, deskripsi=$3, gambar=$4, lokasi=$5, tahun=$6, updated_at=now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING id, judul, deskripsi, gambar, lokasi, tahun, created_at, updated_at
	`, id, in.Judul, in.Deskripsi, in.Gambar, in.Lokasi, in.Tahun)
	p, err := scanPortofolio(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r PortofolioRepository) Get(ctx context.Context, id int64) (*domain.Portofolio, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT id, judul, deskripsi, gambar, lokasi, tahun, created_at, updated_at
		FROM portofolio
		WHERE id=$1 AND deleted_at IS NULL
	`, id)
	p, err := scanPortofolio(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r PortofolioRepository) List(ctx context.Context, limit int) ([]domain.Portofolio, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, judul, deskripsi, gambar, lokasi, tahun, created_at, updated_at
		FROM portofolio
		WHERE deleted_at IS NULL
		ORDER BY tahun DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Portofolio
	for rows.Next() {
		var p domain.Portofolio
		if err := rows.Scan(&p.ID, &p.Judul, &p.Deskripsi, &p.Gambar, &p.Lokasi, &p.Tahun, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r PortofolioRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `UPDATE portofolio SET deleted_at = now() WHERE id=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanPortofolio(row interface {
	Scan(dest ...any) error
}) (*domain.Portofolio, error) {
	var p domain.Portofolio
	if err := row.Scan(
		&p.ID,
		&p.Judul,
		&p.Deskripsi,
		&p.Gambar,
		&p.Lokasi,
		&p.Tahun,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
