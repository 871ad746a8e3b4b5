package repository

import (
	"context"
	"errors"

	"arfilla-backend/internal/db"
	"arfilla-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

type LayananRepository struct {
	DB *db.Postgres
}

type SaveLayananInput struct {
	Nama      string
	Deskripsi string
	HargaMin  *int64
	HargaMax  *int64
	Gambar    string
}

func (r LayananRepository) Create(ctx context.Context, in SaveLayananInput) (*domain.Layanan, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO layanan (nama, deskripsi, harga_min, harga_max, gambar, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5, now(), now())
		RETURNING id, nama, deskripsi, harga_min, harga_max, gambar, created_at, updated_at
	`, in.Nama, in.Deskripsi, in.HargaMin, in.HargaMax, in.Gambar)
	return scanLayanan(row)
}

func (r LayananRepository) Update(ctx context.Context, id int64, in SaveLayananInput) (*domain.Layanan, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		UPDATE layanan
		SET nama=$2, deskripsi=$3, harga_min=$4, harga_max=$5, gambar=$6, updated_at=now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING id, nama, deskripsi, harga_min, harga_max, gambar, created_at, updated_at
	`, id, in.Nama, in.Deskripsi, in.HargaMin, in.HargaMax, in.Gambar)
	l, err := scanLayanan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func (r LayananRepository) Get(ctx context.Context, id int64) (*domain.Layanan, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT id, nama, deskripsi, harga_min, harga_max, gambar, created_at, updated_at
		FROM layanan
		WHERE id=$1 AND deleted_at IS NULL
	`, id)
	l, err := scanLayanan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func (r LayananRepository) List(ctx context.Context, limit int) ([]domain.Layanan, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, nama, deskripsi, harga_min, harga_max, gambar, created_at, updated_at
		FROM layanan
		WHERE deleted_at IS NULL
		ORDER BY nama ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Layanan
	for rows.Next() {
		var l domain.Layanan
		if err := rows.Scan(&l.ID, &l.Nama, &l.Deskripsi, &l.HargaMin, &l.HargaMax, &l.Gambar, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

func (r LayananRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `UPDATE layanan SET deleted_at = now() WHERE id=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanLayanan(row interface {
	Scan(dest ...any) error
}) (*domain.Layanan, error) {
	var l domain.Layanan
	if err := row.Scan(
		&l.ID,
		&l.Nama,
		&l.Deskripsi,
		&l.HargaMin,
		&l.HargaMax,
		&l.Gambar,
		&l.CreatedAt,
		&l.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &l, nil
}
