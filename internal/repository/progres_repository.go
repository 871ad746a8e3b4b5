package repository

import (
	"context"
	"errors"

	"arfilla-backend/internal/db"
	"arfilla-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

type ProgresRepository struct {
	DB *db.Postgres
}

type SaveProgresInput struct {
	PesananID     int64
	Deskripsi     string
	PersenProgres int
	FotoDokumen   *string
}

func (r ProgresRepository) Create(ctx context.Context, in SaveProgresInput) (*domain.ProgresPesanan, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO progres_pesanan (pesanan_id, deskripsi, persen_progres, foto_dokumen, created_at, updated_at)
		VALUES ($1,$2,$3,$4, now(), now())
		RETURNING id, pesanan_id, deskripsi, persen_progres, foto_dokumen, created_at, updated_at
	`, in.PesananID, in.Deskripsi, in.PersenProgres, in.FotoDokumen)
	return scanProgres(row)
}

func (r ProgresRepository) Update(ctx context.Context, id int64, in SaveProgresInput) (*domain.ProgresPesanan, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		UPDATE progres_pesanan
		SET deskripsi=$2, persen_progres=$3, foto_dokumen=$4, updated_at=now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING id, pesanan_id, deskripsi, persen_progres, foto_dokumen, created_at, updated_at
	`, id, in.Deskripsi, in.PersenProgres, in.FotoDokumen)
	pr, err := scanProgres(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return pr, nil
}

func (r ProgresRepository) Get(ctx context.Context, id int64) (*domain.ProgresPesanan, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT id, pesanan_id, deskripsi, persen_progres, foto_dokumen, created_at, updated_at
		FROM progres_pesanan
		WHERE id=$1 AND deleted_at IS NULL
	`, id)
	pr, err := scanProgres(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return pr, nil
}

// ListByPesanan returns the order's progress timeline, newest first.
func (r ProgresRepository) ListByPesanan(ctx context.Context, pesananID int64) ([]domain.ProgresPesanan, error) {
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
		pr, err := scanProgres(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *pr)
	}
	return items, rows.Err()
}

func (r ProgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `UPDATE progres_pesanan SET deleted_at = now() WHERE id=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanProgres(row interface {
	Scan(dest ...any) error
}) (*domain.ProgresPesanan, error) {
	var pr domain.ProgresPesanan
	if err := row.Scan(
		&pr.ID,
		&pr.PesananID,
		&pr.Deskripsi,
		&pr.PersenProgres,
		&pr.FotoDokumen,
		&pr.CreatedAt,
		&pr.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &pr, nil
}
