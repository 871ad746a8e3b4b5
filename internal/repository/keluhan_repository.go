package repository

import (
	"context"
	"errors"

	"arfilla-backend/internal/db"
	"arfilla-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type KeluhanRepository struct {
	DB *db.Postgres
}

type CreateKeluhanInput struct {
	PenggunaID *int64
	PesananID  *int64
	Nama       string
	Isi        string
}

func (r KeluhanRepository) Create(ctx context.Context, in CreateKeluhanInput) (*domain.Keluhan, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO keluhan (pengguna_id, pesanan_id, nama, isi, created_at, updated_at)
		VALUES ($1,$2,$3,$4, now(), now())
		RETURNING id, pengguna_id, pesanan_id, nama, isi, tanggapan, created_at, updated_at
	`, in.PenggunaID, in.PesananID, in.Nama, in.Isi)
	return scanKeluhan(row)
}

func (r KeluhanRepository) Get(ctx context.Context, id int64) (*domain.Keluhan, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT id, pengguna_id, pesanan_id, nama, isi, tanggapan, created_at, updated_at
		FROM keluhan
		WHERE id=$1 AND deleted_at IS NULL
	`, id)
	k, err := scanKeluhan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return k, nil
}

func (r KeluhanRepository) List(ctx context.Context, limit int) ([]domain.Keluhan, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, pengguna_id, pesanan_id, nama, isi, tanggapan, created_at, updated_at
		FROM keluhan
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Keluhan
	for rows.Next() {
		k, err := scanKeluhan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *k)
	}
	return items, rows.Err()
}

// Tanggapi stores the admin response to a complaint.
func (r KeluhanRepository) Tanggapi(ctx context.Context, id int64, tanggapan string) (*domain.Keluhan, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		UPDATE keluhan
		SET tanggapan=$2, updated_at=now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING id, pengguna_id, pesanan_id, nama, isi, tanggapan, created_at, updated_at
	`, id, tanggapan)
	k, err := scanKeluhan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return k, nil
}

func (r KeluhanRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `UPDATE keluhan SET deleted_at = now() WHERE id=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanKeluhan(row interface {
	Scan(dest ...any) error
}) (*domain.Keluhan, error) {
	var (
		k          domain.Keluhan
		penggunaID pgtype.Int8
		pesananID  pgtype.Int8
		tanggapan  pgtype.Text
	)
	if err := row.Scan(&k.ID, &penggunaID, &pesananID, &k.Nama, &k.Isi, &tanggapan, &k.CreatedAt, &k.UpdatedAt); err != nil {
		return nil, err
	}
	if penggunaID.Valid {
		k.PenggunaID = &penggunaID.Int64
	}
	if pesananID.Valid {
		k.PesananID = &pesananID.Int64
	}
	if tanggapan.Valid {
		v := tanggapan.String
		k.Tanggapan = &v
	}
	return &k, nil
}
