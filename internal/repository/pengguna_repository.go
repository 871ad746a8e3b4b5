package repository

import (
	"context"
	"errors"

	"arfilla-backend/internal/db"
	"arfilla-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

type PenggunaRepository struct {
	DB *db.Postgres
}

type CreatePenggunaParams struct {
	Nama     string
	Email    string
	Phone    string
	Alamat   string
	IsGoogle bool
}

func (r PenggunaRepository) Create(ctx context.Context, p CreatePenggunaParams) (*domain.Pengguna, error) {
	query := `
		INSERT INTO pengguna (nama, email, phone, alamat, is_google, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5, now(), now())
		RETURNING id, nama, email, phone, alamat, is_google, created_at, updated_at
	`
	row := r.DB.Pool.QueryRow(ctx, query, p.Nama, p.Email, p.Phone, p.Alamat, p.IsGoogle)
	return scanPengguna(row)
}

func (r PenggunaRepository) GetByEmail(ctx context.Context, email string) (*domain.Pengguna, error) {
	query := `
		SELECT id, nama, email, phone, alamat, is_google, created_at, updated_at
		FROM pengguna
		WHERE email=$1 AND deleted_at IS NULL
	`
	row := r.DB.Pool.QueryRow(ctx, query, email)
	p, err := scanPengguna(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r PenggunaRepository) GetByID(ctx context.Context, id int64) (*domain.Pengguna, error) {
	query := `
		SELECT id, nama, email, phone, alamat, is_google, created_at, updated_at
		FROM pengguna
		WHERE id=$1 AND deleted_at IS NULL
	`
	row := r.DB.Pool.QueryRow(ctx, query, id)
	p, err := scanPengguna(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r PenggunaRepository) List(ctx context.Context, limit int) ([]domain.Pengguna, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, nama, email, phone, alamat, is_google, created_at, updated_at
		FROM pengguna
		WHERE deleted_at IS NULL
		ORDER BY nama ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Pengguna
	for rows.Next() {
		var p domain.Pengguna
		if err := rows.Scan(&p.ID, &p.Nama, &p.Email, &p.Phone, &p.Alamat, &p.IsGoogle, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r PenggunaRepository) Update(ctx context.Context, p domain.Pengguna) (*domain.Pengguna, error) {
	query := `
		UPDATE pengguna
		SET nama=$2, email=$3, phone=$4, alamat=$5, updated_at=now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING id, nama, email, phone, alamat, is_google, created_at, updated_at
	`
	row := r.DB.Pool.QueryRow(ctx, query, p.ID, p.Nama, p.Email, p.Phone, p.Alamat)
	out, err := scanPengguna(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (r PenggunaRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `UPDATE pengguna SET deleted_at = now() WHERE id=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanPengguna(row interface {
	Scan(dest ...any) error
}) (*domain.Pengguna, error) {
	var p domain.Pengguna
	if err := row.Scan(
		&p.ID,
		&p.Nama,
		&p.Email,
		&p.Phone,
		&p.Alamat,
		&p.IsGoogle,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// IsDuplicate detects unique constraint violation.
func IsDuplicate(err error) bool {
	return db.IsUniqueViolation(err)
}
