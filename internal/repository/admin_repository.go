package repository

import (
	"context"
	"errors"

	"arfilla-backend/internal/db"
	"arfilla-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

type AdminRepository struct {
	DB *db.Postgres
}

type CreateAdminParams struct {
	Nama         string
	Email        string
	PasswordHash *string
}

func (r AdminRepository) Create(ctx context.Context, p CreateAdminParams) (*domain.Admin, error) {
	query := `
		INSERT INTO admins (nama, email, password_hash, created_at, updated_at)
		VALUES ($1,$2,$3, now(), now())
		RETURNING id, nama, email, password_hash, created_at, updated_at
	`
	row := r.DB.Pool.QueryRow(ctx, query, p.Nama, p.Email, p.PasswordHash)
	return scanAdmin(row)
}

func (r AdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	query := `
		SELECT id, nama, email, password_hash, created_at, updated_at
		FROM admins
		WHERE email=$1 AND deleted_at IS NULL
	`
	row := r.DB.Pool.QueryRow(ctx, query, email)
	a, err := scanAdmin(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r AdminRepository) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	query := `
		SELECT id, nama, email, password_hash, created_at, updated_at
		FROM admins
		WHERE id=$1 AND deleted_at IS NULL
	`
	row := r.DB.Pool.QueryRow(ctx, query, id)
	a, err := scanAdmin(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r AdminRepository) List(ctx context.Context, limit int) ([]domain.Admin, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, nama, email, password_hash, created_at, updated_at
		FROM admins
		WHERE deleted_at IS NULL
		ORDER BY nama ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Admin
	for rows.Next() {
		var a domain.Admin
		if err := rows.Scan(&a.ID, &a.Nama, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r AdminRepository) Update(ctx context.Context, id int64, nama, email string, passwordHash *string) (*domain.Admin, error) {
	query := `
		UPDATE admins
		SET nama=$2, email=$3, password_hash=COALESCE($4, password_hash), updated_at=now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING id, nama, email, password_hash, created_at, updated_at
	`
	row := r.DB.Pool.QueryRow(ctx, query, id, nama, email, passwordHash)
	a, err := scanAdmin(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r AdminRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `UPDATE admins SET deleted_at = now() WHERE id=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanAdmin(row interface {
	Scan(dest ...any) error
}) (*domain.Admin, error) {
	var a domain.Admin
	if err := row.Scan(
		&a.ID,
		&a.Nama,
		&a.Email,
		&a.PasswordHash,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
