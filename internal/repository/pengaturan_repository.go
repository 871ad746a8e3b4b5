package repository

import (
	"context"

	"arfilla-backend/internal/db"
	"arfilla-backend/internal/domain"
)

type PengaturanRepository struct {
	DB *db.Postgres
}

// Get returns the business profile, creating the default row on first use.
func (r PengaturanRepository) Get(ctx context.Context) (*domain.Pengaturan, error) {
	_, err := r.DB.Pool.Exec(ctx, `
		INSERT INTO pengaturan (id, nama_usaha, alamat_usaha, phone_usaha, email_usaha, footer_email)
		VALUES (1, 'CV Arfilla Jaya Putra', '', '', '', '')
		ON CONFLICT (id) DO NOTHING
	`)
	if err != nil {
		return nil, err
	}
	var p domain.Pengaturan
	err = r.DB.Pool.QueryRow(ctx, `
		SELECT nama_usaha, alamat_usaha, phone_usaha, email_usaha, footer_email, updated_at
		FROM pengaturan WHERE id=1
	`).Scan(&p.NamaUsaha, &p.AlamatUsaha, &p.PhoneUsaha, &p.EmailUsaha, &p.FooterEmail, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r PengaturanRepository) Save(ctx context.Context, p domain.Pengaturan) (*domain.Pengaturan, error) {
	var out domain.Pengaturan
	err := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO pengaturan (id, nama_usaha, alamat_usaha, phone_usaha, email_usaha, footer_email, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, now())
		ON CONFLICT (id) DO UPDATE SET
			nama_usaha=EXCLUDED.nama_usaha,
			alamat_usaha=EXCLUDED.alamat_usaha,
			phone_usaha=EXCLUDED.phone_usaha,
			email_usaha=EXCLUDED.email_usaha,
			footer_email=EXCLUDED.footer_email,
			updated_at=now()
		RETURNING nama_usaha, alamat_usaha, phone_usaha, email_usaha, footer_email, updated_at
	`, p.NamaUsaha, p.AlamatUsaha, p.PhoneUsaha, p.EmailUsaha, p.FooterEmail).Scan(
		&out.NamaUsaha, &out.AlamatUsaha, &out.PhoneUsaha, &out.EmailUsaha, &out.FooterEmail, &out.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
