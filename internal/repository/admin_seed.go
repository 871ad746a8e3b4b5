package repository

import "context"

// SeedDefault creates the bootstrap admin account when none with the given
// email exists yet.
func (r AdminRepository) SeedDefault(ctx context.Context, nama, email string, passwordHash string) error {
	_, err := r.DB.Pool.Exec(ctx, `
		INSERT INTO admins (nama, email, password_hash, created_at, updated_at)
		VALUES ($1,$2,$3, now(), now())
		ON CONFLICT (email) WHERE deleted_at IS NULL DO NOTHING
	`, nama, email, passwordHash)
	return err
}
