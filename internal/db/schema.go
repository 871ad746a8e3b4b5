package db

import "context"

// schema statements are idempotent so startup can run them unconditionally.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS pengguna (
		id BIGSERIAL PRIMARY KEY,
		nama TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		alamat TEXT NOT NULL DEFAULT '',
		is_google BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS pengguna_email_key ON pengguna (email) WHERE deleted_at IS NULL`,
	`CREATE TABLE IF NOT EXISTS admins (
		id BIGSERIAL PRIMARY KEY,
		nama TEXT NOT NULL,
		email TEXT NOT NULL,
		password_hash TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS admins_email_key ON admins (email) WHERE deleted_at IS NULL`,
	`CREATE TABLE IF NOT EXISTS layanan (
		id BIGSERIAL PRIMARY KEY,
		nama TEXT NOT NULL,
		deskripsi TEXT NOT NULL DEFAULT '',
		harga_min BIGINT,
		harga_max BIGINT,
		gambar TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS layanan_nama_key ON layanan (nama) WHERE deleted_at IS NULL`,
	`CREATE TABLE IF NOT EXISTS pesanan (
		id BIGSERIAL PRIMARY KEY,
		pengguna_id BIGINT REFERENCES pengguna(id),
		nama_pemesan TEXT NOT NULL DEFAULT '',
		layanan_id BIGINT REFERENCES layanan(id),
		harga_disepakati BIGINT,
		tanggal_pesan TIMESTAMPTZ NOT NULL DEFAULT now(),
		phone TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'PENGAJUAN',
		lokasi TEXT,
		catatan TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS pembayaran (
		id BIGSERIAL PRIMARY KEY,
		pesanan_id BIGINT NOT NULL REFERENCES pesanan(id),
		jumlah BIGINT NOT NULL DEFAULT 0,
		jenis TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'BELUM_BAYAR',
		bukti_pembayaran TEXT,
		metode_pembayaran TEXT NOT NULL DEFAULT '',
		tanggal_bayar TIMESTAMPTZ,
		tanggal_verifikasi TIMESTAMPTZ,
		verifikator_admin_id BIGINT REFERENCES admins(id),
		alasan_penolakan TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,
	// One DP and one PELUNASAN per order. A racing settlement derivation
	// hits this index and surfaces as a unique violation instead of a
	// silent duplicate.
	`CREATE UNIQUE INDEX IF NOT EXISTS pembayaran_pesanan_jenis_key ON pembayaran (pesanan_id, jenis) WHERE deleted_at IS NULL`,
	`CREATE TABLE IF NOT EXISTS progres_pesanan (
		id BIGSERIAL PRIMARY KEY,
		pesanan_id BIGINT NOT NULL REFERENCES pesanan(id),
		deskripsi TEXT NOT NULL DEFAULT '',
		persen_progres INT NOT NULL DEFAULT 0,
		foto_dokumen TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS portofolio (
		id BIGSERIAL PRIMARY KEY,
		judul TEXT NOT NULL,
		deskripsi TEXT NOT NULL DEFAULT '',
		gambar TEXT NOT NULL DEFAULT '',
		lokasi TEXT NOT NULL DEFAULT '',
		tahun INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS laporan (
		id BIGSERIAL PRIMARY KEY,
		judul TEXT NOT NULL,
		bulan DATE NOT NULL,
		isi TEXT NOT NULL DEFAULT '',
		total BIGINT NOT NULL DEFAULT 0,
		admin_id BIGINT REFERENCES admins(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS keluhan (
		id BIGSERIAL PRIMARY KEY,
		pengguna_id BIGINT REFERENCES pengguna(id),
		pesanan_id BIGINT REFERENCES pesanan(id),
		nama TEXT NOT NULL DEFAULT '',
		isi TEXT NOT NULL DEFAULT '',
		tanggapan TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS pengaturan (
		id INT PRIMARY KEY DEFAULT 1,
		nama_usaha TEXT NOT NULL DEFAULT '',
		alamat_usaha TEXT NOT NULL DEFAULT '',
		phone_usaha TEXT NOT NULL DEFAULT '',
		email_usaha TEXT NOT NULL DEFAULT '',
		footer_email TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS activity_logs (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		message TEXT NOT NULL DEFAULT '',
		actor TEXT NOT NULL DEFAULT '',
		type TEXT NOT NULL DEFAULT 'info',
		logged_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id BIGSERIAL PRIMARY KEY,
		pengguna_id BIGINT REFERENCES pengguna(id),
		title TEXT NOT NULL,
		message TEXT NOT NULL DEFAULT '',
		type TEXT NOT NULL DEFAULT 'info',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		read_at TIMESTAMPTZ,
		deleted_at TIMESTAMPTZ
	)`,
}

// EnsureSchema creates missing tables and indexes.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := p.Pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
