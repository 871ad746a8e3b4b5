package repository

import (
	"context"

	"arfilla-backend/internal/domain"
)

func (r LayananRepository) SeedDefaults(ctx context.Context) error {
	harga := func(v int64) *int64 { return &v }
	defaults := []domain.Layanan{
		{Nama: "Renovasi Rumah", Deskripsi: "Renovasi rumah tinggal, sebagian atau menyeluruh", HargaMin: harga(15000000), HargaMax: harga(250000000)},
		{Nama: "Bangun Rumah Baru", Deskripsi: "Pembangunan rumah tinggal dari nol", HargaMin: harga(150000000), HargaMax: harga(1500000000)},
		{Nama: "Pengecatan", Deskripsi: "Pengecatan interior dan eksterior", HargaMin: harga(2500000), HargaMax: harga(35000000)},
		{Nama: "Pemasangan Keramik", Deskripsi: "Pemasangan keramik lantai dan dinding", HargaMin: harga(5000000), HargaMax: harga(75000000)},
		{Nama: "Perbaikan Atap", Deskripsi: "Perbaikan rangka dan penutup atap", HargaMin: harga(3500000), HargaMax: harga(50000000)},
	}

	for _, l := range defaults {
		// Idempotent: layanan.nama is unique among live rows.
		_, err := r.DB.Pool.Exec(ctx, `
			INSERT INTO layanan (nama, deskripsi, harga_min, harga_max, gambar, created_at, updated_at)
			VALUES ($1,$2,$3,$4,'', now(), now())
			ON CONFLICT (nama) WHERE deleted_at IS NULL DO NOTHING
		`, l.Nama, l.Deskripsi, l.HargaMin, l.HargaMax)
		if err != nil {
			return err
		}
	}
	return nil
}
