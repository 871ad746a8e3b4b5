package repository

import (
	"context"

	"arfilla-backend/internal/db"
	"arfilla-backend/internal/domain"
)

type DashboardRepository struct {
	DB *db.Postgres
}

// DashboardSummary aggregates counts for the admin landing page.
type DashboardSummary struct {
	PesananPerStatus   map[string]int64
	TotalPesanan       int64
	TotalPengguna      int64
	PembayaranMenunggu int64
	PendapatanSelesai  int64
}

func (r DashboardRepository) Summary(ctx context.Context) (*DashboardSummary, error) {
	s := &DashboardSummary{PesananPerStatus: map[string]int64{}}

	rows, err := r.DB.Pool.Query(ctx, `
		SELECT status, COUNT(*)
		FROM pesanan
		WHERE deleted_at IS NULL
		GROUP BY status
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		s.PesananPerStatus[status] = count
		s.TotalPesanan += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.DB.Pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM pengguna WHERE deleted_at IS NULL
	`).Scan(&s.TotalPengguna); err != nil {
		return nil, err
	}

	if err := r.DB.Pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM pembayaran WHERE deleted_at IS NULL AND status=$1
	`, domain.BayarMenunggu).Scan(&s.PembayaranMenunggu); err != nil {
		return nil, err
	}

	if err := r.DB.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(harga_disepakati), 0)
		FROM pesanan
		WHERE deleted_at IS NULL AND status=$1 AND harga_disepakati IS NOT NULL
	`, domain.StatusSelesai).Scan(&s.PendapatanSelesai); err != nil {
		return nil, err
	}

	return s, nil
}
