package service

import (
	"testing"

	"arfilla-backend/internal/domain"
)

func int64p(v int64) *int64 { return &v }

func TestDecideApprovalDownPaymentDerivesSettlement(t *testing.T) {
	out := decideApproval(domain.JenisDP, int64p(10_000_000), 3_000_000, false)
	if out.NextOrderStatus != domain.StatusPengerjaan {
		t.Fatalf("next status = %s, want %s", out.NextOrderStatus, domain.StatusPengerjaan)
	}
	if !out.CreatePelunasan {
		t.Fatal("expected a settlement payment to be derived")
	}
	if out.PelunasanJumlah != 7_000_000 {
		t.Fatalf("pelunasan = %d, want 7000000", out.PelunasanJumlah)
	}
}

func TestDecideApprovalFullDownPaymentSkipsSettlement(t *testing.T) {
	out := decideApproval(domain.JenisDP, int64p(5_000_000), 5_000_000, false)
	if out.CreatePelunasan {
		t.Fatalf("no settlement expected when remainder is zero, got %d", out.PelunasanJumlah)
	}
	if out.NextOrderStatus != domain.StatusPengerjaan {
		t.Fatalf("next status = %s, want %s", out.NextOrderStatus, domain.StatusPengerjaan)
	}
}

func TestDecideApprovalOverpaidDownPaymentSkipsSettlement(t *testing.T) {
	out := decideApproval(domain.JenisDP, int64p(5_000_000), 6_000_000, false)
	if out.CreatePelunasan {
		t.Fatal("no settlement expected when the down payment covers the price")
	}
}

func TestDecideApprovalNoAgreedPrice(t *testing.T) {
	out := decideApproval(domain.JenisDP, nil, 2_000_000, false)
	if out.CreatePelunasan {
		t.Fatal("settlement cannot be derived without an agreed price")
	}
	if out.NextOrderStatus != domain.StatusPengerjaan {
		t.Fatalf("next status = %s, want %s", out.NextOrderStatus, domain.StatusPengerjaan)
	}
}

func TestDecideApprovalExistingSettlementNotDuplicated(t *testing.T) {
	out := decideApproval(domain.JenisDP, int64p(10_000_000), 3_000_000, true)
	if out.CreatePelunasan {
		t.Fatal("settlement already exists, a second one must not be derived")
	}
}

func TestDecideApprovalSettlementCompletesOrder(t *testing.T) {
	out := decideApproval(domain.JenisPelunasan, int64p(10_000_000), 7_000_000, true)
	if out.NextOrderStatus != domain.StatusSelesai {
		t.Fatalf("next status = %s, want %s", out.NextOrderStatus, domain.StatusSelesai)
	}
	if out.CreatePelunasan {
		t.Fatal("verifying a settlement must not derive another one")
	}
}
